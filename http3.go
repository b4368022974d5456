package redirect

import (
	"crypto/tls"

	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
)

// NewHTTP3Transport returns a Transport that performs each exchange
// over HTTP/3. Both arguments may be nil; http3 fills in its defaults.
//
// The returned Transport owns its QUIC connections. Closing the
// Follower built on top of it closes them.
func NewHTTP3Transport(tlsConf *tls.Config, quicConf *quic.Config) Transport {
	return &http3.Transport{
		TLSClientConfig: tlsConf,
		QUICConfig:      quicConf,
	}
}
