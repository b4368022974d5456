package redirect

import "net/http"

//go:generate sh -c "go run go.uber.org/mock/mockgen -package redirect -destination mock_transport_test.go github.com/redirectkit/redirect-go Transport"

// Transport performs a single HTTP exchange. It is the collaborator the
// Follower drives, and it must not follow redirects itself.
//
// RoundTrip has the signature of net/http.RoundTripper, so any
// RoundTripper plugs in via NewRoundTripTransport and
// *http3.Transport satisfies the interface directly.
type Transport interface {
	RoundTrip(*http.Request) (*http.Response, error)
	Close() error
}

// NewRoundTripTransport adapts an http.RoundTripper to the Transport
// interface. A nil rt uses http.DefaultTransport.
//
// Close closes idle connections when the wrapped RoundTripper supports
// it (http.Transport does) and is a no-op otherwise.
func NewRoundTripTransport(rt http.RoundTripper) Transport {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &roundTripTransport{rt: rt}
}

type roundTripTransport struct {
	rt http.RoundTripper
}

func (t *roundTripTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.rt.RoundTrip(req)
}

func (t *roundTripTransport) Close() error {
	if c, ok := t.rt.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
	return nil
}
