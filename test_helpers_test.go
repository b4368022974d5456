package redirect

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedTransport returns its queued responses in order and records
// every request it sees.
type scriptedTransport struct {
	responses []*http.Response
	requests  []*http.Request
	closed    bool
}

func (t *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.requests = append(t.requests, req)
	if len(t.responses) == 0 {
		return nil, errors.New("scriptedTransport: no responses left")
	}
	rsp := t.responses[0]
	t.responses = t.responses[1:]
	rsp.Request = req
	return rsp, nil
}

func (t *scriptedTransport) Close() error {
	t.closed = true
	return nil
}

// transportFunc adapts a function to the Transport interface.
type transportFunc func(*http.Request) (*http.Response, error)

func (f transportFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
func (f transportFunc) Close() error                                        { return nil }

func mustParseURL(rawURL string) *url.URL {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return u
}

// makeRedirectResponse builds a redirect response with the given status
// code and Location header.
func makeRedirectResponse(statusCode int, location string) *http.Response {
	rsp := makeResponse(statusCode)
	if location != "" {
		rsp.Header.Set("Location", location)
	}
	return rsp
}

func makeResponse(statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

// newTestRequest builds a request the way callers do, so in-memory
// bodies are replayable via GetBody.
func newTestRequest(t *testing.T, method, rawURL string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, rawURL, body)
	require.NoError(t, err)
	return req
}

// streamingBody wraps a reader so http.NewRequest cannot install a
// GetBody callback, mimicking a body that is consumed as it is sent.
type streamingBody struct {
	r io.Reader
}

func (b *streamingBody) Read(p []byte) (int, error) { return b.r.Read(p) }
