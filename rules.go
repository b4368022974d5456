package redirect

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// buildRedirect derives the next request of a redirect chain from the
// current request and the redirect response it produced, applying the
// method, URL, header and body rules in that order. It never mutates
// the current request.
func buildRedirect(req *http.Request, rsp *http.Response) (*http.Request, error) {
	method := redirectMethod(req.Method, rsp.StatusCode)
	u, err := redirectURL(req, rsp)
	if err != nil {
		return nil, err
	}

	next := &http.Request{
		Method:     method,
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     redirectHeaders(req, u),
	}
	next = next.WithContext(req.Context())

	if err := redirectBody(next, req, method); err != nil {
		return nil, err
	}
	return next, nil
}

// redirectURL resolves the redirect target from the response's Location
// header against the current request URL.
//
// A missing or malformed Location is a protocol violation by the
// server; it is reported as a plain error, not one of the chain error
// types.
func redirectURL(req *http.Request, rsp *http.Response) (*url.URL, error) {
	location := rsp.Header.Get("Location")
	if location == "" {
		return nil, errors.New("redirect: redirect response missing Location header")
	}

	// Scheme-relative target, e.g. "//other.example/path"
	// (RFC 1808 Section 4): inherit the current scheme.
	if strings.HasPrefix(location, "//") {
		location = req.URL.Scheme + ":" + location
	}

	target, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("redirect: malformed redirect location: %w", err)
	}

	// The previous fragment survives unless the target sets its own
	// (RFC 7231 Section 7.1.2).
	if target.Fragment == "" && req.URL.Fragment != "" {
		target.Fragment = req.URL.Fragment
	}

	// Relative references resolve against the current URL
	// (RFC 3986 Section 5.3); targets with an authority stand alone.
	if target.Host == "" {
		target = req.URL.ResolveReference(target)
	}

	requote(target)
	return target, nil
}

// redirectHeaders copies the current request's headers for the next
// hop. Credentials never cross origins: the Authorization header is
// dropped when the redirect leaves the current origin.
func redirectHeaders(req *http.Request, next *url.URL) http.Header {
	headers := cloneHeader(req.Header)
	if !sameOrigin(req.URL, next) {
		headers.Del("Authorization")
	}
	return headers
}

// redirectBody decides what body the next request carries.
//
// A method rewritten to GET drops the body. Otherwise the original body
// must be resent, which is only possible when it can be replayed:
// requests built from an in-memory reader carry a GetBody callback,
// requests streaming from an arbitrary reader do not.
func redirectBody(next, req *http.Request, method string) error {
	if method != req.Method && method == http.MethodGet {
		return nil
	}
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	if req.GetBody == nil {
		return &BodyUnavailableError{Method: method, URL: next.URL.String()}
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("redirect: replaying request body: %w", err)
	}
	next.Body = body
	next.GetBody = req.GetBody
	next.ContentLength = req.ContentLength
	return nil
}

// sameOrigin reports whether two URLs share scheme, host and port.
// Default ports compare equal to their explicit form, so http://host
// and http://host:80 are the same origin.
func sameOrigin(a, b *url.URL) bool {
	return originOf(a) == originOf(b)
}

func originOf(u *url.URL) string {
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		case "https":
			port = "443"
		}
	}
	return u.Scheme + "://" + u.Hostname() + ":" + port
}

// cloneHeader creates a deep copy of an http.Header.
func cloneHeader(h http.Header) http.Header {
	h2 := make(http.Header, len(h))
	for k, vv := range h {
		vv2 := make([]string, len(vv))
		copy(vv2, vv)
		h2[k] = vv2
	}
	return h2
}
