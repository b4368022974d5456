// Package redirect resolves HTTP redirect chains on top of a pluggable
// transport.
//
// The package sits between an application-facing request API and the
// transport that performs the actual network send. Given a request and
// the response it produced, it decides whether the exchange continues,
// derives the next request per HTTP semantics and de-facto browser
// behavior (method downgrading, credential stripping, body replay,
// Location resolution), and guards the chain against loops and
// excessive length.
//
// # Basic Usage
//
// Create a Follower over any Transport and send a request:
//
//	f, err := redirect.NewFollower(redirect.NewRoundTripTransport(nil), redirect.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	req, _ := http.NewRequest(http.MethodGet, "https://example.com/old", nil)
//	resp, err := f.Do(req)
//
// The returned Response embeds the final *http.Response and carries the
// redirect responses that led to it in Response.History.
//
// # Manual Stepping
//
// Setting Config.DisableFollow suspends the chain at each redirect
// instead of following it. The redirect response then carries a
// Continuation, and the caller drives the chain one hop at a time:
//
//	f, _ := redirect.NewFollower(transport, redirect.Config{DisableFollow: true})
//	resp, err := f.Do(req)
//	for err == nil && resp.Next != nil {
//	    resp, err = resp.Next.Resume()
//	}
//
// Resume enforces the same limit and loop checks as automatic
// following, so manual stepping cannot bypass the chain's safety
// invariants.
//
// # Request Bodies
//
// Requests built by http.NewRequest from an in-memory reader carry a
// GetBody callback and can be replayed across hops. A request streaming
// from an arbitrary reader cannot: if its body must be resent to follow
// a redirect, Do fails with a BodyUnavailableError. Redirects that
// downgrade the method to GET drop the body instead.
//
// # Error Handling
//
// Chain failures are reported with typed errors:
//
//	resp, err := f.Do(req)
//	if err != nil {
//	    var tooManyErr *redirect.TooManyRedirectsError
//	    if errors.As(err, &tooManyErr) {
//	        // Redirect limit exceeded.
//	    }
//	    var loopErr *redirect.RedirectLoopError
//	    if errors.As(err, &loopErr) {
//	        // Circular redirect detected.
//	    }
//	    var bodyErr *redirect.BodyUnavailableError
//	    if errors.As(err, &bodyErr) {
//	        // Streaming body could not be resent.
//	    }
//	}
//
// # Transports
//
// A Transport performs a single exchange and never follows redirects
// itself. NewRoundTripTransport adapts any http.RoundTripper, and
// NewHTTP3Transport performs exchanges over HTTP/3 via quic-go.
//
// # Thread Safety
//
// A Follower is safe for concurrent use. Configuration is immutable
// after NewFollower, and every Do call owns its chain state (history,
// visited URLs) exclusively; concurrent chains share nothing but the
// Transport, whose concurrency discipline is its own concern.
package redirect
