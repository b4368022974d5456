package redirect

import "net/http"

// Continuation is the suspended next hop of a redirect chain being
// followed manually (Config.DisableFollow).
//
// It captures the derived next request and a private copy of the chain
// state at the point of suspension. Resuming it is equivalent to
// re-entering the Follower's loop with that state: the limit and loop
// checks the automatic path runs before each hop run here instead, so
// manual stepping enforces the same invariants per hop as automatic
// following.
type Continuation struct {
	follower *Follower
	request  *http.Request
	state    *chainState
}

// Request returns the request Resume will send. Callers must not
// modify it; build a new request instead if a different next hop is
// wanted.
func (c *Continuation) Request() *http.Request {
	return c.request
}

// Resume performs the suspended hop.
//
// It first re-runs the checks deferred at suspension time: the hop
// count against the configured limit (TooManyRedirectsError) and the
// captured request's URL against the visited set (RedirectLoopError,
// raised before any network send). If the hop produces another redirect
// and the Follower is still in manual mode, the returned Response
// carries the next Continuation, so a chain can be stepped through hop
// by hop.
//
// Each call works on its own copy of the captured state, so resuming
// the same Continuation twice re-sends the request with identical
// state.
func (c *Continuation) Resume() (*Response, error) {
	state := c.state.clone()

	if exceedsLimit(len(state.history), c.follower.config.MaxRedirects) {
		return nil, &TooManyRedirectsError{
			Limit:   c.follower.config.MaxRedirects,
			History: state.historyCopy(),
		}
	}
	if state.seen(c.request.URL) {
		return nil, &RedirectLoopError{
			URL:     c.request.URL.String(),
			History: state.historyCopy(),
		}
	}
	state.visit(c.request.URL)

	return c.follower.send(c.request, state)
}
