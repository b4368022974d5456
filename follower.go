package redirect

import (
	"errors"
	"io"
	"net/http"
)

// Follower drives redirect chains over a Transport.
//
// Follower is safe for concurrent use by multiple goroutines. All
// configuration is immutable after NewFollower, and each Do call
// maintains independent chain state, so concurrent chains do not
// interfere with each other.
type Follower struct {
	// transport performs the actual sends
	// Immutable after creation
	transport Transport

	// config holds redirect configuration
	// Immutable after creation (value type)
	config Config
}

// NewFollower creates a Follower that resolves redirect chains over the
// given transport with the given configuration.
//
// The transport must not be nil. The config is validated and any
// zero-valued optional fields are set to defaults; the Follower keeps a
// copy, so later changes to the config value do not affect it.
func NewFollower(transport Transport, config Config) (*Follower, error) {
	if transport == nil {
		return nil, errors.New("redirect: transport must not be nil")
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	config = config.applyDefaults()

	return &Follower{
		transport: transport,
		config:    config,
	}, nil
}

// Do sends req and resolves the redirect chain it starts.
//
// In automatic mode (the default) Do follows redirect responses until a
// terminal response arrives, the configured limit is exceeded
// (TooManyRedirectsError), a URL repeats within the chain
// (RedirectLoopError), or a streaming body cannot be resent
// (BodyUnavailableError). The final Response carries the redirect
// responses that preceded it in History.
//
// In manual mode (Config.DisableFollow) Do returns after the first
// redirect with a Continuation in Response.Next; see Continuation.
//
// Cancelling req's context terminates the chain before the next send.
// The caller must close the body of the returned Response; bodies of
// followed redirect responses are drained and closed by Do.
func (f *Follower) Do(req *http.Request) (*Response, error) {
	state := newChainState()
	state.visit(req.URL)
	return f.send(req, state)
}

// Close closes the underlying transport.
func (f *Follower) Close() error {
	return f.transport.Close()
}

// send runs the controller loop with the given chain state. The state
// must already have req's URL in its visited set.
func (f *Follower) send(req *http.Request, state *chainState) (*Response, error) {
	for {
		if err := req.Context().Err(); err != nil {
			return nil, err
		}

		rsp, err := f.transport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		// Every hop gets its own snapshot of the history.
		resp := &Response{Response: rsp, History: state.historyCopy()}
		if !isRedirectStatus(rsp.StatusCode) {
			return resp, nil
		}
		state.history = append(state.history, resp)

		next, err := buildRedirect(req, rsp)
		if err != nil {
			drainBody(rsp)
			return nil, err
		}

		if f.config.DisableFollow {
			resp.Next = &Continuation{
				follower: f,
				request:  next,
				state:    state.clone(),
			}
			return resp, nil
		}

		if exceedsLimit(len(state.history), f.config.MaxRedirects) {
			drainBody(rsp)
			return nil, &TooManyRedirectsError{
				Limit:   f.config.MaxRedirects,
				History: state.historyCopy(),
			}
		}
		if state.seen(next.URL) {
			drainBody(rsp)
			return nil, &RedirectLoopError{
				URL:     next.URL.String(),
				History: state.historyCopy(),
			}
		}
		state.visit(next.URL)

		drainBody(rsp)
		req = next
	}
}

// drainBody discards and closes a redirect response body before the
// next hop, so the underlying connection can be reused.
func drainBody(rsp *http.Response) {
	if rsp != nil && rsp.Body != nil {
		io.Copy(io.Discard, rsp.Body)
		rsp.Body.Close()
	}
}
