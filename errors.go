package redirect

import "fmt"

// TooManyRedirectsError is returned when a chain needs more redirects
// than the configured limit allows.
type TooManyRedirectsError struct {
	// Limit is the configured maximum number of redirects.
	Limit int
	// History contains the redirect responses received before the
	// limit was hit, oldest first.
	History []*Response
}

// Error implements the error interface.
func (e *TooManyRedirectsError) Error() string {
	return fmt.Sprintf("redirect: stopped after %d redirects (limit: %d)", len(e.History), e.Limit)
}

// RedirectLoopError is returned when a chain computes a next URL that
// was already visited in the same chain.
type RedirectLoopError struct {
	// URL is the duplicate URL. It is detected before any request is
	// sent to it.
	URL string
	// History contains the redirect responses received up to the
	// duplicate, oldest first.
	History []*Response
}

// Error implements the error interface.
func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect: redirect loop detected at %s (after %d redirects)", e.URL, len(e.History))
}

// BodyUnavailableError is returned when the request body must be resent
// to follow a redirect, but the body was streamed and cannot be
// replayed.
type BodyUnavailableError struct {
	// Method is the method the next request would have used.
	Method string
	// URL is the redirect target the body could not be resent to.
	URL string
}

// Error implements the error interface.
func (e *BodyUnavailableError) Error() string {
	return fmt.Sprintf("redirect: cannot resend %s body to %s: request body is streaming and was already consumed", e.Method, e.URL)
}
