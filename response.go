package redirect

import "net/http"

// Response is the result of one hop of a redirect chain.
//
// It embeds the *http.Response returned by the Transport and adds the
// chain context accumulated by the Follower.
type Response struct {
	*http.Response

	// History lists the redirect responses received before this one,
	// oldest first. Every hop carries its own copy of the slice, so a
	// response's history is fixed when the response is returned and
	// does not grow as the chain continues.
	History []*Response

	// Next is the suspended next hop of the chain. It is set only in
	// manual mode (Config.DisableFollow) and only on redirect
	// responses; resuming it performs the hop this response asked for.
	Next *Continuation
}
