package redirect

import "net/url"

// chainState is the bookkeeping for one redirect chain: the responses
// received so far and the URLs already sent to. It is owned by a single
// Do call (or a single Resume) and never shared between chains.
type chainState struct {
	history []*Response
	visited map[string]struct{}
}

func newChainState() *chainState {
	return &chainState{visited: make(map[string]struct{})}
}

// visit records the URL as sent in this chain.
func (s *chainState) visit(u *url.URL) {
	s.visited[u.String()] = struct{}{}
}

// seen reports whether the URL was already sent in this chain.
func (s *chainState) seen(u *url.URL) bool {
	_, ok := s.visited[u.String()]
	return ok
}

// historyCopy returns a snapshot of the history so far. The Response
// pointers are shared, the slice is not: appending further hops does
// not grow a snapshot already handed out.
func (s *chainState) historyCopy() []*Response {
	if len(s.history) == 0 {
		return nil
	}
	h := make([]*Response, len(s.history))
	copy(h, s.history)
	return h
}

// clone returns an independent copy of the chain state, so a suspended
// continuation never shares mutable accumulators with the chain that
// produced it.
func (s *chainState) clone() *chainState {
	c := &chainState{
		history: s.historyCopy(),
		visited: make(map[string]struct{}, len(s.visited)),
	}
	for u := range s.visited {
		c.visited[u] = struct{}{}
	}
	return c
}

// exceedsLimit reports whether hops completed redirects exceed the
// configured maximum. A max of -1 disables the limit.
func exceedsLimit(hops, max int) bool {
	if max < 0 {
		return false
	}
	return hops > max
}
