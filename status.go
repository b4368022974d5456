package redirect

import "net/http"

// isRedirectStatus reports whether the HTTP status code represents a
// redirect to follow: 301 (Moved Permanently), 302 (Found),
// 303 (See Other), 307 (Temporary Redirect), 308 (Permanent Redirect).
// Other 3xx codes such as 304 (Not Modified) carry no Location to
// follow and are terminal.
func isRedirectStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently, // 301
		http.StatusFound,             // 302
		http.StatusSeeOther,          // 303
		http.StatusTemporaryRedirect, // 307
		http.StatusPermanentRedirect: // 308
		return true
	}
	return false
}

// methodRewrite is one entry of the ordered method rewrite table. A
// rule fires when the response status matches and applies reports true
// for the current method; the method then becomes GET.
type methodRewrite struct {
	status  int
	applies func(method string) bool
}

// methodRewrites is evaluated in order, and the order is load-bearing:
// the 303 and 302 rules already turn every non-HEAD method into GET, so
// the 301 rule can only fire for methods the first two left untouched.
// 303 is per RFC 7231 Section 6.4.4; 302 and 301/POST match browser
// behavior rather than the RFC.
var methodRewrites = []methodRewrite{
	{status: http.StatusSeeOther, applies: func(m string) bool { return m != http.MethodHead }},
	{status: http.StatusFound, applies: func(m string) bool { return m != http.MethodHead }},
	{status: http.StatusMovedPermanently, applies: func(m string) bool { return m == http.MethodPost }},
}

// redirectMethod returns the method for the next request of the chain,
// applying the rewrite table in order to the current method.
func redirectMethod(method string, statusCode int) string {
	for _, rule := range methodRewrites {
		if rule.status == statusCode && rule.applies(method) {
			method = http.MethodGet
		}
	}
	return method
}
