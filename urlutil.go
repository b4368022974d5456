package redirect

import (
	"fmt"
	"net/url"
	"strings"
)

// requote percent-re-encodes the query component so the URL is safe to
// send. The path needs no work: net/url re-encodes it from its decoded
// form when the URL is serialized, but the raw query is emitted
// verbatim, including any unsafe bytes the Location header carried.
func requote(u *url.URL) {
	u.RawQuery = requoteComponent(u.RawQuery)
}

// requoteComponent re-encodes a raw URL component byte by byte: valid
// percent escapes pass through untouched (no double encoding),
// unreserved and reserved characters stay literal, everything else is
// percent-encoded. A stray '%' that does not start a valid escape is
// encoded as %25.
func requoteComponent(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteString(s[i : i+3])
			i += 2
		case isURISafe(c):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isURISafe reports whether c may appear literally in a URI component:
// the unreserved set plus the gen-delims and sub-delims of RFC 3986
// Section 2.
func isURISafe(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	return strings.IndexByte("-._~:/?#[]@!$&'()*+,;=", c) >= 0
}
