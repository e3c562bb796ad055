package cookiejar

import (
	"net/http"
	"strings"
)

// ParseSetCookies parses the "Set-Cookie" values of a response header.
// Malformed lines are skipped.
func ParseSetCookies(header http.Header) []Cookie {
	res := http.Response{Header: header}
	return fromHTTP(res.Cookies())
}

// ParseCookieString parses a "Cookie" request header value into cookies
// carrying only a name and a value.
func ParseCookieString(cookies string) []Cookie {
	header := http.Header{}
	header.Add("Cookie", cookies)
	req := http.Request{Header: header}
	return fromHTTP(req.Cookies())
}

func fromHTTP(cookies []*http.Cookie) []Cookie {
	if len(cookies) == 0 {
		return nil
	}
	result := make([]Cookie, len(cookies))
	for i, c := range cookies {
		result[i] = FromHTTP(c)
	}
	return result
}

// CookieHeader returns the "Cookie" request header value of the pairs,
// in the given order.
func CookieHeader(pairs []Pair) string {
	switch len(pairs) {
	case 0:
		return ""
	case 1:
		return pairs[0].String()
	}

	var b strings.Builder
	b.WriteString(pairs[0].String())
	for _, p := range pairs[1:] {
		b.WriteString("; ")
		b.WriteString(p.String())
	}
	return b.String()
}
