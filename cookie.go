package cookiejar

import (
	"net/http"
	"time"
)

// SameSite is the same-site policy a cookie was set with.
type SameSite uint8

const (
	SameSiteDefault SameSite = iota
	SameSiteLax
	SameSiteStrict
	SameSiteNone
)

var sameSiteMapping = [...]string{
	SameSiteDefault: "",
	SameSiteLax:     "lax",
	SameSiteStrict:  "strict",
	SameSiteNone:    "none",
}

func (s SameSite) String() string {
	if int(s) < len(sameSiteMapping) {
		return sameSiteMapping[s]
	}
	return ""
}

// Cookie is one already parsed Set-Cookie entry received for a request URL.
type Cookie struct {
	Name  string
	Value string

	// Domain is the raw Domain attribute, empty when none was sent.
	Domain string
	// Path is the raw Path attribute, empty when none was sent.
	Path string

	// Expires is the absolute expiry, zero when absent.
	Expires time.Time
	// MaxAge in seconds, only meaningful when HasMaxAge is set.
	// It overrides Expires, a value <= 0 deletes the cookie.
	MaxAge    int
	HasMaxAge bool

	Secure   bool
	HttpOnly bool
	SameSite SameSite
}

// FromHTTP converts a net/http cookie as produced by
// (*http.Response).Cookies.
func FromHTTP(c *http.Cookie) Cookie {
	cookie := Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
	// net/http uses 0 for "unspecified" and -1 for "delete now"
	if c.MaxAge != 0 {
		cookie.MaxAge = c.MaxAge
		cookie.HasMaxAge = true
	}
	switch c.SameSite {
	case http.SameSiteLaxMode:
		cookie.SameSite = SameSiteLax
	case http.SameSiteStrictMode:
		cookie.SameSite = SameSiteStrict
	case http.SameSiteNoneMode:
		cookie.SameSite = SameSiteNone
	}
	return cookie
}

// HTTP returns the net/http form of the cookie.
func (c Cookie) HTTP() *http.Cookie {
	cookie := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   c.Domain,
		Path:     c.Path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
	if c.HasMaxAge {
		cookie.MaxAge = c.MaxAge
		if c.MaxAge <= 0 {
			cookie.MaxAge = -1
		}
	}
	switch c.SameSite {
	case SameSiteLax:
		cookie.SameSite = http.SameSiteLaxMode
	case SameSiteStrict:
		cookie.SameSite = http.SameSiteStrictMode
	case SameSiteNone:
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// Pair a cookie name and value pair as sent in a Cookie request header.
type Pair struct {
	Name  string
	Value string
}

func (p Pair) String() string { return p.Name + "=" + p.Value }
