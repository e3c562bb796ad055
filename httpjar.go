package cookiejar

import (
	"net/http"
	"net/url"
	"sync"
	"time"
)

// CookieJar manages storage and use of cookies in HTTP requests.
// Implementations of CookieJar must be safe for concurrent use by multiple
// goroutines.
type CookieJar interface {
	http.CookieJar

	// RemoveCookie delete the cookies for the given URL.
	RemoveCookie(u *url.URL)
}

// HTTPJar is a Jar guarded by a mutex and driven by a clock, for use as
// http.Client.Jar.
type HTTPJar struct {
	mu    sync.Mutex
	jar   *Jar
	clock func() time.Time
}

var _ CookieJar = (*HTTPJar)(nil)

// NewHTTPJar returns a new HTTPJar with the given options.
func NewHTTPJar(opts Options) (*HTTPJar, error) {
	jar, err := New(opts)
	if err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &HTTPJar{jar: jar, clock: clock}, nil
}

// SetCookies implements the SetCookies method of the http.CookieJar interface.
func (h *HTTPJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	converted := fromHTTP(cookies)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.jar.SetCookies(u, converted, h.clock())
}

// Cookies implements the Cookies method of the http.CookieJar interface.
//
// It returns an empty slice if the URL's scheme is not HTTP or HTTPS.
func (h *HTTPJar) Cookies(u *url.URL) []*http.Cookie {
	h.mu.Lock()
	pairs := h.jar.Cookies(u, h.clock())
	h.mu.Unlock()

	cookies := make([]*http.Cookie, len(pairs))
	for i, p := range pairs {
		cookies[i] = &http.Cookie{Name: p.Name, Value: p.Value}
	}
	return cookies
}

// RemoveCookie remove the cookies for the given URL.
func (h *HTTPJar) RemoveCookie(u *url.URL) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.jar.Remove(u)
}

// SetCookieString handles the receipt of the cookies string in a reply for the given URL.
func (h *HTTPJar) SetCookieString(u *url.URL, cookies string) {
	converted := ParseCookieString(cookies)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.jar.SetCookies(u, converted, h.clock())
}

// CookieString returns the cookies string to send in a request for the given URL.
func (h *HTTPJar) CookieString(u *url.URL) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return CookieHeader(h.jar.Cookies(u, h.clock()))
}

// Snapshot returns copies of all stored entries ordered by id.
func (h *HTTPJar) Snapshot() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.jar.Snapshot()
}
