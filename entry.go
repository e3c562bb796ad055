package cookiejar

import (
	"strings"
	"time"
)

// endOfTime is the time when session (non-persistent) cookies expire.
// This instant is representable in most date/time formats (not just
// Go's time.Time) and should be far enough in the future.
var endOfTime = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

// Entry is the internal representation of a stored cookie.
type Entry struct {
	Name       string
	Value      string
	Domain     string
	Path       string
	SameSite   SameSite
	Secure     bool
	HttpOnly   bool
	Persistent bool
	HostOnly   bool
	Expires    time.Time
	Creation   time.Time
	LastAccess time.Time

	// SeqNum is assigned once at creation so that Cookies returns
	// cookies in a deterministic order, even for cookies that have
	// equal Path length and equal Creation time.
	SeqNum uint64
}

// ID returns the domain;path;name triple of e as an id.
func (e *Entry) ID() string {
	return id(e.Domain, e.Path, e.Name)
}

func id(domain, path, name string) string {
	return domain + ";" + path + ";" + name
}

// expired reports whether e must not be returned at now.
func (e *Entry) expired(now time.Time) bool {
	return !e.Expires.After(now)
}

// shouldSend determines whether e's cookie qualifies to be included in a
// request to host/path. It is the caller's responsibility to check if the
// cookie is expired.
func (e *Entry) shouldSend(https bool, host, path string) bool {
	return e.domainMatch(host) && e.pathMatch(path) && (https || !e.Secure)
}

// domainMatch implements "domain-match" of RFC 6265 section 5.1.3.
// The host is expected in canonical form.
func (e *Entry) domainMatch(host string) bool {
	if e.Domain == host {
		return true
	}
	return !e.HostOnly && !isIP(host) && hasDotSuffix(host, e.Domain)
}

// pathMatch implements "path-match" according to RFC 6265 section 5.1.4.
func (e *Entry) pathMatch(requestPath string) bool {
	if requestPath == "" {
		requestPath = "/"
	}
	if requestPath == e.Path {
		return true
	}
	if e.Path == "" {
		return false
	}
	if strings.HasPrefix(requestPath, e.Path) {
		if e.Path[len(e.Path)-1] == '/' {
			return true // The "/any/" matches "/any/path" case.
		} else if requestPath[len(e.Path)] == '/' {
			return true // The "/any" matches "/any/path" case.
		}
	}
	return false
}
