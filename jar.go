// Package cookiejar implements an in-memory RFC 6265-compliant cookie jar.
package cookiejar

import (
	"math"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// maxAgeSeconds is the largest Max-Age that does not overflow time.Duration.
const maxAgeSeconds = math.MaxInt64 / int64(time.Second)

// Jar stores cookies and selects the ones to send with a request.
//
// A Jar is not safe for concurrent use, calls must be serialized by the
// caller. HTTPJar is the guarded form for use with net/http.
type Jar struct {
	psl    PublicSuffixList
	logger *slog.Logger

	maxEntries          int
	maxEntriesPerDomain int

	// entries is a set of entries, keyed by their registered domain
	// and then by their id.
	entries map[string]map[string]*Entry
	size    int

	// nextSeqNum is the next sequence number assigned to a new cookie.
	nextSeqNum atomic.Uint64
}

// New returns a new cookie jar. The options must carry a PublicSuffixList,
// use AcceptAll to disable the public suffix restrictions explicitly.
func New(opts Options) (*Jar, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Jar{
		psl:                 opts.PublicSuffixList,
		logger:              logger,
		maxEntries:          opts.MaxEntries,
		maxEntriesPerDomain: opts.MaxEntriesPerDomain,
		entries:             make(map[string]map[string]*Entry),
	}, nil
}

// SetCookies handles the receipt of the cookies in a reply for the given
// URL at the time now. Cookies that can not be stored are dropped, the
// remaining cookies of the batch still apply.
func (j *Jar) SetCookies(u *url.URL, cookies []Cookie, now time.Time) {
	if len(cookies) == 0 {
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return
	}
	host, err := canonicalHost(u)
	if err != nil {
		j.logger.Debug("drop cookies", "url", u.Redacted(), "err", err)
		return
	}
	defPath := defaultPath(u.Path)

	for _, cookie := range cookies {
		if err = j.setCookie(host, defPath, cookie, now); err != nil {
			j.logger.Debug("drop cookie", "name", cookie.Name, "host", host, "err", err)
		}
	}
}

func (j *Jar) setCookie(host, defPath string, c Cookie, now time.Time) error {
	domain, hostOnly, err := j.domainAndType(host, c.Domain)
	if err != nil {
		return &CookieError{Name: c.Name, Host: host, err: err}
	}

	path := c.Path
	if path == "" || path[0] != '/' {
		path = defPath
	}

	expires, persistent := endOfTime, false
	if c.HasMaxAge {
		expires, persistent = endOfTime, true
		if int64(c.MaxAge) <= maxAgeSeconds {
			expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
	} else if !c.Expires.IsZero() {
		expires, persistent = c.Expires, true
	}

	key := registeredDomain(domain, j.psl)
	submap := j.entries[key]
	eid := id(domain, path, c.Name)

	if !expires.After(now) {
		// a delete request never creates an entry
		if _, ok := submap[eid]; ok {
			j.remove(key, eid)
		}
		return nil
	}

	e, ok := submap[eid]
	if !ok {
		e = &Entry{
			Name:       c.Name,
			Creation:   now,
			LastAccess: now,
			SeqNum:     j.nextSeqNum.Add(1) - 1,
		}
		if submap == nil {
			submap = make(map[string]*Entry)
			j.entries[key] = submap
		}
		submap[eid] = e
		j.size++
	}
	e.Value = c.Value
	e.Domain = domain
	e.Path = path
	e.SameSite = c.SameSite
	e.Secure = c.Secure
	e.HttpOnly = c.HttpOnly
	e.Persistent = persistent
	e.HostOnly = hostOnly
	e.Expires = expires

	if !ok {
		j.enforceLimits(key, eid, now)
	}
	return nil
}

// domainAndType determines the cookie's domain and hostOnly attribute.
func (j *Jar) domainAndType(host, domain string) (string, bool, error) {
	if domain == "" {
		// No domain attribute in the SetCookie header indicates a
		// host cookie.
		return host, true, nil
	}

	if isIP(host) {
		// Domain cookies are forbidden on IP hosts.
		return "", false, ErrIllegalDomain
	}

	// From here on: If the cookie is valid, it is a domain cookie (with
	// the one exception of a public suffix below).
	// See RFC 6265 section 5.2.3.
	if domain[0] == '.' {
		domain = domain[1:]
	}

	if len(domain) == 0 || domain[0] == '.' {
		// Received either "Domain=." or "Domain=..some.thing",
		// both are illegal.
		return "", false, ErrMalformedDomain
	}

	if !isASCII(domain) {
		return "", false, ErrMalformedDomain
	}
	domain = strings.ToLower(domain)

	if domain[len(domain)-1] == '.' {
		// We received stuff like "Domain=www.example.com.".
		// Browsers do handle such stuff (actually differently) but
		// RFC 6265 seems to be clear here (e.g. section 4.1.2.3) in
		// requiring a reject.  4.1.2.3 is not normative, but
		// "Domain Matching" (5.1.3) and "Canonicalized Host Names"
		// (5.1.2) are.
		return "", false, ErrMalformedDomain
	}

	// See RFC 6265 section 5.3 #5.
	if ps := j.psl.PublicSuffix(domain); ps != "" && !hasDotSuffix(domain, ps) {
		if host == domain {
			// This is the one exception in which a cookie
			// with a domain attribute is a host cookie.
			return host, true, nil
		}
		return "", false, ErrIllegalDomain
	}

	// The domain must domain-match host: www.mycompany.com cannot
	// set cookies for .ourcompetitors.com.
	if host != domain && !hasDotSuffix(host, domain) {
		return "", false, ErrIllegalDomain
	}

	return domain, false, nil
}

// Cookies returns the cookies to send in a request for the given URL at
// the time now, ordered by path length (longest first), then creation
// time, then insertion order.
func (j *Jar) Cookies(u *url.URL, now time.Time) []Pair {
	selected := j.selected(u, now)
	pairs := make([]Pair, len(selected))
	for i, e := range selected {
		e.LastAccess = now
		pairs[i] = Pair{Name: e.Name, Value: e.Value}
	}
	return pairs
}

// selected returns the sorted entries to send to u, purging the expired
// entries found on the way.
func (j *Jar) selected(u *url.URL, now time.Time) (selected []*Entry) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return
	}
	host, err := canonicalHost(u)
	if err != nil {
		return
	}
	https := u.Scheme == "https"
	path := requestPath(u)

	type doomed struct{ key, id string }
	var expired []doomed

	for _, key := range candidateKeys(host) {
		for eid, e := range j.entries[key] {
			if e.expired(now) {
				expired = append(expired, doomed{key, eid})
				continue
			}
			if !e.shouldSend(https, host, path) {
				continue
			}
			selected = append(selected, e)
		}
	}
	for _, d := range expired {
		j.remove(d.key, d.id)
	}

	slices.SortFunc(selected, compareEntries)
	return
}

// compareEntries orders by path length descending, then creation time,
// then sequence number.
func compareEntries(a, b *Entry) int {
	if len(a.Path) != len(b.Path) {
		return len(b.Path) - len(a.Path)
	}
	if c := a.Creation.Compare(b.Creation); c != 0 {
		return c
	}
	switch {
	case a.SeqNum < b.SeqNum:
		return -1
	case a.SeqNum > b.SeqNum:
		return 1
	}
	return 0
}

// candidateKeys returns the bucket keys that may hold entries for host:
// host itself and all of its parent domains.
func candidateKeys(host string) []string {
	if isIP(host) {
		return []string{host}
	}
	keys := []string{host}
	for i := strings.IndexByte(host, '.'); i >= 0; i = strings.IndexByte(host, '.') {
		host = host[i+1:]
		if host == "" {
			break
		}
		keys = append(keys, host)
	}
	return keys
}

// Remove deletes every cookie that would be sent to u over a secure
// connection.
func (j *Jar) Remove(u *url.URL) {
	host, err := canonicalHost(u)
	if err != nil {
		return
	}
	path := requestPath(u)
	for _, key := range candidateKeys(host) {
		var ids []string
		for eid, e := range j.entries[key] {
			if e.shouldSend(true, host, path) {
				ids = append(ids, eid)
			}
		}
		for _, eid := range ids {
			j.remove(key, eid)
		}
	}
}

// Len returns the number of stored entries, including expired entries
// that have not been purged yet.
func (j *Jar) Len() int { return j.size }

// Snapshot returns copies of all stored entries ordered by id, including
// expired entries that have not been purged yet.
func (j *Jar) Snapshot() []Entry {
	all := make([]Entry, 0, j.size)
	for _, submap := range j.entries {
		for _, e := range submap {
			all = append(all, *e)
		}
	}
	slices.SortFunc(all, func(a, b Entry) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return all
}

func (j *Jar) remove(key, eid string) {
	submap, ok := j.entries[key]
	if !ok {
		return
	}
	if _, ok = submap[eid]; !ok {
		return
	}
	delete(submap, eid)
	j.size--
	if len(submap) == 0 {
		delete(j.entries, key)
	}
}
