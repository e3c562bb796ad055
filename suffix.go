package cookiejar

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// PublicSuffixList provides the public suffix of a domain. For example:
//   - the public suffix of "example.com" is "com",
//   - the public suffix of "foo1.foo2.foo3.co.uk" is "co.uk", and
//   - the public suffix of "bar.pvt.k12.ma.us" is "pvt.k12.ma.us".
//
// Implementations of PublicSuffixList must be safe for concurrent use by
// multiple goroutines.
//
// golang.org/x/net/publicsuffix.List satisfies this interface.
type PublicSuffixList interface {
	// PublicSuffix returns the public suffix of domain.
	PublicSuffix(domain string) string

	// String returns a description of the source of this public suffix
	// list. The description will typically contain something like a time
	// stamp or version number.
	String() string
}

// ICANN the public suffix list compiled into golang.org/x/net/publicsuffix.
var ICANN PublicSuffixList = publicsuffix.List

// AcceptAll a PublicSuffixList that reports no public suffix at all, so no
// cookie domain is ever rejected for being a suffix.
var AcceptAll PublicSuffixList = acceptAll{}

type acceptAll struct{}

func (acceptAll) PublicSuffix(string) string { return "" }

func (acceptAll) String() string { return "accept-all" }

// registeredDomain returns the bucket key for domain: the effective top
// level domain plus one label, or domain itself for IP literals, public
// suffixes and lists inconsistent with domain.
func registeredDomain(domain string, psl PublicSuffixList) string {
	if isIP(domain) {
		return domain
	}

	suffix := psl.PublicSuffix(domain)
	if suffix == "" || suffix == domain {
		return domain
	}
	i := len(domain) - len(suffix)
	if i <= 0 || domain[i-1] != '.' {
		// broken list
		return domain
	}
	prevDot := strings.LastIndex(domain[:i-1], ".")
	return domain[prevDot+1:]
}

// isIP reports whether host is an IP address.
func isIP(host string) bool {
	if strings.ContainsAny(host, ":%") {
		// IPv6 with zone, net.ParseIP rejects zones
		return true
	}
	return net.ParseIP(host) != nil
}
