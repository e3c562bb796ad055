package cookiejar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var registeredDomainTests = map[string]string{
	"foo.www.example.com": "example.com",
	"www.example.com":     "example.com",
	"example.com":         "example.com",
	"com":                 "com",
	"foo.www.bbc.co.uk":   "bbc.co.uk",
	"www.bbc.co.uk":       "bbc.co.uk",
	"bbc.co.uk":           "bbc.co.uk",
	"co.uk":               "co.uk",
	"uk":                  "uk",
	"192.168.0.5":         "192.168.0.5",
	"www.buggy.psl":       "www.buggy.psl",
	"www2.buggy.psl":      "buggy.psl",
	// malformed hosts never panic
	"":              "",
	".":             ".",
	".net":          ".net",
	"a.":            "a.",
	"a..":           "a..",
	"foo.www..com":  ".com",
	"foo.www...com": ".com",
}

func TestRegisteredDomain(t *testing.T) {
	t.Parallel()
	for host, want := range registeredDomainTests {
		assert.Equal(t, want, registeredDomain(host, testPSL{}), host)
	}
}

func TestRegisteredDomainAcceptAll(t *testing.T) {
	t.Parallel()
	for _, host := range []string{"www.example.com", "co.uk", "192.168.0.5"} {
		assert.Equal(t, host, registeredDomain(host, AcceptAll))
	}
	assert.Equal(t, "accept-all", AcceptAll.String())
}

func TestIsIP(t *testing.T) {
	t.Parallel()
	for host, want := range map[string]bool{
		"127.0.0.1":            true,
		"1.2.3.4":              true,
		"2001:4860:0:2001::68": true,
		"fe80::1%lo0":          true,
		"localhost":            false,
		"1.2.3":                false,
		"1.2.3.4.5":            false,
		"www.host.test":        false,
	} {
		assert.Equal(t, want, isIP(host), host)
	}
}
