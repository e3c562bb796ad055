package cookiejar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration the jar options can not be used to build a jar.
	ErrInvalidConfiguration = errors.New("cookiejar: invalid configuration")
	// ErrIllegalDomain the cookie domain attribute does not cover the request host.
	ErrIllegalDomain = errors.New("cookiejar: illegal cookie domain attribute")
	// ErrMalformedDomain the cookie domain attribute is not a valid domain.
	ErrMalformedDomain = errors.New("cookiejar: malformed cookie domain attribute")
	// ErrNoHost the request URL has no host.
	ErrNoHost = errors.New("cookiejar: no host name in URL")
)

// CookieError the error of a cookie dropped during ingestion.
type CookieError struct {
	Name string
	Host string
	err  error
}

func (e *CookieError) Error() string {
	return fmt.Sprintf("cookie %q from %s: %s", e.Name, e.Host, e.err)
}

func (e *CookieError) String() string { return e.Error() }

func (e *CookieError) Unwrap() error { return e.err }
