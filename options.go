package cookiejar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

// Options the cookie jar options.
type Options struct {
	// PublicSuffixList is the public suffix list that determines whether
	// an HTTP server can set a cookie for a domain. It is required, use
	// AcceptAll to accept every domain.
	PublicSuffixList PublicSuffixList

	// MaxEntries is the maximum number of cookies in the jar before the
	// least recently used one is evicted. Zero means no limit.
	MaxEntries int

	// MaxEntriesPerDomain is the maximum number of cookies for one
	// registered domain. Zero means no limit.
	MaxEntriesPerDomain int

	// Logger receives the debug records of dropped and evicted cookies,
	// slog.Default if nil.
	Logger *slog.Logger

	// Clock is the time source of HTTPJar, time.Now if nil.
	Clock func() time.Time
}

func (o Options) validate() error {
	if o.PublicSuffixList == nil {
		return fmt.Errorf("%w: missing public suffix list", ErrInvalidConfiguration)
	}
	if o.MaxEntries < 0 || o.MaxEntriesPerDomain < 0 {
		return fmt.Errorf("%w: negative entry limit", ErrInvalidConfiguration)
	}
	return nil
}

const (
	// SuffixListICANN selects ICANN.
	SuffixListICANN = "icann"
	// SuffixListNone selects AcceptAll.
	SuffixListNone = "none"
)

// Config the cookie jar configuration file.
type Config struct {
	// PublicSuffix the public suffix list name, "icann" or "none".
	PublicSuffix string `yaml:"public_suffix"`

	// MaxEntries the maximum number of cookies, 0 is unlimited.
	MaxEntries int `yaml:"max_entries"`

	// MaxEntriesPerDomain the maximum number of cookies per registered domain, 0 is unlimited.
	MaxEntriesPerDomain int `yaml:"max_entries_per_domain"`
}

// DefaultConfig The default configuration
func DefaultConfig() *Config {
	return &Config{PublicSuffix: SuffixListICANN}
}

// Options converts the configuration into jar Options.
func (c *Config) Options() (Options, error) {
	opts := Options{
		MaxEntries:          c.MaxEntries,
		MaxEntriesPerDomain: c.MaxEntriesPerDomain,
	}
	switch strings.ToLower(strings.TrimSpace(c.PublicSuffix)) {
	case SuffixListICANN:
		opts.PublicSuffixList = ICANN
	case SuffixListNone:
		opts.PublicSuffixList = AcceptAll
	case "":
		return opts, fmt.Errorf("%w: missing public suffix list", ErrInvalidConfiguration)
	default:
		return opts, fmt.Errorf("%w: unknown public suffix list %q", ErrInvalidConfiguration, c.PublicSuffix)
	}
	return opts, opts.validate()
}

// ReadConfig read the jar configuration from the YAML file.
func ReadConfig(path string) (*Config, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err = yaml.Unmarshal(bytes, config); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
	}
	return config, nil
}

// OptionsFromMap converts loosely typed settings, such as decoded JSON or
// flag values, keyed like the YAML configuration.
func OptionsFromMap(m map[string]any) (opts Options, err error) {
	config := DefaultConfig()
	for key, value := range m {
		switch key {
		case "public_suffix":
			config.PublicSuffix, err = cast.ToStringE(value)
		case "max_entries":
			config.MaxEntries, err = cast.ToIntE(value)
		case "max_entries_per_domain":
			config.MaxEntriesPerDomain, err = cast.ToIntE(value)
		default:
			err = fmt.Errorf("unknown option %q", key)
		}
		if err != nil {
			return opts, fmt.Errorf("%w: %s", ErrInvalidConfiguration, err)
		}
	}
	return config.Options()
}

// expandPath expands path "." or "~"
func expandPath(path string) (string, error) {
	// expand local directory
	if path == "." || strings.HasPrefix(path, "./") {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, path[1:]), nil
	}
	// expand ~ as shortcut for home directory
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
