package cookiejar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigOptions(t *testing.T) {
	t.Parallel()
	opts, err := DefaultConfig().Options()
	require.NoError(t, err)
	assert.Equal(t, ICANN, opts.PublicSuffixList)

	opts, err = (&Config{PublicSuffix: " None ", MaxEntries: 10}).Options()
	require.NoError(t, err)
	assert.Equal(t, AcceptAll, opts.PublicSuffixList)
	assert.Equal(t, 10, opts.MaxEntries)

	_, err = (&Config{}).Options()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = (&Config{PublicSuffix: "mozilla"}).Options()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = (&Config{PublicSuffix: SuffixListICANN, MaxEntriesPerDomain: -1}).Options()
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestReadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cookiejar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
public_suffix: none
max_entries: 3000
max_entries_per_domain: 50
`), 0600))

	config, err := ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{PublicSuffix: SuffixListNone, MaxEntries: 3000, MaxEntriesPerDomain: 50}, config)

	require.NoError(t, os.WriteFile(path, []byte("max_entries: 5\n"), 0600))
	config, err = ReadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, SuffixListICANN, config.PublicSuffix)

	require.NoError(t, os.WriteFile(path, []byte("max_entries: [1\n"), 0600))
	_, err = ReadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptionsFromMap(t *testing.T) {
	t.Parallel()
	opts, err := OptionsFromMap(map[string]any{
		"public_suffix":          "none",
		"max_entries":            "100",
		"max_entries_per_domain": 20.0,
	})
	require.NoError(t, err)
	assert.Equal(t, AcceptAll, opts.PublicSuffixList)
	assert.Equal(t, 100, opts.MaxEntries)
	assert.Equal(t, 20, opts.MaxEntriesPerDomain)

	opts, err = OptionsFromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, ICANN, opts.PublicSuffixList)

	_, err = OptionsFromMap(map[string]any{"max_entries": "many"})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = OptionsFromMap(map[string]any{"quota": 1})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExpandPath(t *testing.T) {
	t.Parallel()
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	p, err := expandPath("~/cookiejar.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "cookiejar.yaml"), p)

	p, err = expandPath("./cookiejar.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "cookiejar.yaml"), p)

	p, err = expandPath("/etc/cookiejar.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/cookiejar.yaml", p)
}
