package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  - text\noutput: gen/lexer\nforce: true\n"), 0644))

	opts := &Options{Output: defaultOutput}
	require.NoError(t, loadConfig(path, opts))
	require.Equal(t, []string{"text"}, []string(opts.Generate))
	require.Equal(t, "gen/lexer", opts.Output)
	require.True(t, opts.Force)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spag.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate:\n  - text\noutput: gen/lexer\n"), 0644))

	opts := &Options{Generate: []string{"go"}, Output: "explicit"}
	require.NoError(t, loadConfig(path, opts))
	require.Equal(t, []string{"go"}, []string(opts.Generate))
	require.Equal(t, "explicit", opts.Output)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	require.Error(t, loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), &Options{}))
}
