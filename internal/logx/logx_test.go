package logx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "navshell.log")
	closer, err := Init(Options{Path: path, Level: "debug"})
	require.NoError(t, err)

	Info("navigated", "path", "/about")
	Debug("odd", "only-key")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"path":"/about"`)
	require.Contains(t, string(data), "odd number of fields")
}

func TestInitWithoutPathDiscards(t *testing.T) {
	closer, err := Init(Options{Level: "bogus"})
	require.NoError(t, err)
	Warn("dropped")
	require.NoError(t, closer.Close())
}
