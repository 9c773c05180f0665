package dotenv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreservesFileOrder(t *testing.T) {
	path := writeEnvFile(t, `# service config
PORT=3000
NODE_ENV=production

# credentials
API_KEY=sk-1234567890
DEBUG=false
`)

	snap, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"PORT", "NODE_ENV", "API_KEY", "DEBUG"}, snap.Keys())
	v, ok := snap.Get("API_KEY")
	assert.True(t, ok)
	assert.Equal(t, "sk-1234567890", v)
}

func TestLoadHandlesQuotesAndExports(t *testing.T) {
	path := writeEnvFile(t, `export GREETING="hello world"
EMPTY=
QUOTED='single'
`)

	snap, err := NewSource(path).Load(context.Background())
	require.NoError(t, err)

	v, _ := snap.Get("GREETING")
	assert.Equal(t, "hello world", v)

	v, ok := snap.Get("EMPTY")
	assert.True(t, ok, "empty assignment should still be present")
	assert.Equal(t, "", v)

	v, _ = snap.Get("QUOTED")
	assert.Equal(t, "single", v)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	t.Run("required", func(t *testing.T) {
		_, err := NewSource(missing).Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("optional", func(t *testing.T) {
		snap, err := NewOptionalSource(missing).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, snap.Len())
	})
}

func TestLoadObservesFileChanges(t *testing.T) {
	path := writeEnvFile(t, "PORT=3000\n")
	src := NewSource(path)

	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	v, _ := snap.Get("PORT")
	assert.Equal(t, "3000", v)

	require.NoError(t, os.WriteFile(path, []byte("PORT=8080\n"), 0o644))

	snap, err = src.Load(context.Background())
	require.NoError(t, err)
	v, _ = snap.Get("PORT")
	assert.Equal(t, "8080", v, "Load must observe the current file content")
}
