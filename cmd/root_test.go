package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_PATH", filepath.Join(dir, "missing.env"))
	t.Setenv("LOG_PATH", dir)
	t.Setenv("DB_DRIVER", "memory")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "seed", "dbcheck"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, root.RunE, "root defaults to serve")
}

func TestDBCheck_MemoryStore(t *testing.T) {
	memoryEnv(t)

	out, err := run(t, "dbcheck", "--limit", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Connected to memory store")
	assert.Contains(t, out, "13 movies in total, 5 pages of 3")
	assert.Contains(t, out, "Toy Story")
}

func TestSeed_SkipsExisting(t *testing.T) {
	memoryEnv(t)

	out, err := run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "0 movies inserted, 13 already present, 0 deleted")

	out, err = run(t, "seed", "--drop")
	require.NoError(t, err)
	assert.Contains(t, out, "13 movies inserted, 0 already present, 13 deleted")
}

func TestRoot_InvalidConfig(t *testing.T) {
	memoryEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := run(t, "dbcheck")

	assert.ErrorContains(t, err, "invalid DB_DRIVER")
}
