package percolate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"percolate/internal/config"
	"percolate/internal/results"
)

func writeParams(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun_WritesResultFiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data")
	db := filepath.Join(t.TempDir(), "runs.db")
	cfg := config.Config{
		ParamFile:     writeParams(t, "# L T p0 pk dp\n6 10 0.0 1.0 0.5\n"),
		OutputDir:     out,
		DBPath:        db,
		Workers:       2,
		Seed:          17,
		LogLevel:      "info",
		Distributions: true,
	}
	var logs bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, &logs))

	ave, err := os.ReadFile(filepath.Join(out, "Ave_L6T10.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(ave)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0.000\t0.0\t0.0", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0.500\t"), lines[1])

	_, err = os.Stat(filepath.Join(out, "Dist_p0.000L6T10.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(out, "Dist_p0.500L6T10.txt"))
	assert.NoError(t, err)

	store, err := results.Open(context.Background(), db)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Runs(context.Background(), 6, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	assert.Contains(t, logs.String(), "sweep finished")
}

func TestRun_Errors(t *testing.T) {
	err := Run(context.Background(), config.Config{ParamFile: filepath.Join(t.TempDir(), "missing.txt"), LogLevel: "info"}, nil)
	assert.Error(t, err)

	err = Run(context.Background(), config.Config{ParamFile: writeParams(t, "6 10 0 1 0.5"), LogLevel: "chatty"}, nil)
	assert.Error(t, err)

	err = Run(context.Background(), config.Config{ParamFile: writeParams(t, "6 10 0 1"), LogLevel: "info"}, nil)
	assert.ErrorIs(t, err, config.ErrInvalidParamFile)
}
