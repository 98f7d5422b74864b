package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `Werkgelegenheid
A01 noord;10;20;1;1
A02 oost;5;50;2;2
totaal;15;70;3;3
`

func run(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.csv"), []byte(export), 0o644))
	t.Setenv("CHART_FS_ROOT", dir)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--env-file", filepath.Join(dir, "absent.env")))
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCleanCommand(t *testing.T) {
	out := run(t, "clean")
	assert.Equal(t, "A01,noord,10,20,1,1\nA02,oost,5,50,2,2\n", out)
}

func TestRenderCommand(t *testing.T) {
	out := run(t, "render", "--year", "2014", "--sort", "desc", "--width", "4")
	assert.Contains(t, out, "Werkzame personen · 2014 · desc")

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "A02 Oost", lines[3])
}
