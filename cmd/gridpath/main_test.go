package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestRun_Flags(t *testing.T) {
	code, out, _ := runCLI(t, "-size", "3", "-start", "0,0", "-end", "2,2", "-block", "1,1")
	assert.Equal(t, exitFound, code)
	assert.Equal(t, "S..\n*#.\n**E\nPath found! Size: 4 steps.\n", out)
}

func TestRun_NoPath(t *testing.T) {
	code, out, _ := runCLI(t, "-size", "3", "-start", "0,0", "-end", "2,2", "-block", "1,0;0,1")
	assert.Equal(t, exitNoPath, code)
	assert.Contains(t, out, "No path found! Clearing 1 wall(s)")
}

func TestRun_LayoutAndPNG(t *testing.T) {
	dir := t.TempDir()
	layoutPath := filepath.Join(dir, "maze.txt")
	require.NoError(t, os.WriteFile(layoutPath, []byte("; maze\nS.#\n.##\n..E\n"), 0o600))
	pngPath := filepath.Join(dir, "maze.png")

	code, out, stderr := runCLI(t, "-layout", layoutPath, "-png", pngPath, "-cell-px", "4", "-strategy", "bfs")
	require.Equal(t, exitFound, code, stderr)
	assert.Contains(t, out, "Path found! Size: 4 steps.")

	f, err := os.Open(pngPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
}

func TestRun_ConfigFileAndOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "gridpath.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[grid]\nsize = 4\nmax_steps = 2\n"), 0o600))

	code, _, _ := runCLI(t, "-config", cfgPath, "-start", "0,0", "-end", "3,3")
	assert.Equal(t, exitNoPath, code, "max_steps from the file applies")

	code, _, _ = runCLI(t, "-config", cfgPath, "-max-steps", "0", "-start", "0,0", "-end", "3,3")
	assert.Equal(t, exitFound, code, "flag overrides the file")
}

func TestRun_Errors(t *testing.T) {
	cases := [][]string{
		{"-start", "0,0"},
		{"-start", "0,0", "-end", "x"},
		{"-size", "3", "-start", "0,0", "-end", "5,5"},
		{"-start", "0,0", "-end", "0,0"},
		{"-strategy", "astar", "-start", "0,0", "-end", "1,1"},
		{"-block", "nope"},
		{"-layout", filepath.Join(t.TempDir(), "missing.txt")},
		{"-unknown-flag"},
	}
	for _, args := range cases {
		code, _, _ := runCLI(t, args...)
		assert.Equal(t, exitError, code, "%v", args)
	}
}
