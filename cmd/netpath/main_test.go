package main

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netpath/mapgen"
	"github.com/katalvlaran/netpath/network"
	"github.com/katalvlaran/netpath/snapshot"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()

	return out.String(), err
}

// scenarioFile saves the five-location reference map and returns its path.
func scenarioFile(t *testing.T) string {
	t.Helper()
	net := network.New[mapgen.Location]()
	for i := 0; i < 5; i++ {
		net.AddVertex(mapgen.NewLocation(i))
	}
	require.NoError(t, net.AddEdge(0, 1, 2))
	require.NoError(t, net.AddEdge(1, 2, 2))
	require.NoError(t, net.AddEdge(0, 2, 10))
	require.NoError(t, net.AddEdge(2, 3, 1))
	require.NoError(t, net.AddEdge(3, 4, 1))

	path, err := snapshot.SaveFile(filepath.Join(t.TempDir(), "scenario"), net)
	require.NoError(t, err)

	return path
}

func TestGenerateAndInspect(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "--out", filepath.Join(dir, "arena"),
		"--locations", "12", "--density", "0.4", "--seed", "3")
	require.NoError(t, err)
	require.Contains(t, out, "arena.json: 12 locations")

	out, err = run(t, "inspect", "--in", filepath.Join(dir, "arena.json"))
	require.NoError(t, err)
	require.Contains(t, out, "Adjacency Matrix")
	require.Contains(t, out, "Local 11")
	require.Contains(t, out, "locations: 12")
	require.Contains(t, out, "bidirectional: true")
	require.Contains(t, out, "connected: true")
}

func TestGenerate_InvalidParameters(t *testing.T) {
	_, err := run(t, "generate", "--out", filepath.Join(t.TempDir(), "bad"), "--locations", "3")
	require.ErrorIs(t, err, mapgen.ErrTooFewLocations)
}

func TestPath(t *testing.T) {
	file := scenarioFile(t)

	out, err := run(t, "path", "--in", file, "--from", "0", "--to", "4")
	require.NoError(t, err)
	require.Equal(t, "Local 0 -> Local 1 -> Local 2 -> Local 3 -> Local 4 (weight 6)\n", out)

	out, err = run(t, "path", "--in", file, "--from", "0", "--to", "4", "--kind", "longest")
	require.NoError(t, err)
	require.Equal(t, "Local 0 -> Local 2 -> Local 3 -> Local 4 (weight 12)\n", out)

	out, err = run(t, "path", "--in", file, "--from", "4", "--to", "0")
	require.NoError(t, err)
	require.Equal(t, "no path\n", out)

	_, err = run(t, "path", "--in", file, "--from", "0", "--to", "4", "--kind", "fastest")
	require.Error(t, err)

	_, err = run(t, "path", "--in", file, "--from", "0", "--to", "99")
	require.ErrorIs(t, err, mapgen.ErrLocationNotFound)
}

func TestSample(t *testing.T) {
	file := scenarioFile(t)

	out, err := run(t, "sample", "--in", file, "--from", "0", "--to", "4", "--runs", "50", "--workers", "3", "--search-seed", "9")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, strings.HasPrefix(lines[0], "50 runs, "))
	total := 0
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		require.NotEmpty(t, fields)
		n, err := strconv.Atoi(fields[0])
		require.NoError(t, err)
		rest := strings.Join(fields[1:], " ")
		require.True(t, strings.HasPrefix(rest, "Local 0 -> "), rest)
		total += n
	}
	require.Equal(t, 50, total)

	again, err := run(t, "sample", "--in", file, "--from", "0", "--to", "4", "--runs", "50", "--workers", "1", "--search-seed", "9")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "netpath dev\n", out)
}
