package twverify

import (
	"bufio"
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

func TestWritePACE(t *testing.T) {
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 3)

	var buf bytes.Buffer
	require.NoError(t, writePACE(&buf, &g))

	// 1-indexed, each undirected edge once, from the smaller endpoint.
	assert.Equal(t, "p tw 4 3\n1 2\n1 4\n2 3\n", buf.String())
}

func TestWritePACEEdgeless(t *testing.T) {
	g := core.NewGraph(2)
	var buf bytes.Buffer
	require.NoError(t, writePACE(&buf, &g))
	assert.Equal(t, "p tw 2 0\n", buf.String())
}

func TestParseAnswer(t *testing.T) {
	answer := "s td 2 2 3\nb 1 1 2\nb 2 2 3\n1 2\n"
	tw, err := parseAnswer(bufio.NewReader(strings.NewReader(answer)), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, tw)
}

func TestParseAnswerSingleBag(t *testing.T) {
	answer := "s td 1 3 3\nb 1 1 2 3\n"
	tw, err := parseAnswer(bufio.NewReader(strings.NewReader(answer)), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, tw)
}

func TestParseAnswerErrors(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		verts  int
	}{
		{"wrong header", "c td 1 1 1\nb 1 1\n", 1},
		{"wrong vertex count", "s td 1 1 2\nb 1 1\n", 1},
		{"treewidth out of range", "s td 1 5 1\nb 1 1\n", 1},
		{"bad bag line", "s td 1 1 1\nx 1 1\n", 1},
		{"link out of range", "s td 2 2 2\nb 1 1 2\nb 2 2\n1 3\n", 2},
		{"truncated", "s td", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseAnswer(bufio.NewReader(strings.NewReader(tc.answer)), tc.verts)
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestSolverRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	// A stub solver: swallow the input in the background and answer
	// with a canned decomposition of the path 0–1.
	s, err := New("sh", "-c",
		`cat >/dev/null & printf 's td 2 2 2\nb 1 1 2\nb 2 2\n1 2\n'`)
	require.NoError(t, err)
	defer s.Close()

	g := core.NewGraph(2)
	g.AddEdge(0, 1)
	tw, err := s.Treewidth(&g)
	require.NoError(t, err)
	assert.Equal(t, 1, tw)
}

func TestTreewidthEmptyGraphNoRoundTrip(t *testing.T) {
	// The empty graph is answered locally; no subprocess is needed.
	s := &Solver{}
	g := core.NewGraph(0)
	tw, err := s.Treewidth(&g)
	require.NoError(t, err)
	assert.Equal(t, 0, tw)
}
