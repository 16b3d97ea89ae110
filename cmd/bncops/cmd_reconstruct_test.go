package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// writeTempFile drops content into a fresh temp file and returns its
// path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOracleFlagExclusivity(t *testing.T) {
	netFile := writeTempFile(t, "net.txt", "2 1 0 1 0")
	dataFile := writeTempFile(t, "data.txt", "2 2 2 2 0 0 1 1")

	tests := []struct {
		name  string
		flags map[string]string
	}{
		{"neither source", nil},
		{"both sources", map[string]string{"net": netFile, "data": dataFile}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newReconstructCmd()
			for flag, value := range tc.flags {
				require.NoError(t, cmd.Flags().Set(flag, value))
			}
			_, _, err := loadOracle(cmd)
			assert.ErrorContains(t, err, "exactly one of --net and --data")
		})
	}
}

func TestLoadOracleNetworkMode(t *testing.T) {
	// 0→2←1 with its known CPDAG (both edges oriented).
	netFile := writeTempFile(t, "net.txt", "3 2 0 2 1 2 2 0 2 1 2")

	cmd := newReconstructCmd()
	require.NoError(t, cmd.Flags().Set("net", netFile))

	orc, known, err := loadOracle(cmd)
	require.NoError(t, err)
	assert.True(t, orc.Graphical())
	assert.Equal(t, 3, orc.VertCount())

	require.NotNil(t, known)
	assert.True(t, known.HasDirectedEdge(0, 2))
	assert.True(t, known.HasDirectedEdge(1, 2))
}

func TestLoadOracleDataMode(t *testing.T) {
	dataFile := writeTempFile(t, "data.txt", "2 2 2 2 0 0 1 1")

	cmd := newReconstructCmd()
	require.NoError(t, cmd.Flags().Set("data", dataFile))

	orc, known, err := loadOracle(cmd)
	require.NoError(t, err)
	assert.False(t, orc.Graphical())
	assert.Equal(t, 2, orc.VertCount())
	assert.Nil(t, known, "no known CPDAG in data mode")
}

func TestLoadOracleErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cmd := newReconstructCmd()
		require.NoError(t, cmd.Flags().Set("net", filepath.Join(t.TempDir(), "absent.txt")))
		_, _, err := loadOracle(cmd)
		assert.Error(t, err)
	})

	t.Run("malformed network", func(t *testing.T) {
		cmd := newReconstructCmd()
		require.NoError(t, cmd.Flags().Set("net", writeTempFile(t, "bad.txt", "not a network")))
		_, _, err := loadOracle(cmd)
		assert.Error(t, err)
	})
}

func TestPrintCPDAG(t *testing.T) {
	// 0→1 oriented, 1–2 and 0–2 undirected.
	d := core.NewDigraph(3)
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.AddEdge(2, 1)
	d.AddEdge(0, 2)
	d.AddEdge(2, 0)

	var buf bytes.Buffer
	printCPDAG(&buf, &d)

	assert.Equal(t, "3\n1\n0 1\n2\n0 2\n1 2\n", buf.String())
}

func TestPrintCPDAGEmpty(t *testing.T) {
	d := core.NewDigraph(0)
	var buf bytes.Buffer
	printCPDAG(&buf, &d)
	assert.Equal(t, "0\n0\n0\n", buf.String())
}
