package netio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/chisq"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// Sentinel errors for the two file formats.
var (
	// ErrInvalidNetwork indicates a malformed network file.
	ErrInvalidNetwork = errors.New("netio: invalid network file")

	// ErrInvalidData indicates a malformed data file.
	ErrInvalidData = errors.New("netio: invalid data file")
)

// intScanner pulls whitespace-separated integers off a reader.
type intScanner struct {
	sc *bufio.Scanner
}

func newIntScanner(r io.Reader) *intScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &intScanner{sc: sc}
}

func (s *intScanner) next(sentinel error) (int, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", sentinel, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input", sentinel)
	}
	n, err := strconv.Atoi(s.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", sentinel, s.sc.Text())
	}
	return n, nil
}

// readDigraph reads one edge list into a digraph on vertCount vertices.
func readDigraph(s *intScanner, vertCount int) (core.Digraph, error) {
	digraph := core.NewDigraph(vertCount)

	edgeCount, err := s.next(ErrInvalidNetwork)
	if err != nil {
		return core.Digraph{}, err
	}
	if edgeCount < 0 {
		return core.Digraph{}, fmt.Errorf("%w: negative edge count %d", ErrInvalidNetwork, edgeCount)
	}

	for edgeIdx := 0; edgeIdx < edgeCount; edgeIdx++ {
		a, err := s.next(ErrInvalidNetwork)
		if err != nil {
			return core.Digraph{}, err
		}
		b, err := s.next(ErrInvalidNetwork)
		if err != nil {
			return core.Digraph{}, err
		}
		if a < 0 || a >= vertCount || b < 0 || b >= vertCount {
			return core.Digraph{}, fmt.Errorf("%w: edge (%d, %d) out of range", ErrInvalidNetwork, a, b)
		}
		if a == b {
			return core.Digraph{}, fmt.Errorf("%w: self-loop at %d", ErrInvalidNetwork, a)
		}
		if digraph.HasEdge(a, b) {
			return core.Digraph{}, fmt.Errorf("%w: duplicate edge (%d, %d)", ErrInvalidNetwork, a, b)
		}
		digraph.AddEdge(a, b)
	}
	return digraph, nil
}

// ReadNetwork parses a network file: the true DAG followed by its known
// CPDAG, both on the same vertex set.
func ReadNetwork(r io.Reader) (dag, knownCPDAG core.Digraph, err error) {
	s := newIntScanner(r)

	vertCount, err := s.next(ErrInvalidNetwork)
	if err != nil {
		return core.Digraph{}, core.Digraph{}, err
	}
	if vertCount < 0 || vertCount > core.MaxVertCount {
		return core.Digraph{}, core.Digraph{}, fmt.Errorf("%w: vertex count %d out of range", ErrInvalidNetwork, vertCount)
	}

	dag, err = readDigraph(s, vertCount)
	if err != nil {
		return core.Digraph{}, core.Digraph{}, err
	}
	knownCPDAG, err = readDigraph(s, vertCount)
	if err != nil {
		return core.Digraph{}, core.Digraph{}, err
	}
	return dag, knownCPDAG, nil
}

// ReadData parses a data file into a categorical dataset.
func ReadData(r io.Reader) (*chisq.Data, error) {
	s := newIntScanner(r)

	varCount, err := s.next(ErrInvalidData)
	if err != nil {
		return nil, err
	}
	pointCount, err := s.next(ErrInvalidData)
	if err != nil {
		return nil, err
	}
	if varCount <= 0 || varCount > core.MaxVertCount {
		return nil, fmt.Errorf("%w: variable count %d out of range", ErrInvalidData, varCount)
	}
	if pointCount <= 0 {
		return nil, fmt.Errorf("%w: point count %d out of range", ErrInvalidData, pointCount)
	}

	data := &chisq.Data{
		CatCounts: make([]int, varCount),
		Points:    make([][]int, pointCount),
	}
	for v := 0; v < varCount; v++ {
		c, err := s.next(ErrInvalidData)
		if err != nil {
			return nil, err
		}
		if c < 2 {
			return nil, fmt.Errorf("%w: variable %d has %d categories", ErrInvalidData, v, c)
		}
		data.CatCounts[v] = c
	}
	for i := 0; i < pointCount; i++ {
		data.Points[i] = make([]int, varCount)
		for v := 0; v < varCount; v++ {
			val, err := s.next(ErrInvalidData)
			if err != nil {
				return nil, err
			}
			if val < 0 || val >= data.CatCounts[v] {
				return nil, fmt.Errorf("%w: point %d variable %d value %d out of range", ErrInvalidData, i, v, val)
			}
			data.Points[i][v] = val
		}
	}
	return data, nil
}
