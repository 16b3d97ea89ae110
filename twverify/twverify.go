package twverify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/bitset"
	"github.com/ttalvitie/learning-bns-with-cops-and-robbers/core"
)

// ErrProtocol indicates an answer that does not follow the PACE output
// format.
var ErrProtocol = errors.New("twverify: protocol violation")

// Solver is a handle to a running external treewidth solver. It is not
// safe for concurrent use; one graph is in flight at a time.
type Solver struct {
	cmd *exec.Cmd
	in  *bufio.Writer
	inC io.Closer
	out *bufio.Reader
}

// New starts the solver subprocess. The command must keep reading PACE
// inputs from stdin and answering on stdout until killed.
func New(command string, args ...string) (*Solver, error) {
	cmd := exec.Command(command, args...)
	setParentDeathSignal(cmd)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("twverify: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("twverify: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("twverify: %w", err)
	}

	return &Solver{
		cmd: cmd,
		in:  bufio.NewWriter(stdin),
		inC: stdin,
		out: bufio.NewReader(stdout),
	}, nil
}

// Close kills the subprocess and reaps it. The solver is unusable
// afterwards.
func (s *Solver) Close() error {
	_ = s.inC.Close()
	if err := s.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("twverify: %w", err)
	}
	// Kill above makes Wait report an exit error; only reaping matters.
	_ = s.cmd.Wait()
	return nil
}

// writePACE emits graph in PACE input form, 1-indexed, one edge per
// line, each undirected edge once.
func writePACE(w io.Writer, graph *core.Graph) error {
	edgeCount := 0
	for v := 0; v < graph.VertCount(); v++ {
		edgeCount += graph.AdjacentVerts(v).Minus(bitset.Range(v)).Count()
	}

	if _, err := fmt.Fprintf(w, "p tw %d %d\n", graph.VertCount(), edgeCount); err != nil {
		return err
	}
	for v := 0; v < graph.VertCount(); v++ {
		var err error
		graph.AdjacentVerts(v).Minus(bitset.Range(v)).ForEachWhile(func(x int) bool {
			_, err = fmt.Fprintf(w, "%d %d\n", v+1, x+1)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// parseAnswer consumes one tree-decomposition answer for a graph on
// vertCount vertices and returns the treewidth (header max bag size
// minus one).
func parseAnswer(r *bufio.Reader, vertCount int) (int, error) {
	var s, td string
	var bagCount, maxBagSize, answerVerts int
	if _, err := fmt.Fscan(r, &s, &td, &bagCount, &maxBagSize, &answerVerts); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrProtocol, err)
	}
	if s != "s" || td != "td" {
		return 0, fmt.Errorf("%w: answer starts %q %q", ErrProtocol, s, td)
	}
	if bagCount < 0 {
		return 0, fmt.Errorf("%w: negative bag count", ErrProtocol)
	}
	tw := maxBagSize - 1
	if tw < 0 || tw > vertCount-1 {
		return 0, fmt.Errorf("%w: treewidth %d out of range", ErrProtocol, tw)
	}
	if answerVerts != vertCount {
		return 0, fmt.Errorf("%w: answer for %d vertices, want %d", ErrProtocol, answerVerts, vertCount)
	}

	for bagIdx := 0; bagIdx < bagCount; bagIdx++ {
		var b string
		if _, err := fmt.Fscan(r, &b); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrProtocol, err)
		}
		if b != "b" {
			return 0, fmt.Errorf("%w: bag line starts %q", ErrProtocol, b)
		}
		// Bag contents are not needed; skip to end of line.
		if _, err := r.ReadString('\n'); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrProtocol, err)
		}
	}

	for linkIdx := 1; linkIdx < bagCount; linkIdx++ {
		var a, b int
		if _, err := fmt.Fscan(r, &a, &b); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrProtocol, err)
		}
		if a < 1 || a > bagCount || b < 1 || b > bagCount {
			return 0, fmt.Errorf("%w: link (%d, %d) out of range", ErrProtocol, a, b)
		}
	}
	return tw, nil
}

// Treewidth submits graph to the solver and returns its exact
// treewidth. The empty graph has treewidth 0 without a round trip.
func (s *Solver) Treewidth(graph *core.Graph) (int, error) {
	if graph.VertCount() == 0 {
		return 0, nil
	}

	if err := writePACE(s.in, graph); err != nil {
		return 0, fmt.Errorf("twverify: %w", err)
	}
	if err := s.in.Flush(); err != nil {
		return 0, fmt.Errorf("twverify: %w", err)
	}
	return parseAnswer(s.out, graph.VertCount())
}
