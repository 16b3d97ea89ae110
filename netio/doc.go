// Package netio parses the two on-disk formats the learners consume.
//
// Network files (graphical mode, test fixtures): a vertex count V
// followed by two edge lists — the DAG and its known CPDAG — each an
// edge count E and E (source, target) pairs. Whitespace of any kind
// separates tokens.
//
// Data files (statistical mode): variable count V and row count N,
// then V category counts (each at least 2), then N·V category indices
// row-major.
//
// Both readers validate everything that crosses the boundary —
// vertex ranges, self-loops, duplicate edges, category ranges — and
// return ErrInvalidNetwork / ErrInvalidData wrapped with position
// context. Nothing is persisted; parsing is the only I/O this module
// does on its own behalf.
package netio
