// Package dimacs reads the DIMACS .clq graph exchange format used by the
// standard Maximum Clique benchmark instances.
//
// Error policy: only sentinel variables are exposed; callers should use
// errors.Is to branch on semantics, and context is attached with
// fmt.Errorf("%w: ...") at the call site rather than by stringifying into
// the sentinel itself.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solventlabs/cliquetabu/graph"
)

var (
	// ErrMissingProblemLine is returned when the input ends without ever
	// seeing a "p edge N M" or "p col N M" declaration.
	ErrMissingProblemLine = errors.New("dimacs: missing problem line")

	// ErrMalformedLine is returned when a line cannot be parsed as a
	// comment, problem line, or edge line.
	ErrMalformedLine = errors.New("dimacs: malformed line")

	// ErrVertexOutOfRange is returned when an edge line references a
	// vertex id outside [1, N].
	ErrVertexOutOfRange = errors.New("dimacs: vertex id out of range")
)

// Read parses a DIMACS .clq stream into a *graph.Graph. Lines beginning
// with 'c' are comments and skipped. The problem line ("p edge N M" or
// "p col N M") declares N vertices; subsequent "e u v" lines (1-based)
// declare undirected edges. Duplicate edges are permitted (AddEdge is
// idempotent); self-loops are silently ignored, matching the DIMACS
// convention that they carry no graph-theoretic meaning for clique
// instances.
func Read(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var g *graph.Graph
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			if g != nil {
				return nil, fmt.Errorf("%w: line %d: duplicate problem line", ErrMalformedLine, lineNo)
			}
			n, err := parseProblemLine(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
			}
			g, err = graph.New(n)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, lineNo, err)
			}
		case "e":
			if g == nil {
				return nil, ErrMissingProblemLine
			}
			if err := addEdgeLine(g, fields, lineNo); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: line %d: unrecognized line type %q", ErrMalformedLine, lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}
	if g == nil {
		return nil, ErrMissingProblemLine
	}
	return g, nil
}

// parseProblemLine parses "p edge N M" or "p col N M" and returns N.
func parseProblemLine(fields []string) (int, error) {
	if len(fields) < 3 {
		return 0, fmt.Errorf("expected \"p edge|col N M\", got %q", strings.Join(fields, " "))
	}
	if fields[1] != "edge" && fields[1] != "col" {
		return 0, fmt.Errorf("unrecognized problem format %q", fields[1])
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, fmt.Errorf("invalid vertex count %q: %v", fields[2], err)
	}
	return n, nil
}

// addEdgeLine parses "e u v" (1-based) and adds the edge to g, ignoring
// self-loops.
func addEdgeLine(g *graph.Graph, fields []string, lineNo int) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: line %d: expected \"e u v\"", ErrMalformedLine, lineNo)
	}
	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	if errU != nil || errV != nil {
		return fmt.Errorf("%w: line %d: non-integer vertex id", ErrMalformedLine, lineNo)
	}

	u--
	v--
	if u < 0 || u >= g.N() || v < 0 || v >= g.N() {
		return fmt.Errorf("%w: line %d: edge (%d,%d)", ErrVertexOutOfRange, lineNo, u+1, v+1)
	}
	if u == v {
		return nil
	}
	return g.AddEdge(u, v)
}
