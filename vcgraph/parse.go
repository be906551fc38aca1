package vcgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/movc/vector"
)

// ParseError reports a malformed instance line with its 1-based line
// number, per spec.md §7 InstanceParse ("Fatal; reported with line
// number").
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("vcgraph: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errors returned wrapped inside ParseError.Err.
var (
	errUnknownRecord    = fmt.Errorf("unknown record kind")
	errBadArity         = fmt.Errorf("wrong number of fields")
	errForwardRef       = fmt.Errorf("edge references an undeclared vertex")
	errDimMismatch      = fmt.Errorf("vertex cost dimension differs from a previous n line")
	errBadNumber        = fmt.Errorf("could not parse a numeric field")
	errNegative         = fmt.Errorf("vertex cost values must be non-negative")
	errNoVertexDeclared = fmt.Errorf("no vertex declared before first edge")
	errEdgeBadArity     = fmt.Errorf("edge record requires exactly two endpoints")
)

// Parse reads the line-oriented instance format described in spec.md §6:
//
//	n <id> <v1> ... <vD>   declare a vertex with a D-dimensional cost
//	e <id1> <id2>          declare an undirected edge
//	g <numV> <numE>        optional summary record, ignored
//
// Blank lines are ignored. D is fixed by the first "n" line encountered;
// every subsequent "n" line must agree, else ParseError wraps
// errDimMismatch. Duplicate vertex declarations are idempotent per
// spec.md §4.C; this re-declaration does not re-check the cost values.
func Parse(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	var g *Graph
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "n":
			if err := parseVertexLine(&g, fields); err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
		case "e":
			if g == nil {
				return nil, &ParseError{Line: lineNo, Err: errNoVertexDeclared}
			}
			if len(fields) != 3 {
				return nil, &ParseError{Line: lineNo, Err: errEdgeBadArity}
			}
			if err := g.AddEdge(fields[1], fields[2]); err != nil {
				if err == ErrVertexNotFound {
					return nil, &ParseError{Line: lineNo, Err: errForwardRef}
				}

				return nil, &ParseError{Line: lineNo, Err: err}
			}
		case "g":
			// Optional summary record; readers may ignore it (spec.md §6).
			if len(fields) != 3 {
				return nil, &ParseError{Line: lineNo, Err: errBadArity}
			}
		default:
			return nil, &ParseError{Line: lineNo, Err: errUnknownRecord}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, &ParseError{Line: lineNo, Err: errNoVertexDeclared}
	}

	return g, nil
}

// parseVertexLine handles one "n <id> <v1> ... <vD>" record, lazily
// constructing g on the first such line (which fixes D for the instance).
func parseVertexLine(g **Graph, fields []string) error {
	if len(fields) < 3 {
		return errBadArity
	}
	id := fields[1]
	vals := fields[2:]

	dims := make([]float64, len(vals))
	for i, s := range vals {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errBadNumber
		}
		if x < 0 {
			return errNegative
		}
		dims[i] = x
	}

	if *g == nil {
		*g = New(len(dims))
	} else if (*g).Dims() != len(dims) {
		return errDimMismatch
	}

	v, err := NewVertex(id, vector.FromVertexCost(id, dims))
	if err != nil {
		return err
	}

	return (*g).AddVertex(v)
}
