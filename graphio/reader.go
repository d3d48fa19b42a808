package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/maxmatch/core"
)

// Sentinel errors for input malformation.
var (
	// ErrEmptyInput is returned when the stream holds no header line.
	ErrEmptyInput = errors.New("graphio: empty input")

	// ErrBadHeader is returned when the header line is not two
	// non-negative integers.
	ErrBadHeader = errors.New("graphio: malformed header")

	// ErrBadEdge is returned when an edge line cannot be parsed as two
	// integers.
	ErrBadEdge = errors.New("graphio: malformed edge line")

	// ErrEdgeCount is returned when the stream ends before the number of
	// edge lines promised by the header.
	ErrEdgeCount = errors.New("graphio: fewer edge lines than header declares")
)

// Read parses an edge-list stream and returns the canonicalized graph.
//
// Steps:
//  1. Scan for the first non-blank line; parse `<n> <m>` (ErrEmptyInput /
//     ErrBadHeader).
//  2. Read exactly m further non-blank lines, each `u v ...`; extra fields
//     are ignored, non-integer fields yield ErrBadEdge with the 1-based
//     line number.
//  3. Hand the raw edge list to core.NewGraph, which drops self-loops,
//     deduplicates, sorts, and range-checks endpoints.
//
// Complexity: O(V + E·log d_max) dominated by canonicalization.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}

		return "", false
	}

	// 1) Header.
	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}

		return nil, ErrEmptyInput
	}
	n, m, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	// 2) Edge lines.
	edges := make([][2]int, 0, m)
	for len(edges) < m {
		line, ok := next()
		if !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("graphio: read: %w", err)
			}

			return nil, fmt.Errorf("%w: got %d of %d", ErrEdgeCount, len(edges), m)
		}
		u, v, err := parseEdge(line)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d): %q", ErrBadEdge, lineNo, line)
		}
		edges = append(edges, [2]int{u, v})
	}

	// 3) Canonicalize; range errors surface from core wrapped for context.
	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}

	return g, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// parseHeader extracts `<n> <m>` from the first line.
func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}
	if m, err = strconv.Atoi(fields[1]); err != nil || m < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadHeader, line)
	}

	return n, m, nil
}

// parseEdge extracts the first two integer fields of an edge line.
func parseEdge(line string) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrBadEdge
	}
	if u, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, ErrBadEdge
	}
	if v, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, ErrBadEdge
	}

	return u, v, nil
}
