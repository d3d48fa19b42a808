// Package graphio loads graphs from, and writes matchings to, the plain
// edge-list text format shared by every solver driver:
//
//	<vertex_count> <edge_count>
//	<u_1> <v_1>
//	...
//	<u_m> <v_m>
//
// Vertices are 0-based integers below vertex_count. The format is
// whitespace-tolerant: any run of spaces or tabs separates fields, blank
// lines are skipped, and fields beyond the first two on an edge line are
// ignored. Duplicate edges and self-loops are legal input — core.NewGraph
// canonicalizes them away — but out-of-range endpoints are not.
//
// Malformation is rejected here, before any solver runs:
//
//	ErrEmptyInput - no header line
//	ErrBadHeader  - header is not two non-negative integers
//	ErrBadEdge    - an edge line is not two integers (wrapped with line number)
//	ErrEdgeCount  - fewer edge lines than the header promises
//
// core.ErrVertexRange passes through wrapped, so errors.Is works for it too.
package graphio
