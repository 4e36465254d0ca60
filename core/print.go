// SPDX-License-Identifier: MIT
// File: print.go
// Role: Plain-text dump of vertices, weight matrix and edge list.
package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// minLabelWidth keeps single-letter row labels indented like " a | ...".
const minLabelWidth = 2

// Fprint writes the graph as three sections:
//
//	Vertices: a b c
//
//	Matrix:
//	   | a b c
//	---+------
//	 a | 0 3 0
//	 b | 3 0 6
//	 c | 0 6 0
//
//	Edges:
//	 a-b 3
//	 b-c 6
//
// Columns are right-aligned to the widest label or weight in that column.
// Complexity: O(n² + E).
func (g *Graph) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	n := len(g.labels)

	fmt.Fprintf(bw, "Vertices: %s\n\n", strings.Join(g.labels, " "))

	// column widths
	lw := minLabelWidth
	cw := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		if len(g.labels[i]) > lw {
			lw = len(g.labels[i])
		}
		cw[i] = len(g.labels[i])
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if l := len(strconv.FormatInt(g.cell(i, j), 10)); l > cw[j] {
				cw[j] = l
			}
		}
	}

	bw.WriteString("Matrix:\n")
	cells := make([]string, n)
	for j = 0; j < n; j++ {
		cells[j] = fmt.Sprintf("%*s", cw[j], g.labels[j])
	}
	fmt.Fprintf(bw, "%s | %s\n", strings.Repeat(" ", lw), strings.Join(cells, " "))

	rule := 0
	for j = 0; j < n; j++ {
		rule += cw[j] + 1
	}
	fmt.Fprintf(bw, "%s+%s\n", strings.Repeat("-", lw+1), strings.Repeat("-", rule))

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cells[j] = fmt.Sprintf("%*d", cw[j], g.cell(i, j))
		}
		fmt.Fprintf(bw, "%*s | %s\n", lw, g.labels[i], strings.Join(cells, " "))
	}

	bw.WriteString("\nEdges:\n")
	for _, e := range g.edges {
		fmt.Fprintf(bw, " %s\n", e)
	}

	return bw.Flush()
}

// String returns the Fprint rendering.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Fprint(&sb) // strings.Builder never fails

	return sb.String()
}
