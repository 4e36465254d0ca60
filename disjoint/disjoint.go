// SPDX-License-Identifier: MIT
// Package disjoint implements a union–find (disjoint-set) structure over the
// dense index range [0, n), as used by Kruskal's algorithm.
//
// A Set is call-scoped scratch state: build one per run with New(n) and drop it
// afterwards. It is never stored inside a graph, so running Kruskal twice on a
// mutated graph cannot observe stale parents or ranks.
//
// Find uses full path compression; Union is by rank (the lower-rank root is
// attached under the higher-rank one; on equal ranks the first argument's
// root survives and its rank grows by one).
//
// Complexity: New O(n); Find/Union amortized O(α(n)).
package disjoint

// Set is a disjoint-set forest over indices 0..n-1.
type Set struct {
	parent []int
	rank   []int
	count  int // number of disjoint sets
}

// New returns n singleton sets {0}, {1}, …, {n-1}. Negative n is treated as 0.
func New(n int) *Set {
	if n < 0 {
		n = 0
	}
	s := &Set{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range s.parent {
		s.parent[i] = i // each element is its own root
	}

	return s
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Count returns the current number of disjoint sets.
func (s *Set) Count() int { return s.count }

// Find returns the root of x's set, pointing every node on the path directly
// at the root. x must be in [0, Len()); out-of-range indices panic like a
// slice access.
func (s *Set) Find(x int) int {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// second pass: compress
	for s.parent[x] != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y and reports whether they were
// disjoint. A false result means x and y were already connected, i.e. the
// edge (x, y) would close a cycle.
func (s *Set) Union(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.count--

	return true
}

// Connected reports whether x and y are in the same set.
func (s *Set) Connected(x, y int) bool {
	return s.Find(x) == s.Find(y)
}
