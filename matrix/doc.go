// SPDX-License-Identifier: MIT
// Package matrix provides the square, growable, row-major int64 matrix used as
// the weight store of core.Graph, plus the dense all-pairs shortest-path kernel.
//
// Storage model:
//
//	A Dense of order n keeps n*n cells in one flat slice; cell (i,j) lives at
//	data[i*n+j]. Growing to n+1 or removing index k redimensions the buffer
//	explicitly and re-packs the rows, so callers never alias stale rows.
//
// Conventions:
//
//	– As a weight matrix, 0 means "no edge" and the diagonal is 0.
//	– As a distance matrix, Inf (math.MaxInt64) means "no path".
//	– InitDistances converts the former into the latter in place.
//
// Errors (sentinels, match with errors.Is):
//
//	ErrNilMatrix         – nil *Dense receiver or argument.
//	ErrBadShape          – negative order or capacity.
//	ErrOutOfRange        – row/column index outside [0, n).
//	ErrAsymmetry         – m[i][j] != m[j][i] where symmetry is required.
//
// Complexity:
//
//	At/Set O(1); Grow and RemoveIndex O(n²); FloydWarshall O(n³) time, O(1) extra.
package matrix
