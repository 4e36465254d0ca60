// SPDX-License-Identifier: MIT
// File: id_fn.go
// Role: Deterministic vertex label schemes.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label.
type IDFn func(idx int) string

// DefaultIDFn returns "v0", "v1", ….
func DefaultIDFn(idx int) string {
	return "v" + strconv.Itoa(idx)
}

// SymbolIDFn returns "a".."z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('a' + idx))
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z","AA","AB",….
// Panics on negative idx.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
