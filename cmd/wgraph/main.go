// SPDX-License-Identifier: MIT
// Command wgraph loads a weighted graph document and runs shortest-path,
// spanning-tree and traversal algorithms over it.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
