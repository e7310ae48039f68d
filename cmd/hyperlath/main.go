// SPDX-License-Identifier: MIT

// Command hyperlath loads a hypergraph document and runs statistics,
// traversals, shortest-path queries and matrix views over it.
//
//	hyperlath stats -f city.yaml
//	hyperlath path -f city.yaml --from depot --to port --algo astar
//	hyperlath generate --topology grid --rows 3 --cols 4 --format json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
