// SPDX-License-Identifier: MIT

// Command wbe inspects filter banks, computes encoding dimensionality and
// decodes genotypes into YAML phenotypes.
//
//	wbe dim    --schema net.yaml --level 2
//	wbe filter --family lattice --theta 0.4,1.2
//	wbe decode --schema net.yaml --level 2 --seed 7 > weights.yaml
//
// Logs go to stderr; results go to stdout.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
