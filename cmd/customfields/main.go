// Package main provides the customfields operator CLI.
//
// customfields reconciles saved custom-field data with an edited form
// schema:
//   - map: classify saved values as mapped, orphaned or missing
//   - validate: check saved values against the current field rules
//   - evolve: migrate orphaned values by rule and optionally heal the record
//   - report: print the evolution report
//   - flatten: convert saved data to the flat position-keyed shape
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
