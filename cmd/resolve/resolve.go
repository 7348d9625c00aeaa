/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for tessera.
package resolve

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/internal/workspace"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <path>...",
	Short: "Resolve global token references",
	Long: `Resolve one or more dotted references against the current snapshot's
global tokens. References that do not resolve are printed unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("chain", false, "Print every hop of the reference chain")
}

func run(cmd *cobra.Command, args []string) error {
	chain, _ := cmd.Flags().GetBool("chain")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	tree := w.Store.Current().Globals
	out := cmd.OutOrStdout()
	for _, ref := range args {
		value := resolver.Resolve(tree, ref)
		if chain {
			value = strings.Join(hops(tree, ref), " -> ")
		}
		if len(args) == 1 {
			fmt.Fprintln(out, value)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", ref, value)
	}
	return nil
}

// hops returns ref followed by each value reached while resolving it.
// It stops at a literal, a dangling reference, or a revisited path.
func hops(tree token.Branch, ref string) []string {
	out := []string{ref}
	seen := map[string]bool{ref: true}
	for {
		lit, ok := resolver.Lookup(tree, ref)
		if !ok {
			return out
		}
		out = append(out, lit.String())
		if !lit.IsReference() || seen[lit.String()] {
			return out
		}
		ref = lit.String()
		seen[ref] = true
	}
}
