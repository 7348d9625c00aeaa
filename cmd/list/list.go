/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tessera.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/internal/workspace"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [components|tokens]",
	Short: "List components or global tokens",
	Long: `List the components of the current snapshot, or its global tokens.

Tokens may be filtered with --match, a glob over slash-joined paths
such as "color/**".`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"components", "tokens"},
	RunE:      run,
}

func init() {
	Cmd.Flags().String("match", "", "Glob filter for token paths")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// row is one listing entry.
type row struct {
	Name   string `json:"name"`
	Value  string `json:"value,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	if match != "" && !doublestar.ValidatePattern(match) {
		return fmt.Errorf("invalid match pattern: %s", match)
	}

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	snap := w.Store.Current()
	var rows []row
	if len(args) == 1 && args[0] == "tokens" {
		rows = tokenRows(snap.Globals, match, resolved)
	} else {
		doc := w.Document()
		for _, id := range doc.ComponentIDs() {
			layers := doc.Components[id]
			rows = append(rows, row{
				Name:   id,
				Value:  doc.Label(id),
				Detail: describeLayers(layers.StateNames(), layers.VariantNames()),
			})
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return outputJSON(out, rows)
	}
	return outputTable(out, rows)
}

// tokenRows lists leaves of tree whose slash-joined path matches pattern.
func tokenRows(tree token.Branch, pattern string, resolved bool) []row {
	var rows []row
	_ = tree.Walk(func(path []string, lit token.Literal) error {
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, strings.Join(path, "/")); !ok {
				return nil
			}
		}
		name := token.JoinPath(path)
		r := row{Name: name, Value: lit.String()}
		if resolved && lit.IsReference() {
			r.Detail = "-> " + resolver.Resolve(tree, name)
		}
		rows = append(rows, r)
		return nil
	})
	return rows
}

func describeLayers(states, variants []string) string {
	var parts []string
	if len(states) > 0 {
		parts = append(parts, "states: "+strings.Join(states, ","))
	}
	if len(variants) > 0 {
		parts = append(parts, "variants: "+strings.Join(variants, ","))
	}
	return strings.Join(parts, "  ")
}

func outputTable(w io.Writer, rows []row) error {
	for _, r := range rows {
		line := fmt.Sprintf("%-40s %s", r.Name, r.Value)
		if r.Detail != "" {
			line += "  " + r.Detail
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, rows []row) error {
	if rows == nil {
		rows = []row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
