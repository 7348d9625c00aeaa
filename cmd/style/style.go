/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package style provides the style command for tessera.
package style

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/internal/workspace"
	stylelib "bennypowers.dev/tessera/style"
)

// Cmd is the style cobra command.
var Cmd = &cobra.Command{
	Use:   "style <component>",
	Short: "Print a component's computed style",
	Long: `Merge a component's base, state and variant layers, resolve every
reference, and print the resulting flat style.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("state", "", "State layer to apply (e.g. hover)")
	Cmd.Flags().String("variant", "", "Variant layer to apply (e.g. sm)")
	Cmd.Flags().String("slot", "", "Anatomy part to render instead of the root")
	Cmd.Flags().StringP("format", "f", "css", "Output format: css, json")
}

func run(cmd *cobra.Command, args []string) error {
	state, _ := cmd.Flags().GetString("state")
	variant, _ := cmd.Flags().GetString("variant")
	slot, _ := cmd.Flags().GetString("slot")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	id := args[0]
	snap := w.Store.Current()
	layers, ok := snap.Components[id]
	if !ok {
		return fmt.Errorf("unknown component %q", id)
	}

	var s stylelib.FlatStyle
	if slot != "" {
		if s, ok = stylelib.ForSlot(snap.Globals, layers, slot); !ok {
			return fmt.Errorf("component %q has no slot %q", id, slot)
		}
	} else {
		s = stylelib.ForComponent(snap.Globals, layers, state, variant)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "css":
		for _, d := range s.Declarations() {
			fmt.Fprintf(out, "%s: %s;\n", d.Property, d.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (valid: css, json)", format)
	}
}
