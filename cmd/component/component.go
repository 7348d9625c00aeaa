/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package component provides the component command for tessera.
package component

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	componentlib "bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/internal/workspace"
)

// Cmd is the component cobra command.
var Cmd = &cobra.Command{
	Use:   "component",
	Short: "Inspect and edit component token layers",
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a component's token layers as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var setCmd = &cobra.Command{
	Use:   "set <id> <field> <value>",
	Short: "Set one token field of a component layer",
	Long: `Set one token field, such as color.bg or spacing.paddingX, on the base
layer of a component, or on a state, variant or slot layer.

  tessera component set button color.bg color.accent.primary.hover --state hover

Valid fields: ` + strings.Join(componentlib.FieldPaths(), ", "),
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

var unsetCmd = &cobra.Command{
	Use:   "unset <id> <field>",
	Short: "Clear one token field of a component layer",
	Args:  cobra.ExactArgs(2),
	RunE:  runUnset,
}

var resetCmd = &cobra.Command{
	Use:   "reset <id>",
	Short: "Restore a component's factory token layers",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func init() {
	for _, c := range []*cobra.Command{setCmd, unsetCmd} {
		c.Flags().String("state", "", "Target a state layer")
		c.Flags().String("variant", "", "Target a variant layer")
		c.Flags().String("slot", "", "Target a slot layer")
	}
	Cmd.AddCommand(showCmd, setCmd, unsetCmd, resetCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	layers, ok := w.Store.Current().Components[args[0]]
	if !ok {
		return fmt.Errorf("unknown component %q", args[0])
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(layers)
}

func runSet(cmd *cobra.Command, args []string) error {
	value := componentlib.Value(args[2])
	return setField(cmd, args[0], args[1], &value)
}

func runUnset(cmd *cobra.Command, args []string) error {
	return setField(cmd, args[0], args[1], nil)
}

func setField(cmd *cobra.Command, id, field string, value *componentlib.Value) error {
	state, _ := cmd.Flags().GetString("state")
	variant, _ := cmd.Flags().GetString("variant")
	slot, _ := cmd.Flags().GetString("slot")
	ref, err := layerRef(state, variant, slot)
	if err != nil {
		return err
	}

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	if _, ok := w.Store.Current().Components[id]; !ok {
		return fmt.Errorf("unknown component %q", id)
	}
	if err := w.Store.SetComponentToken(cmd.Context(), id, ref, field, value); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s %s\n", id, describe(ref), field)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	id := args[0]
	if _, ok := w.Registry.Lookup(id); !ok {
		return fmt.Errorf("no factory defaults for component %q", id)
	}
	if err := w.Store.ResetComponentTokens(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", id)
	return nil
}

// layerRef picks the target layer from mutually exclusive flags.
func layerRef(state, variant, slot string) (componentlib.LayerRef, error) {
	var refs []componentlib.LayerRef
	if state != "" {
		refs = append(refs, componentlib.LayerRef{Kind: componentlib.LayerState, Name: state})
	}
	if variant != "" {
		refs = append(refs, componentlib.LayerRef{Kind: componentlib.LayerVariant, Name: variant})
	}
	if slot != "" {
		refs = append(refs, componentlib.LayerRef{Kind: componentlib.LayerSlot, Name: slot})
	}
	switch len(refs) {
	case 0:
		return componentlib.LayerRef{Kind: componentlib.LayerBase}, nil
	case 1:
		return refs[0], nil
	default:
		return componentlib.LayerRef{}, errors.New("--state, --variant and --slot are mutually exclusive")
	}
}

func describe(ref componentlib.LayerRef) string {
	if ref.Kind == componentlib.LayerBase {
		return string(ref.Kind)
	}
	return string(ref.Kind) + ":" + ref.Name
}
