/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the token command for tessera.
package token

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"bennypowers.dev/tessera/internal/workspace"
	tokenlib "bennypowers.dev/tessera/token"
)

// Cmd is the token cobra command.
var Cmd = &cobra.Command{
	Use:   "token",
	Short: "Edit global tokens",
}

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a global token",
	Long: `Set a global token to a literal or a dotted reference, e.g.

  tessera token set color.accent.primary.base '#da1e28'
  tessera token set color.text.link color.accent.primary.base
  tessera token set --json space '{"1": "2px", "2": "4px"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var unsetCmd = &cobra.Command{
	Use:   "unset <path>",
	Short: "Remove a global token or group",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnset,
}

func init() {
	setCmd.Flags().Bool("json", false, "Parse the value as JSON (numbers, objects)")
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(unsetCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	node, err := parseValue(args[1], asJSON)
	if err != nil {
		return err
	}
	return update(cmd, args[0], node)
}

func runUnset(cmd *cobra.Command, args []string) error {
	return update(cmd, args[0], nil)
}

func update(cmd *cobra.Command, path string, node tokenlib.Node) error {
	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Store.UpdateGlobalToken(cmd.Context(), path, node); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", path)
	return nil
}

// parseValue turns a command-line value into a node. Plain values are
// always string literals.
func parseValue(raw string, asJSON bool) (tokenlib.Node, error) {
	if !asJSON {
		return tokenlib.String(raw), nil
	}
	var v any
	if err := json.Unmarshal(jsonc.ToJSON([]byte(raw)), &v); err != nil {
		return nil, fmt.Errorf("parsing value: %w", err)
	}
	node := tokenlib.FromAny(v)
	if node == nil {
		return nil, fmt.Errorf("null value; use unset to remove a token")
	}
	return node, nil
}
