/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot provides the snapshot command for tessera.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/internal/workspace"
	snapshotlib "bennypowers.dev/tessera/snapshot"
)

// Cmd is the snapshot cobra command.
var Cmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save, list, load and import snapshots",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current state as a new snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Make a saved snapshot current",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import snapshots from a JSON file",
	Long: `Import a snapshot or a list of snapshots. Entries without an id or
globals are skipped; ids that already exist are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	listCmd.Flags().String("format", "table", "Output format: table, json")
	saveCmd.Flags().StringP("description", "d", "", "Snapshot description")
	Cmd.AddCommand(listCmd, saveCmd, loadCmd, importCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	summaries := w.Store.List()
	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}
	return printTable(out, summaries, w.Store.Current().ID)
}

func printTable(out io.Writer, summaries []snapshotlib.Summary, currentID string) error {
	for _, s := range summaries {
		marker := " "
		if s.ID == currentID {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %-36s %-24s %s\n", marker, s.ID, s.Name, s.UpdatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	description, _ := cmd.Flags().GetString("description")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	snap, err := w.Store.SaveSnapshot(cmd.Context(), args[0], description)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), snap.ID)
	return nil
}

func runLoad(cmd *cobra.Command, args []string) error {
	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	snap, err := w.Store.LoadSnapshot(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "loaded %s (%s)\n", snap.ID, snap.Name)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := fs.NewOSFileSystem().ReadFile(args[0])
	if err != nil {
		return err
	}

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	n, err := w.Store.Import(cmd.Context(), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d snapshot(s)\n", n)
	return nil
}
