/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command for tessera.
package mcp

import (
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/internal/mcpserver"
	"bennypowers.dev/tessera/internal/workspace"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the snapshot store over MCP on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing token
resolution, component styles, global token edits, exports and audits.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("log", false, "Keep logging to stderr")
}

func run(cmd *cobra.Command, _ []string) error {
	keepLog, _ := cmd.Flags().GetBool("log")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	if !keepLog {
		logger.SetOutput(io.Discard)
	}
	return mcpserver.Serve(cmd.Context(), &mcpserver.Tools{
		Store:    w.Store,
		Registry: w.Registry,
		Export:   w.ExportOptions(),
	})
}
