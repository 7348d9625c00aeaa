/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcpserver exposes a snapshot store to MCP clients over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export"
	"bennypowers.dev/tessera/internal/version"
	"bennypowers.dev/tessera/snapshot"
)

// Name is the MCP implementation name.
const Name = "tessera"

// Tools holds what the tool handlers need.
type Tools struct {
	Store    *snapshot.Store
	Registry component.Registry
	// Export carries the configured prefix and include globs.
	Export export.Options
}

// New creates an MCP server with every tool registered.
func New(t *Tools) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: version.Get(),
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "resolve_token",
		Description: "Resolve a dotted global token path (e.g. color.accent.primary.base) to its final value",
	}, t.ResolveToken)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "component_style",
		Description: "Compute the flat style of a component for an optional state, variant or slot",
	}, t.ComponentStyle)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_components",
		Description: "List components with their states, variants and slots",
	}, t.ListComponents)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "update_global_token",
		Description: "Set a global token to a literal or a dotted reference; null removes it",
	}, t.UpdateGlobalToken)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "export",
		Description: "Render the current snapshot as css, tokens-json, tokens-json-legacy, components-json or figma",
	}, t.ExportTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "audit",
		Description: "Report unresolved references, cycles, contract violations and low contrast",
	}, t.Audit)

	return srv
}

// Serve runs the server on stdio until ctx is done or the client disconnects.
func Serve(ctx context.Context, t *Tools) error {
	return New(t).Run(ctx, &mcp.StdioTransport{})
}
