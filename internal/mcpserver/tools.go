/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"bennypowers.dev/tessera/export"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/resolver"
	"bennypowers.dev/tessera/style"
	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/validator"
)

// --- Input types ---

type ResolveTokenInput struct {
	Path string `json:"path" jsonschema:"Dotted global token path"`
}

type ComponentStyleInput struct {
	ID      string `json:"id" jsonschema:"Component id, e.g. button"`
	State   string `json:"state,omitempty" jsonschema:"Optional state name, e.g. hover"`
	Variant string `json:"variant,omitempty" jsonschema:"Optional variant name, e.g. sm"`
	Slot    string `json:"slot,omitempty" jsonschema:"Optional anatomy part; overrides state and variant"`
}

type ListComponentsInput struct{}

type UpdateGlobalTokenInput struct {
	Path  string `json:"path" jsonschema:"Dotted global token path"`
	Value any    `json:"value" jsonschema:"New value: a string, number, object subtree, or null to remove"`
}

type ExportInput struct {
	Format  string   `json:"format,omitempty" jsonschema:"Export format; defaults to tokens-json"`
	Include []string `json:"include,omitempty" jsonschema:"Globs over slash-joined token paths (e.g. color/**) limiting exported global tokens"`
}

type AuditInput struct {
	SkipContrast bool `json:"skipContrast,omitempty" jsonschema:"Skip the fg/bg contrast check"`
}

// --- Output shapes ---

type resolvedToken struct {
	Path     string        `json:"path"`
	Value    token.Literal `json:"value"`
	Resolved token.Literal `json:"resolved"`
	Final    bool          `json:"final"`
}

type componentStyle struct {
	ID    string          `json:"id"`
	Style style.FlatStyle `json:"style"`
	CSS   string          `json:"css"`
}

type componentSummary struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	States   []string `json:"states"`
	Variants []string `json:"variants"`
	Slots    []string `json:"slots"`
}

// --- Handlers ---

func (t *Tools) ResolveToken(_ context.Context, _ *mcp.CallToolRequest, input ResolveTokenInput) (*mcp.CallToolResult, any, error) {
	tree := t.Store.Current().Globals
	lit, ok := tree.Literal(input.Path)
	if !ok {
		return toolError("Token %s not found", input.Path), nil, nil
	}
	resolved, _ := resolver.ResolveLiteral(tree, input.Path)
	return toolJSON(resolvedToken{
		Path:     input.Path,
		Value:    lit,
		Resolved: resolved,
		Final:    !resolved.IsReference(),
	})
}

func (t *Tools) ComponentStyle(_ context.Context, _ *mcp.CallToolRequest, input ComponentStyleInput) (*mcp.CallToolResult, any, error) {
	snap := t.Store.Current()
	layers, ok := snap.Components[input.ID]
	if !ok {
		return toolError("Component %s not found", input.ID), nil, nil
	}

	var s style.FlatStyle
	if input.Slot != "" {
		s, ok = style.ForSlot(snap.Globals, layers, input.Slot)
		if !ok {
			return toolError("Component %s has no slot %s", input.ID, input.Slot), nil, nil
		}
	} else {
		s = style.ForComponent(snap.Globals, layers, input.State, input.Variant)
	}
	return toolJSON(componentStyle{ID: input.ID, Style: s, CSS: s.CSS()})
}

func (t *Tools) ListComponents(_ context.Context, _ *mcp.CallToolRequest, _ ListComponentsInput) (*mcp.CallToolResult, any, error) {
	doc := export.NewDocument(t.Store.Current(), t.Registry)
	out := make([]componentSummary, 0, len(doc.Components))
	for _, id := range doc.ComponentIDs() {
		layers := doc.Components[id]
		out = append(out, componentSummary{
			ID:       id,
			Label:    doc.Label(id),
			States:   layers.StateNames(),
			Variants: layers.VariantNames(),
			Slots:    layers.SlotNames(),
		})
	}
	return toolJSON(out)
}

func (t *Tools) UpdateGlobalToken(ctx context.Context, _ *mcp.CallToolRequest, input UpdateGlobalTokenInput) (*mcp.CallToolResult, any, error) {
	if input.Path == "" {
		return toolError("Token path is required"), nil, nil
	}
	err := t.Store.UpdateGlobalToken(ctx, input.Path, token.FromAny(input.Value))
	snap := t.Store.Current()
	if err != nil {
		// The in-memory state is updated even when persisting fails.
		logger.Warn("update of %s not persisted: %v", input.Path, err)
		return toolError("Updated %s but failed to persist: %v", input.Path, err), nil, nil
	}
	return toolJSON(map[string]any{
		"path":      input.Path,
		"updatedAt": snap.UpdatedAt.Format(time.RFC3339Nano),
	})
}

func (t *Tools) ExportTool(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, any, error) {
	format, err := export.ParseFormat(input.Format)
	if err != nil {
		return toolError("%v", err), nil, nil
	}
	opts := t.Export
	if len(input.Include) > 0 {
		opts.Include = input.Include
	}
	data, err := export.Run(format, export.NewDocument(t.Store.Current(), t.Registry), opts)
	if err != nil {
		return toolError("Export failed: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func (t *Tools) Audit(_ context.Context, _ *mcp.CallToolRequest, input AuditInput) (*mcp.CallToolResult, any, error) {
	findings := validator.Audit(t.Store.Current(), t.Registry, validator.Options{SkipContrast: input.SkipContrast})
	if findings == nil {
		findings = []validator.ValidationError{}
	}
	return toolJSON(findings)
}

// --- Helpers ---

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
