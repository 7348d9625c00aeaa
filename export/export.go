/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export renders snapshots into the stable export artifacts.
package export

import (
	"fmt"
	"path/filepath"

	"bennypowers.dev/tessera/component"
	"bennypowers.dev/tessera/export/formatter"
	"bennypowers.dev/tessera/export/formatter/componentsjson"
	"bennypowers.dev/tessera/export/formatter/css"
	"bennypowers.dev/tessera/export/formatter/figma"
	"bennypowers.dev/tessera/export/formatter/tokensjson"
	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/snapshot"
)

// Options configures an export pass.
type Options = formatter.Options

// Document is the formatter input.
type Document = formatter.Document

// NewDocument builds the formatter input from a snapshot.
// Labels and contracts come from reg; components without a definition
// are still exported.
func NewDocument(snap *snapshot.Snapshot, reg component.Registry) *formatter.Document {
	return &formatter.Document{
		Name:        snap.Name,
		Description: snap.Description,
		Version:     snap.Version,
		UpdatedAt:   snap.UpdatedAt,
		Globals:     snap.Globals,
		Components:  snap.Components,
		Registry:    reg,
	}
}

// Formatter returns the formatter for a format.
func Formatter(format Format) (formatter.Formatter, error) {
	switch format {
	case FormatCSS:
		return css.New(), nil
	case FormatTokensJSON:
		return tokensjson.New(), nil
	case FormatTokensJSONLegacy:
		return tokensjson.NewLegacy(), nil
	case FormatComponentsJSON:
		return componentsjson.New(), nil
	case FormatFigma:
		return figma.New(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Run renders one artifact.
func Run(format Format, doc *formatter.Document, opts Options) ([]byte, error) {
	f, err := Formatter(format)
	if err != nil {
		return nil, err
	}
	if err := formatter.ValidateInclude(opts.Include); err != nil {
		return nil, err
	}
	return f.Format(doc, opts)
}

// WriteAll renders every format into dir and returns the written paths.
func WriteAll(filesystem fs.FileSystem, dir string, formats []Format, doc *formatter.Document, opts Options) ([]string, error) {
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	written := make([]string, 0, len(formats))
	for _, format := range formats {
		data, err := Run(format, doc, opts)
		if err != nil {
			return written, fmt.Errorf("exporting %s: %w", format, err)
		}
		path := filepath.Join(dir, format.Filename())
		if err := filesystem.WriteFile(path, data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
