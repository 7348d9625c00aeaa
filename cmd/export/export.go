/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tessera.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	exportlib "bennypowers.dev/tessera/export"
	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/internal/workspace"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Write export artifacts for the current snapshot",
	Long: `Write tokens.css, tokens.json, components.json and figma-variables.json
for the current snapshot.

With a single --format and --out-dir "-", the artifact is written to stdout.
With --watch, artifacts are rewritten whenever the snapshot store or the
config file changes.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringSliceP("format", "f", nil, "Formats to write (default: config, else css, tokens-json, components-json, figma)")
	Cmd.Flags().StringP("out-dir", "o", "", "Output directory, or - for stdout (default: config export.outDir)")
	Cmd.Flags().StringSlice("include", nil, "Globs over slash-joined global token paths, e.g. color/**")
	Cmd.Flags().BoolP("watch", "w", false, "Rewrite artifacts when the store changes")
}

// request is one resolved export invocation.
type request struct {
	formats []exportlib.Format
	outDir  string
	include []string
}

func run(cmd *cobra.Command, _ []string) error {
	names, _ := cmd.Flags().GetStringSlice("format")
	outDir, _ := cmd.Flags().GetString("out-dir")
	include, _ := cmd.Flags().GetStringSlice("include")
	watch, _ := cmd.Flags().GetBool("watch")

	req := request{outDir: outDir, include: include}
	if len(names) > 0 {
		formats, err := exportlib.ParseFormats(names)
		if err != nil {
			return err
		}
		req.formats = formats
	}
	if req.outDir == "-" && (watch || len(req.formats) != 1) {
		return fmt.Errorf("--out-dir - needs exactly one --format and no --watch")
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if !watch {
		return once(ctx, out, req)
	}
	return watchLoop(ctx, out, req)
}

// once opens the workspace, writes every artifact, and closes it again so
// the backend is not held between watch iterations.
func once(ctx context.Context, out io.Writer, req request) error {
	w, err := workspace.Open(ctx)
	if err != nil {
		return err
	}
	defer w.Close()

	formats := req.formats
	if formats == nil {
		if formats, err = w.ExportFormats(); err != nil {
			return err
		}
	}
	opts := w.ExportOptions()
	if len(req.include) > 0 {
		opts.Include = req.include
	}

	if req.outDir == "-" {
		data, err := exportlib.Run(formats[0], w.Document(), opts)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	dir := req.outDir
	if dir == "" {
		dir = w.OutDir()
	}
	written, err := exportlib.WriteAll(w.FS, dir, formats, w.Document(), opts)
	for _, path := range written {
		fmt.Fprintln(out, path)
	}
	if err != nil {
		return err
	}
	logger.Info("exported %d artifact(s) to %s", len(written), dir)
	return nil
}
