/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tessera.
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/tessera/internal/contrast"
	"bennypowers.dev/tessera/internal/workspace"
	"bennypowers.dev/tessera/snapshot"
	"bennypowers.dev/tessera/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Audit a snapshot",
	Long: `Audit the current snapshot, or a snapshot JSON file, for unresolved
references, reference cycles, contract violations and low color contrast.

Exits non-zero when errors are found, or warnings with --strict.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().Bool("skip-contrast", false, "Skip the contrast check")
	Cmd.Flags().Float64("min-contrast", contrast.AA, "Minimum fg/bg contrast ratio")
	Cmd.Flags().String("format", "text", "Output format: text, json")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	skipContrast, _ := cmd.Flags().GetBool("skip-contrast")
	minContrast, _ := cmd.Flags().GetFloat64("min-contrast")
	format, _ := cmd.Flags().GetString("format")

	w, err := workspace.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer w.Close()

	snap := w.Store.Current()
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if snap, err = snapshot.Decode(data); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
	}

	findings := validator.Audit(snap, w.Registry, validator.Options{
		MinContrast:  minContrast,
		SkipContrast: skipContrast,
	})

	out := cmd.OutOrStdout()
	if format == "json" {
		if findings == nil {
			findings = []validator.ValidationError{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	} else {
		report(out, findings, quiet)
	}

	if failed(findings, strict) {
		return fmt.Errorf("validation failed with %d finding(s)", len(findings))
	}
	return nil
}

func report(out io.Writer, findings []validator.ValidationError, quiet bool) {
	for _, f := range findings {
		if quiet && f.Severity != validator.SeverityError {
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", f.Severity, f.Error())
	}
	if !quiet && len(findings) == 0 {
		fmt.Fprintln(out, "no problems found")
	}
}

func failed(findings []validator.ValidationError, strict bool) bool {
	if strict {
		return len(findings) > 0
	}
	return validator.HasErrors(findings)
}
