/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tessera.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tessera/cmd/component"
	"bennypowers.dev/tessera/cmd/export"
	"bennypowers.dev/tessera/cmd/list"
	"bennypowers.dev/tessera/cmd/mcp"
	"bennypowers.dev/tessera/cmd/resolve"
	"bennypowers.dev/tessera/cmd/snapshot"
	"bennypowers.dev/tessera/cmd/style"
	"bennypowers.dev/tessera/cmd/token"
	"bennypowers.dev/tessera/cmd/validate"
	"bennypowers.dev/tessera/cmd/version"
	"bennypowers.dev/tessera/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "tessera",
	Short: "Resolve, edit and export design tokens",
	Long: `tessera manages a design system's global tokens and per-component token
layers, resolves references between them, and exports CSS, JSON and Figma
variable artifacts.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(workspace.KeyConfig, "", "Config file (default .config/tessera.{yaml,yml,json})")
	flags.String(workspace.KeyStore, "", "Snapshot store: memory, file:<dir>, sqlite:<file>, or a path")
	flags.String(workspace.KeyLogLevel, "", "Log level (debug, info, warn, error, disabled)")
	flags.Bool(workspace.KeyLogJSON, false, "Log as JSON")
	flags.StringP(workspace.KeyPrefix, "p", "", "CSS custom property prefix")

	for _, key := range []string{
		workspace.KeyConfig,
		workspace.KeyStore,
		workspace.KeyLogLevel,
		workspace.KeyLogJSON,
		workspace.KeyPrefix,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
	viper.SetEnvPrefix("TESSERA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(component.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(snapshot.Cmd)
	rootCmd.AddCommand(style.Cmd)
	rootCmd.AddCommand(token.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
