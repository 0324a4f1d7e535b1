// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yang2tosca",
		Short: "Translate YANG modules to TOSCA data type definitions",
	}

	registerTranslateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
