// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ubicity Corp.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ubicity-corp/yang2tosca/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}

	parent.AddCommand(cmd)
}
