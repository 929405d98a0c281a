// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the termfolio version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), appName, Version)
	},
}
