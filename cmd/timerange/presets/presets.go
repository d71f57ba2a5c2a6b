/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package presets

import (
	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "presets",
	Short: "List the date picker's preset ranges as of today",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Print(cmd.OutOrStdout(), repl.Command{Name: repl.CommandPresets})
	},
}
