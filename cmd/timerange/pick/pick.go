/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package pick

import (
	"strings"

	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "pick <time range | preset>",
	Short: "Show the date range picker state for a time range",
	Long: `Seed the date range picker from a time range, or from a preset label such
as "Last 7 Days". Values that are not date ranges fall back to the last 30
days; dates that cannot be read are logged as a warning:

    timerange pick Last 7 Days
    timerange pick "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)"`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Print(cmd.OutOrStdout(), repl.Command{
			Name: repl.CommandPick,
			Args: strings.Join(args, " "),
		})
	},
}
