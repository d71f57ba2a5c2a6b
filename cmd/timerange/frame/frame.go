/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package frame

import (
	"strings"

	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "frame <time range>",
	Short: "Classify a time range into the frame that edits it",
	Long: `Classify a time range into one of the frames Common, Calendar, Current,
Custom, DateRange, Advanced or "No filter". Arguments are joined with spaces,
so quoting is optional:

    timerange frame Last week
    timerange frame "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)"`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Print(cmd.OutOrStdout(), repl.Command{
			Name: repl.CommandFrame,
			Args: strings.Join(args, " "),
		})
	},
}
