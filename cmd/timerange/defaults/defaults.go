/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package defaults

import (
	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "default",
	Short: "Print the time range applied when none is chosen",
	Long: `Print the configured default time filter, or the last 30 days ending today
when it is unset or "No filter". The filter is read from --default-time-filter,
the DEFAULT_TIME_FILTER environment variable, or timerange.default_time_filter
in the config file.`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Print(cmd.OutOrStdout(), repl.Command{Name: repl.CommandDefault})
	},
}
