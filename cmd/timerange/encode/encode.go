/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package encode

import (
	"strings"

	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "encode <start> <end>",
	Short: "Build a date range from two dates",
	Long: `Build a date range from two dates. The date format writes

    DATEADD(DATETIME('<start>'), 0, DAY) : DATEADD(DATETIME('<end>'), 0, DAY)

and the datetime format writes "<start> : <end>" with full timestamps.
Datetimes are given as 2025-10-27T12:00:00.`,
	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Print(cmd.OutOrStdout(), repl.Command{
			Name: repl.CommandEncode,
			Args: strings.Join(append([]string{viper.GetString("encode.format")}, args...), " "),
		})
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("format", "f", "date", "Encoding to write [date, datetime]")

	// Bind flags to viper
	viper.BindPFlag("encode.format", Command.Flags().Lookup("format"))
}
