/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package decode

import (
	"strings"

	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "decode <time range>",
	Short: "Extract the start and end dates of a date range",
	Long: `Extract the start and end dates of a date range. A time range that is not
a date range reports match=false.

With --resolve both sides are evaluated against the current time instead,
applying DATEADD offsets and the now/today constants. With --custom the range
is decoded into the custom editor's since/until state.`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		name := repl.CommandDecode
		switch {
		case viper.GetBool("decode.resolve"):
			name = repl.CommandResolve
		case viper.GetBool("decode.custom"):
			name = repl.CommandCustom
		}

		return config.Print(cmd.OutOrStdout(), repl.Command{
			Name: name,
			Args: strings.Join(args, " "),
		})
	},
}

func init() {
	// Flags for this command
	Command.Flags().Bool("resolve", false, "Evaluate both sides against the current time")
	Command.Flags().Bool("custom", false, "Decode into custom editor state")
	Command.MarkFlagsMutuallyExclusive("resolve", "custom")

	// Bind flags to viper
	viper.BindPFlag("decode.resolve", Command.Flags().Lookup("resolve"))
	viper.BindPFlag("decode.custom", Command.Flags().Lookup("custom"))
}
