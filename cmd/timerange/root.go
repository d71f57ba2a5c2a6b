/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"fmt"
	"os"

	"github.com/dburkart/timerange/cmd/timerange/decode"
	"github.com/dburkart/timerange/cmd/timerange/defaults"
	"github.com/dburkart/timerange/cmd/timerange/encode"
	"github.com/dburkart/timerange/cmd/timerange/frame"
	"github.com/dburkart/timerange/cmd/timerange/pick"
	"github.com/dburkart/timerange/cmd/timerange/presets"
	"github.com/dburkart/timerange/cmd/timerange/repl"
	"github.com/dburkart/timerange/cmd/timerange/server"
	"github.com/dburkart/timerange/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "timerange",
		Short: "Classify, decode and encode dashboard time range expressions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initLogging()
			initLogLevel()
			if err := initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String()); err != nil {
				return err
			}
			initLogLevel()
			traceConfig()
			return nil
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the timerange config file (default ./config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	rootCmd.PersistentFlags().String("timezone", "", "IANA timezone that decides what \"today\" is (default local)")
	rootCmd.PersistentFlags().String("default-time-filter", "", "Time range applied when none is chosen (env "+config.EnvDefaultTimeFilter+")")
	rootCmd.PersistentFlags().String("relative-start", "today", "Anchor accepted at the start of relative custom ranges")

	// Bind viper config to the root flags
	viper.BindPFlag(config.KeyLocal, rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyConfig, rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag(config.KeyTimezone, rootCmd.PersistentFlags().Lookup("timezone"))
	viper.BindPFlag(config.KeyDefaultTimeFilter, rootCmd.PersistentFlags().Lookup("default-time-filter"))
	viper.BindPFlag(config.KeyRelativeStart, rootCmd.PersistentFlags().Lookup("relative-start"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("timerange version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.BindEnv(config.KeyDefaultTimeFilter, config.EnvDefaultTimeFilter)
	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{
		frame.Command,
		decode.Command,
		encode.Command,
		defaults.Command,
		presets.Command,
		pick.Command,
		repl.Command,
		server.Command,
	} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log := config.Logger()
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
