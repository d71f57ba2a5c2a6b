/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "serve",
	Short: "Serve the time range codec over HTTP",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.Logger()

		now, err := config.Clock()
		if err != nil {
			return err
		}

		srv := server.New(logger, server.Config{
			DefaultTimeFilter: config.DefaultTimeFilter,
			RelativeStart:     config.RelativeStart(),
			Now:               now,
			Port:              viper.GetInt(config.KeyPort),
			MetricsPort:       viper.GetInt(config.KeyMetricsPort),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Serve(ctx)
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port for the HTTP API")
	Command.Flags().Int("metrics-port", 2112, "Set the port for /metrics, 0 to serve it on the API port")

	// Bind flags to viper
	viper.BindPFlag(config.KeyPort, Command.Flags().Lookup("port"))
	viper.BindPFlag(config.KeyMetricsPort, Command.Flags().Lookup("metrics-port"))
}
