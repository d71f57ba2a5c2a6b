/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package timerange

import (
	"io"
	"os"
	"time"

	"github.com/dburkart/timerange/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func initConfig(configFile string) error {
	log := config.Logger()

	// config Read
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath("/etc/timerange")
	viper.AddConfigPath("/usr/local/etc/timerange")
	viper.AddConfigPath("$HOME/.timerange")
	viper.AddConfigPath(".")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	}

	err := viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
	} else if err != nil {
		return errors.Wrap(err, "error loading config file")
	} else {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config from file")
	}

	// An unknown timezone is reported now rather than on first use
	_, err = config.Location()
	return err
}

func initLogLevel() {
	level := viper.GetInt(config.KeyVerbose)
	switch clamp(2, level) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func initLogging() {
	var writer io.Writer

	// stdout carries command output
	writer = os.Stderr
	if viper.GetBool(config.KeyLocal) {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	viper.Set(config.KeyLogger, logger)
}

func traceConfig() {
	log := config.Logger()

	for _, v := range viper.AllKeys() {
		if v == config.KeyLogger {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
