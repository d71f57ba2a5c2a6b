/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package config exposes the settings the root command loads into viper to
// the subcommands.
package config

import (
	"io"
	"os"
	"time"

	"github.com/dburkart/timerange/pkg/repl"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Keys under which settings are stored in viper
const (
	KeyLogger            = "logger"
	KeyConfig            = "config"
	KeyVerbose           = "timerange.verbose"
	KeyLocal             = "timerange.local"
	KeyOutput            = "timerange.output"
	KeyTimezone          = "timerange.timezone"
	KeyDefaultTimeFilter = "timerange.default_time_filter"
	KeyRelativeStart     = "timerange.relative_start"
	KeyPort              = "timerange.port"
	KeyMetricsPort       = "timerange.metrics-port"
	KeyHost              = "timerange.host"

	// EnvDefaultTimeFilter overrides the configured default time filter
	EnvDefaultTimeFilter = "DEFAULT_TIME_FILTER"
)

func init() {
	viper.SetDefault(KeyRelativeStart, "today")
	viper.SetDefault(KeyOutput, "text")
}

// Logger returns the logger built by the root command, or a console logger
// when none has been set
func Logger() zerolog.Logger {
	if log, ok := viper.Get(KeyLogger).(zerolog.Logger); ok {
		return log
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()
}

// Location is the configured timezone, time.Local when unset
func Location() (*time.Location, error) {
	name := viper.GetString(KeyTimezone)
	if name == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid timezone '%s'", name)
	}
	return loc, nil
}

// DefaultTimeFilter is read on every call so it always reflects the
// environment and config file
func DefaultTimeFilter() string {
	return viper.GetString(KeyDefaultTimeFilter)
}

func RelativeStart() string {
	return viper.GetString(KeyRelativeStart)
}

// Clock returns a function reporting the current time in the configured
// timezone
func Clock() (func() time.Time, error) {
	loc, err := Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time { return time.Now().In(loc) }, nil
}

// Session builds a REPL session from the current configuration
func Session() (repl.Session, error) {
	now, err := Clock()
	if err != nil {
		return repl.Session{}, err
	}

	return repl.Session{
		Now:               now,
		DefaultTimeFilter: DefaultTimeFilter(),
		RelativeStart:     RelativeStart(),
		Log:               Logger(),
	}, nil
}

// OutputWriter returns a writer for the configured output format
func OutputWriter(w io.Writer) (repl.OutputWriter, error) {
	output := viper.GetString(KeyOutput)
	for _, f := range repl.OutputFormats {
		if f == output {
			return repl.NewOutputWriter(w, output), nil
		}
	}
	return nil, errors.Errorf("unsupported output format '%s'", output)
}

// Print evaluates a single command and writes its result to w
func Print(w io.Writer, cmd repl.Command) error {
	session, err := Session()
	if err != nil {
		return err
	}

	writer, err := OutputWriter(w)
	if err != nil {
		return err
	}

	res, err := session.Eval(cmd)
	if err != nil {
		return err
	}
	return writer.Write(res)
}
