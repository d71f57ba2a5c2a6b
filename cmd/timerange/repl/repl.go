/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/timerange/api"
	"github.com/dburkart/timerange/internal/config"
	"github.com/dburkart/timerange/pkg/picker"
	"github.com/dburkart/timerange/pkg/repl"
	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal for working with time ranges",
	Args:  cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := config.Session()
		if err != nil {
			return err
		}

		writer, err := config.OutputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}

		host := viper.GetString(config.KeyHost)
		client, err := api.NewClient(host, session)
		if err != nil {
			return err
		}
		session.Log.Debug().Str("host", host).Msg("starting repl")

		return readlinePrompt(client, session, writer)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("host", "H", "local", "Server to evaluate commands on, e.g. timerange://localhost:8001")

	// Bind flags to viper
	viper.BindPFlag(config.KeyHost, Command.Flags().Lookup("host"))
}

// namedRanges lists every time range with a frame of its own, for completion
func namedRanges() []string {
	names := []string{}
	names = append(names, timerange.CommonRanges...)
	names = append(names, timerange.CalendarRanges...)
	names = append(names, timerange.CurrentRanges...)
	return append(names, timerange.NoTimeRange)
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(strings.ToLower(s[i]), strings.ToLower(prefix)) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

// completeAfter offers the names matching whatever follows the command word
func completeAfter(names []string) func(string) []string {
	return func(line string) []string {
		_, arg, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
		return filterStringSlice(names, arg)
	}
}

func presetValues(session repl.Session) func(string) []string {
	return func(line string) []string {
		values := []string{}
		for _, p := range picker.Presets(session.Now()) {
			values = append(values, p.Value())
		}
		_, arg, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
		return filterStringSlice(values, arg)
	}
}

func presetLabels(session repl.Session) func(string) []string {
	return func(line string) []string {
		labels := []string{}
		for _, p := range picker.Presets(session.Now()) {
			labels = append(labels, p.Label)
		}
		_, arg, _ := strings.Cut(strings.TrimLeft(line, " "), " ")
		return filterStringSlice(labels, arg)
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(eval repl.Evaluator, session repl.Session, writer repl.OutputWriter) error {
	log := session.Log
	names := namedRanges()

	// Configure the completer
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("frame", readline.PcItemDynamic(completeAfter(names))),
		readline.PcItem("decode", readline.PcItemDynamic(presetValues(session))),
		readline.PcItem("custom"),
		readline.PcItem("resolve", readline.PcItemDynamic(presetValues(session))),
		readline.PcItem("encode", readline.PcItem(timerange.FormatDate.String()), readline.PcItem(timerange.FormatDateTime.String())),
		readline.PcItem("default"),
		readline.PcItem("presets"),
		readline.PcItem("pick", readline.PcItemDynamic(presetLabels(session))),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)
		if line == "" {
			continue
		}

		if strings.ToUpper(line) == "HELP" {
			fmt.Fprintln(rl.Stdout(), "usage:")
			fmt.Fprintln(rl.Stdout(), completer.Tree("    "))
			fmt.Fprintln(rl.Stdout(), "anything else is classified as a time range")
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			break
		}

		res, err := eval.Eval(repl.ParseREPLCommand(line))
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		if err := writer.Write(res); err != nil {
			log.Error().Err(err).Msg("unable to write result")
		}
		fmt.Fprintln(rl.Stdout())
	}
	rl.Clean()

	return nil
}
