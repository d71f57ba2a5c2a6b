/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

// OutputFormats lists the names NewOutputWriter understands
var OutputFormats = []string{"text", "csv", "json"}

func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return errors.Wrap(err, "writing csv header")
	}
	return errors.Wrap(wtr.WriteAll(v.Values()), "writing csv rows")
}

func (w TextWriter) Write(v Printable) error {
	headers := v.Headers()
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(header...)
	if err := table.Bulk(v.Values()); err != nil {
		return errors.Wrap(err, "building table")
	}
	return errors.Wrap(table.Render(), "rendering table")
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	return errors.Wrap(enc.Encode(v), "encoding json")
}
