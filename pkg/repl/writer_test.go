/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutputWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, CSVWriter{}, NewOutputWriter(&buf, "csv"))
	assert.IsType(t, JSONWriter{}, NewOutputWriter(&buf, "json"))
	assert.IsType(t, TextWriter{}, NewOutputWriter(&buf, "text"))
	assert.IsType(t, TextWriter{}, NewOutputWriter(&buf, ""))
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	res := FrameResult{TimeRange: "Last week", Frame: timerange.FrameCommon}

	require.NoError(t, NewOutputWriter(&buf, "csv").Write(res))
	assert.Equal(t, "Time Range,Frame\nLast week,Common\n", buf.String())
}

func TestCSVWriterQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	res := ExpressionResult{TimeRange: "DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)"}

	require.NoError(t, NewOutputWriter(&buf, "csv").Write(res))
	assert.Equal(t,
		"Time Range\n\"DATEADD(DATETIME('2025-09-28'), 0, DAY) : DATEADD(DATETIME('2025-10-27'), 0, DAY)\"\n",
		buf.String(),
	)
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	res := DecodeResult{TimeRange: "2025-01-01 : 2025-02-01", Match: true, Start: "2025-01-01", End: "2025-02-01"}

	require.NoError(t, NewOutputWriter(&buf, "json").Write(res))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["match"])
	assert.Equal(t, "2025-01-01", got["start"])
	assert.NotContains(t, got, "start_relative")
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	res := FrameResult{TimeRange: "Current quarter", Frame: timerange.FrameCurrent}

	require.NoError(t, NewOutputWriter(&buf, "text").Write(res))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "FRAME")
	assert.Contains(t, out, "Current quarter")
	assert.Contains(t, out, "Current")
}
