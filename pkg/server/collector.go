/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"strings"
	"time"

	"github.com/dburkart/timerange/pkg/timerange"
	"github.com/prometheus/client_golang/prometheus"
)

// defaultRangeCollector reports the default time range as of each scrape
type defaultRangeCollector struct {
	configured func() string
	now        func() time.Time

	info *prometheus.Desc
	days *prometheus.Desc
}

func NewDefaultRangeCollector(configured func() string, now func() time.Time) prometheus.Collector {
	return &defaultRangeCollector{
		configured: configured,
		now:        now,
		info: prometheus.NewDesc(
			"timerange_default_range_info",
			"The time range applied when none is chosen.",
			[]string{"time_range", "frame"}, nil,
		),
		days: prometheus.NewDesc(
			"timerange_default_range_days",
			"Number of days covered by the default time range, 0 when it is not a date range.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *defaultRangeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.info
	ch <- c.days
}

// Collect implements Collector.
func (c *defaultRangeCollector) Collect(ch chan<- prometheus.Metric) {
	today := c.now()
	expr := timerange.DefaultTimeRange(c.configured(), today)

	days := 0
	if rng, ok := timerange.DecodeDateRange(expr); ok {
		if start, end, err := rng.Times(today.Location()); err == nil && !end.Before(start) {
			days = timerange.Days(start, end)
		}
	}

	// label values must be valid UTF-8, the configured filter may not be
	label := strings.ToValidUTF8(expr, "\uFFFD")
	info, err := prometheus.NewConstMetric(c.info, prometheus.GaugeValue, 1, label, string(timerange.GuessFrame(expr)))
	if err != nil {
		info = prometheus.NewInvalidMetric(c.info, err)
	}

	ch <- info
	ch <- prometheus.MustNewConstMetric(c.days, prometheus.GaugeValue, float64(days))
}
