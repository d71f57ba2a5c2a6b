/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint string, code int)
	IncFrames(frame string)
	IncDecodes(outcome string)
	ObserveResponseNS(endpoint string, t int64)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Requests   *prometheus.CounterVec
	Frames     *prometheus.CounterVec
	Decodes    *prometheus.CounterVec
	ResponseNS *prometheus.HistogramVec
}

var (
	EndpointLabel = "endpoint"
	CodeLabel     = "code"
	FrameLabel    = "frame"
	OutcomeLabel  = "outcome"
)

const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "nomatch"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(i*int(50*time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timerange_requests",
			Help: "Request counts for the timerange endpoints",
		}, []string{EndpointLabel, CodeLabel}),
		Frames: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timerange_frames",
			Help: "Number of time ranges classified into each frame",
		}, []string{FrameLabel}),
		Decodes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timerange_decodes",
			Help: "Date range decode attempts by outcome",
		}, []string{OutcomeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "timerange_response_ns",
			Help:    "Response times on requests made against an endpoint",
			Buckets: buckets,
		}, []string{EndpointLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint string, code int) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, CodeLabel: strconv.Itoa(code)}).Inc()
}

func (ms *metricsStore) IncFrames(frame string) {
	ms.Frames.With(prometheus.Labels{FrameLabel: frame}).Inc()
}

func (ms *metricsStore) IncDecodes(outcome string) {
	ms.Decodes.With(prometheus.Labels{OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(endpoint string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}
