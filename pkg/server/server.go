/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// DefaultTimeFilter is consulted on every request so configuration
	// changes apply without a restart
	DefaultTimeFilter func() string
	RelativeStart     string
	// Now returns the current time in the configured location
	Now func() time.Time

	Port        int
	MetricsPort int
}

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	config  Config
}

func New(log zerolog.Logger, config Config) *Server {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.DefaultTimeFilter == nil {
		config.DefaultTimeFilter = func() string { return "" }
	}

	s := &Server{
		log:     log,
		metrics: NewMetricsStore(),
		config:  config,
	}
	s.metrics.RegisterCollector(NewDefaultRangeCollector(config.DefaultTimeFilter, config.Now))

	return s
}

func (s *Server) now() time.Time {
	return s.config.Now()
}

func (s *Server) defaultTimeFilter() string {
	return s.config.DefaultTimeFilter()
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler returns the API, with /metrics mounted when no separate metrics
// port is configured
func (s *Server) Handler() http.Handler {
	mux := NewAPIMux(s.log, s.metrics)

	mux.Handle("/api/v1/frame", "frame", s.FrameResponse)
	mux.Handle("/api/v1/daterange", "daterange", s.DateRangeResponse)
	mux.Handle("/api/v1/daterange/encode", "encode", s.EncodeResponse)
	mux.Handle("/api/v1/custom", "custom", s.CustomResponse)
	mux.Handle("/api/v1/resolve", "resolve", s.ResolveResponse)
	mux.Handle("/api/v1/default", "default", s.DefaultResponse)
	mux.Handle("/api/v1/presets", "presets", s.PresetsResponse)
	mux.Handle("/api/v1/picker", "picker", s.PickerResponse)

	if s.config.MetricsPort == 0 || s.config.MetricsPort == s.config.Port {
		mux.HandleHTTP("/metrics", s.metrics.Handler())
	}

	return mux
}

// Serve listens on the API port, and on the metrics port when it differs,
// until ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	servers := []*http.Server{{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}}
	s.log.Info().Int("port", s.config.Port).Msg("listening for api requests")

	if s.config.MetricsPort != 0 && s.config.MetricsPort != s.config.Port {
		metrics := http.NewServeMux()
		metrics.Handle("/metrics", s.metrics.Handler())
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", s.config.MetricsPort),
			Handler:           metrics,
			ReadHeaderTimeout: 5 * time.Second,
		})
		s.log.Info().Int("port", s.config.MetricsPort).Msg("/metrics endpoint started")
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.Wrapf(err, "unable to serve on %s", srv.Addr)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info().Msg("shutting down")

		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, srv := range servers {
			if err := srv.Shutdown(shutdown); err != nil {
				s.log.Error().Err(err).Str("addr", srv.Addr).Msg("unable to shut down cleanly")
			}
		}
		return nil
	})

	return g.Wait()
}
