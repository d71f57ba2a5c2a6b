/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the id assigned to each request, echoed back to
// the client
const RequestIDHeader = "X-Request-Id"

// HandleRequest answers a request with a status and a body to encode as
// JSON. A nil body writes only the status.
type HandleRequest func(r *http.Request) (int, any)

type errorBody struct {
	Error string `json:"error"`
}

// APIMux routes requests by path, tagging each with a request id, a logger
// and metrics
type APIMux struct {
	log     zerolog.Logger
	metrics MetricsStore
	mux     *http.ServeMux
}

func NewAPIMux(log zerolog.Logger, metrics MetricsStore) *APIMux {
	return &APIMux{
		log:     log,
		metrics: metrics,
		mux:     http.NewServeMux(),
	}
}

func (m *APIMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mux.ServeHTTP(w, r)
}

// Handle registers f for GET requests on path. name labels the endpoint in
// metrics and logs.
func (m *APIMux) Handle(path, name string, f HandleRequest) {
	m.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		log := m.log.With().Str("request_id", id).Str("endpoint", name).Logger()
		r = r.WithContext(log.WithContext(r.Context()))
		w.Header().Set(RequestIDHeader, id)

		var (
			code int
			body any
		)
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			code, body = http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"}
			w.Header().Set("Allow", "GET, HEAD")
		} else {
			code, body = f(r)
		}

		writeJSON(log, w, code, body)

		elapsed := time.Since(begin)
		m.metrics.IncRequests(name, code)
		m.metrics.ObserveResponseNS(name, elapsed.Nanoseconds())
		log.Info().
			Str("query", r.URL.RawQuery).
			Int("code", code).
			Dur("elapsed", elapsed).
			Msg("handled request")
	})
}

// HandleHTTP mounts a plain handler, e.g. the metrics endpoint
func (m *APIMux) HandleHTTP(path string, h http.Handler) {
	m.mux.Handle(path, h)
}

func writeJSON(log zerolog.Logger, w http.ResponseWriter, code int, body any) {
	if body == nil {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}
