package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestAPIMuxLogsRequests(t *testing.T) {
	var buf bytes.Buffer
	mux := NewAPIMux(zerolog.New(&buf), NewMetricsStore())
	mux.Handle("/ping", "ping", func(r *http.Request) (int, any) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
		return http.StatusNoContent, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	logs := buf.String()
	assert.Contains(t, logs, `"message":"inside handler"`)
	assert.Contains(t, logs, `"request_id":"req-1"`)
	assert.Contains(t, logs, `"endpoint":"ping"`)
	assert.Contains(t, logs, `"query":"x=1"`)
	assert.Contains(t, logs, `"code":204`)
}

func TestAPIMuxNotFound(t *testing.T) {
	mux := NewAPIMux(zerolog.Nop(), NewMetricsStore())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func BenchmarkAPIMux(b *testing.B) {
	mux := NewAPIMux(zerolog.Nop(), NewMetricsStore())
	mux.Handle("/a", "a", stub)
	mux.Handle("/b", "b", stub)
	mux.Handle("/c", "c", stub)

	tests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/a", nil),
		httptest.NewRequest(http.MethodGet, "/b", nil),
		httptest.NewRequest(http.MethodGet, "/c", nil),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mux.ServeHTTP(httptest.NewRecorder(), tests[i%len(tests)])
	}
}

func stub(_ *http.Request) (int, any) {
	return http.StatusOK, nil
}
