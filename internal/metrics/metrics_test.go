package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"giftcard/internal/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want string
	}{
		{err: nil, want: "ok"},
		{err: fmt.Errorf("x: %w", domain.ErrConfiguration), want: "configuration"},
		{err: fmt.Errorf("x: %w", domain.ErrInvalidTier), want: "invalid_tier"},
		{err: fmt.Errorf("x: %w", domain.ErrUpstreamFormat), want: "upstream_format"},
		{err: fmt.Errorf("x: %w", domain.ErrUpstreamEmptyResult), want: "upstream_empty"},
		{err: fmt.Errorf("x: %w", domain.ErrUpstreamTransport), want: "upstream_transport"},
		{err: fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, context.DeadlineExceeded), want: "timeout"},
		{err: context.Canceled, want: "canceled"},
		{err: errors.New("other"), want: "error"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Outcome(tc.err), "%v", tc.err)
	}
}

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration("copy", "tier1", nil, time.Second)
	m.ObserveGeneration("copy", "tier1", nil, time.Second)
	m.ObserveGeneration("image", "tier2", domain.ErrUpstreamEmptyResult, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("copy", "tier1", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("image", "tier2", "upstream_empty")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ObserveHTTP("/{tier}/describe", http.MethodPost, http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `giftcard_http_requests_total{method="POST",route="/{tier}/describe",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched"`)
}
