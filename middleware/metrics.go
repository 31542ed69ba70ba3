// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"time"

	"github.com/danielhkuo/quran-azkar-api/metrics"
)

// WithMetrics records request count and latency under endpoint.
// A nil recorder disables recording.
func WithMetrics(rec *metrics.Recorder, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	if rec == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := newStatusRecorder(w)

		next(sr, r)

		rec.ObserveRequest(endpoint, r.Method, sr.status, time.Since(start))
	}
}
