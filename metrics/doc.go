// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus metrics for the content API.

	rec := metrics.NewRecorder()
	_ = rec.RegisterDBStats(conn, "content")
	mux.Handle("GET /metrics", rec.Handler())

Metrics:

  - content_api_http_requests_total{endpoint,method,status}
  - content_api_http_request_duration_seconds{endpoint,method}
  - go_sql_* connection pool statistics
  - Go runtime and process collectors

Requests are recorded by middleware.WithMetrics.
*/
package metrics
