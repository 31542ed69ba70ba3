// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Error Boundary

Content handlers return an error instead of writing failures themselves:

	func (h *SurahHandler) GetSurah(w http.ResponseWriter, r *http.Request) error

WithErrors adapts them to http.HandlerFunc and maps the result:

  - nil: the handler already wrote its response
  - *HTTPError with a 4xx status (NotFound): that status and {"error": message}
  - anything else: logged, then 500 {"error": "Internal server error"}

Handlers write nothing before returning an error, so a failed request never
carries a partial body.

# Request Logging

	mux.HandleFunc("GET /api/surahs", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Each request is tagged with a request ID, taken from the
X-Request-ID header or generated, and echoed back in the response.

# Metrics

	middleware.WithMetrics(rec, "surahs", handler)

Records the request counter and latency histogram for the endpoint label.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigin, mux),
	}

Allows GET and OPTIONS; preflight requests are answered with 204.

# JSON Helpers

	return middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Surah not found")

JSONResponse encodes the whole body before writing the status, and returns
the encoding error instead, so WithErrors can still answer with a 500.
*/
package middleware
