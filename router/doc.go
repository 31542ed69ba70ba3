// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the content API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, rec)

A nil metrics recorder disables both request metrics and GET /metrics.

# Endpoints

Operational:

	GET /health  - Database reachability
	GET /metrics - Prometheus metrics

Surahs:

	GET /api/surahs       - All surahs ordered by id
	GET /api/surahs/{id}  - Name, PDF URLs and audio URLs of one surah

Azkar:

	GET /api/azkar/sections    - All sections ordered by id
	GET /api/azkar/{sectionId} - One section and its azkar
	GET /api/azkar             - All sections and azkar grouped by section id

# Middleware Chain

Every route except /metrics and the root banner is wrapped as

	WithLogging(WithMetrics(rec, endpoint, WithErrors(handler)))

so logging and metrics observe the final status chosen by the error boundary.
*/
package router
