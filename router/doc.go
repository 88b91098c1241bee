// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the SPART Awards API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cat, cfg)

# Endpoints

Health:

	GET /health

Voting (public):

	GET  /api/categories - Catalog for rendering the ballot
	POST /api/vote       - Submit a ballot

Admin (requires X-Admin-Secret or ?auth=):

	GET  /api/admin/status   - Current voting status
	POST /api/admin/start    - Open voting
	POST /api/admin/stop     - Close voting
	POST /api/admin/reset    - Archive round, clear ledger, close voting
	GET  /api/admin/results  - Tally (live, or ?archive=<id> for a past round)
	GET  /api/admin/archives - List archived rounds
*/
package router
