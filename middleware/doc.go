// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Admin Gate

Gate admin endpoints behind the shared secret:

	mux.HandleFunc("POST /api/admin/start", middleware.RequireAdmin(secret, handler))

The secret is read from X-Admin-Secret or the auth query parameter and
compared in constant time. Failures return a uniform 403 regardless of
what the gated endpoint would have said.

# CORS Middleware

Enable cross-origin requests from the configured frontend origin:

	server := http.Server{
		Handler: middleware.CORS(cfg.FrontendURL, mux),
	}

Credentials are only allowed when an origin is pinned; with no origin
configured the surface is open but credential-less.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (unknown fields rejected):

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
