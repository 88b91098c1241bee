// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/cliparse"
	"github.com/danielhkuo/spart-awards/handlers"
	"github.com/danielhkuo/spart-awards/middleware"
	"github.com/danielhkuo/spart-awards/store"
)

func NewRouter(st *store.Store, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(st, cat)
	catalogHandler := handlers.NewCatalogHandler(cat)
	adminHandler := handlers.NewAdminHandler(st, cat)

	// Admin endpoints share the secret gate
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting operations (public)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(voteHandler.SubmitBallot))
	mux.HandleFunc("GET /api/categories", middleware.WithLogging(catalogHandler.ListCategories))

	// Admin operations
	mux.HandleFunc("GET /api/admin/status", admin(adminHandler.GetStatus))
	mux.HandleFunc("POST /api/admin/start", admin(adminHandler.StartVoting))
	mux.HandleFunc("POST /api/admin/stop", admin(adminHandler.StopVoting))
	mux.HandleFunc("POST /api/admin/reset", admin(adminHandler.ResetVoting))
	mux.HandleFunc("GET /api/admin/results", admin(adminHandler.GetResults))
	mux.HandleFunc("GET /api/admin/archives", admin(adminHandler.ListArchives))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("spart-awards API v1"))
	})

	return mux
}
