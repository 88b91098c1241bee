// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/middleware"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListCategories handles GET /api/categories
// Serves the ballot the voter client renders: every category with its
// ordered nominee list. Selections reference nominees by position here.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}
