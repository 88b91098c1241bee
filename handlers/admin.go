// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/middleware"
	"github.com/danielhkuo/spart-awards/models"
	"github.com/danielhkuo/spart-awards/store"
	"github.com/danielhkuo/spart-awards/tally"
)

type AdminHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewAdminHandler(st *store.Store, cat *catalog.Catalog) *AdminHandler {
	return &AdminHandler{store: st, catalog: cat}
}

// GetStatus handles GET /api/admin/status
func (h *AdminHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		Status: h.store.Status(r.Context()),
	})
}

// StartVoting handles POST /api/admin/start. Idempotent.
func (h *AdminHandler) StartVoting(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusOpen, "Voting started successfully")
}

// StopVoting handles POST /api/admin/stop. Idempotent.
func (h *AdminHandler) StopVoting(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.StatusClosed, "Voting stopped successfully")
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, r *http.Request, status, message string) {
	if err := h.store.SetStatus(r.Context(), status); err != nil {
		slog.Error("failed to set voting status", "error", err, "status", status)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update voting status")
		return
	}

	slog.Info("voting status changed", "status", status)

	middleware.JSONResponse(w, http.StatusOK, models.TransitionResponse{
		Status:  status,
		Message: message,
	})
}

// ResetVoting handles POST /api/admin/reset
// Archives the current round, clears the live ledger, and closes voting.
func (h *AdminHandler) ResetVoting(w http.ResponseWriter, r *http.Request) {
	arch, err := h.store.ArchiveAndReset(r.Context())
	if err != nil {
		slog.Error("failed to archive and reset", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error resetting votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		ArchiveID:   arch.ID,
		ArchiveName: arch.Name,
		Message:     "Votes reset and voting closed successfully",
	})
}

// ListArchives handles GET /api/admin/archives
// Archived rounds, newest first.
func (h *AdminHandler) ListArchives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.store.ListArchives(r.Context())
	if err != nil {
		slog.Error("failed to list archives", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	infos := make([]models.ArchiveInfo, 0, len(archives))
	for _, a := range archives {
		infos = append(infos, models.ArchiveInfo{
			ID:        a.ID,
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListArchivesResponse{Archives: infos})
}

// GetResults handles GET /api/admin/results
//
// Query parameters:
//   - archive: tally a frozen round instead of the live ledger
//   - sort:    voter log sort key, "lastCast" (default) or "email"
//   - order:   "asc" or "desc" (default)
func (h *AdminHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		votes       []store.Vote
		err         error
		archiveInfo *models.ArchiveInfo
	)

	if archiveID := r.URL.Query().Get("archive"); archiveID != "" {
		arch, archErr := h.store.Archive(ctx, archiveID)
		if errors.Is(archErr, store.ErrArchiveNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Archive not found")
			return
		}
		if archErr != nil {
			slog.Error("failed to query archive", "error", archErr)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		archiveInfo = &models.ArchiveInfo{ID: arch.ID, Name: arch.Name, CreatedAt: arch.CreatedAt}
		votes, err = h.store.ArchivedVotes(ctx, archiveID)
	} else {
		votes, err = h.store.ListVotes(ctx)
	}

	if err != nil {
		slog.Error("failed to load votes for results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	results := tally.Compute(h.catalog, votes)
	tally.SortVoters(results.Voters, r.URL.Query().Get("sort"), r.URL.Query().Get("order"))

	response := models.ResultsResponse{
		Status:     h.store.Status(ctx),
		Archive:    archiveInfo,
		VoteCount:  len(votes),
		Categories: h.categoryResults(results),
		Voters:     voterLog(results.Voters),
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// categoryResults flattens the tally maps into catalog-ordered response rows.
func (h *AdminHandler) categoryResults(results tally.Results) []models.CategoryResult {
	out := make([]models.CategoryResult, 0, len(h.catalog.Categories()))
	for _, cat := range h.catalog.Categories() {
		counts := results.PerCategory[cat.ID]

		cr := models.CategoryResult{
			ID:       cat.ID,
			Title:    cat.Title,
			Nominees: make([]models.NomineeCount, 0, len(cat.Nominees)),
		}
		for _, n := range cat.Nominees {
			cr.Nominees = append(cr.Nominees, models.NomineeCount{
				Name:  n.Name,
				Role:  n.Role,
				Count: counts[n.Name],
			})
		}
		if winner, ok := tally.WinnerOf(cat, counts); ok {
			cr.Winner = &models.CategoryWinner{Name: winner.Name, Count: winner.Count}
		}

		out = append(out, cr)
	}
	return out
}

func voterLog(voters []tally.VoterHistory) []models.VoterLogEntry {
	entries := make([]models.VoterLogEntry, 0, len(voters))
	for _, v := range voters {
		entry := models.VoterLogEntry{
			Email:       v.Email,
			Votes:       make([]models.VoteLine, 0, len(v.Votes)),
			LastCastAt:  v.LastCastAt,
			LastCastAgo: humanize.Time(v.LastCastAt),
		}
		for _, line := range v.Votes {
			entry.Votes = append(entry.Votes, models.VoteLine{
				Category: line.CategoryTitle,
				Nominee:  line.NomineeName,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}
