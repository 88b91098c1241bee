// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/middleware"
	"github.com/danielhkuo/spart-awards/models"
	"github.com/danielhkuo/spart-awards/store"
)

type VoteHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewVoteHandler(st *store.Store, cat *catalog.Catalog) *VoteHandler {
	return &VoteHandler{store: st, catalog: cat}
}

// SubmitBallot handles POST /api/vote
//
// A ballot is accepted only while voting is open. Individual selections that
// reference an unknown category or nominee index are skipped rather than
// failing the whole ballot, so one stale selection cannot discard a voter's
// remaining valid choices. The response reports how many were recorded.
func (h *VoteHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	if h.store.Status(r.Context()) != models.StatusOpen {
		middleware.ErrorResponse(w, http.StatusForbidden, "Voting is currently closed")
		return
	}

	// Parse request
	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if len(req.Selections) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "selections cannot be empty")
		return
	}

	// One shared timestamp per ballot
	castAt := time.Now().UTC()

	votes := make([]store.Vote, 0, len(req.Selections))
	for categoryID, nomineeIndex := range req.Selections {
		nominee, err := h.catalog.Resolve(categoryID, nomineeIndex)
		if err != nil {
			slog.Warn("skipping unresolvable selection",
				"category_id", categoryID,
				"nominee_index", nomineeIndex,
			)
			continue
		}
		title, err := h.catalog.TitleOf(categoryID)
		if err != nil {
			// Resolve already proved the category exists
			continue
		}

		votes = append(votes, store.Vote{
			ID:            uuid.NewString(),
			VoterEmail:    req.Email,
			CategoryTitle: title,
			NomineeName:   nominee.Name,
			CastAt:        castAt,
		})
	}

	if len(votes) > 0 {
		if err := h.store.AppendVotes(r.Context(), votes); err != nil {
			slog.Error("failed to save votes", "error", err, "email", req.Email)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Error saving vote")
			return
		}
	}

	slog.Info("ballot recorded",
		"email", req.Email,
		"recorded", len(votes),
		"submitted", len(req.Selections),
	)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitBallotResponse{
		Recorded: len(votes),
		Message:  "Vote saved successfully",
	})
}
