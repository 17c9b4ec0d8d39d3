// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/eventstore"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/registry"
)

type VotesHandler struct {
	index  *registry.Repository
	events *eventstore.Repository
}

func NewVotesHandler(index *registry.Repository, events *eventstore.Repository) *VotesHandler {
	return &VotesHandler{index: index, events: events}
}

// SubmitVote handles POST /events/{eventId}/vote
func (h *VotesHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "eventId is required")
		return
	}

	var payload models.VotePayload
	if err := middleware.ParseJSONBody(r, &payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Reject bad payloads before any store traffic
	if err := eventstore.ValidateVote(payload); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.index.FindByEventID(r.Context(), eventID)
	if errors.Is(err, registry.ErrEventNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to resolve event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.events.SubmitVote(r.Context(), entry.SheetID, payload); err != nil {
		if errors.Is(err, eventstore.ErrInvalidVote) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to submit vote", "error", err,
			"event_id", eventID, "judge_id", payload.JudgeID, "round", payload.Round)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("vote recorded", "event_id", eventID,
		"judge_id", payload.JudgeID, "round", payload.Round)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{Success: true})
}

// GetHistory handles GET /vote-history/{sheetId}/{judgeId}
// Returns the judge's current pick for each rank of each round.
func (h *VotesHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sheetID := r.PathValue("sheetId")
	judgeID := r.PathValue("judgeId")
	if sheetID == "" || judgeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sheetId and judgeId are required")
		return
	}

	resp := models.VoteHistoryResponse{EventName: "Event Title"}

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		entry, err := h.index.FindBySheetID(gctx, sheetID)
		if errors.Is(err, registry.ErrEventNotFound) {
			return nil // placeholder name stands
		}
		if err != nil {
			return err
		}
		if entry.EventName != "" {
			resp.EventName = entry.EventName
		}
		return nil
	})
	g.Go(func() error {
		name, err := h.events.FindJudgeName(gctx, sheetID, judgeID)
		if err != nil {
			return err
		}
		resp.JudgeName = name
		return nil
	})
	g.Go(func() error {
		grid, err := h.events.GetHistory(gctx, sheetID, judgeID)
		if err != nil {
			return err
		}
		resp.RoundVotes = grid
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to fetch vote history", "error", err,
			"sheet_id", sheetID, "judge_id", judgeID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
