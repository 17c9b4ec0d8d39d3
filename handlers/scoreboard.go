// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseboard/caseboard/eventstore"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/registry"
)

// waitingMessage is shown while an event is still live. Scores stay
// hidden until staff flip the event to Final.
const waitingMessage = "This event is ongoing. Check back later for final results!"

type ScoreboardHandler struct {
	index  *registry.Repository
	events *eventstore.Repository
}

func NewScoreboardHandler(index *registry.Repository, events *eventstore.Repository) *ScoreboardHandler {
	return &ScoreboardHandler{index: index, events: events}
}

// GetScoreboard handles GET /scoreboard/{eventId}
// Live events return only a waiting message; Final events return all four
// pre-computed ranking tables.
func (h *ScoreboardHandler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "eventId is required")
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

	if entry.Status != models.StatusFinal {
		middleware.JSONResponse(w, http.StatusOK, models.ScoreboardLiveResponse{
			Status:    models.StatusLive,
			EventName: entry.EventName,
			Message:   waitingMessage,
		})
		return
	}

	board, err := h.events.ReadScoreboard(r.Context(), entry.SheetID)
	if err != nil {
		slog.Error("failed to read scoreboard", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ScoreboardFinalResponse{
		Status:             models.StatusFinal,
		EventName:          entry.EventName,
		HostName:           entry.HostName,
		HostLogoURL:        entry.HostLogoURL,
		OverallRankings:    board.Overall,
		DueDiligence:       board.DueDiligence,
		WrittenDeliverable: board.WrittenDeliverable,
		PartnerMeeting:     board.PartnerMeeting,
	})
}
