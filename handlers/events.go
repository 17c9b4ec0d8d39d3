// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/eventstore"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/registry"
)

type EventsHandler struct {
	index  *registry.Repository
	events *eventstore.Repository
}

func NewEventsHandler(index *registry.Repository, events *eventstore.Repository) *EventsHandler {
	return &EventsHandler{index: index, events: events}
}

// ListEvents handles GET /events
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	entries, err := h.index.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	summaries := make([]models.EventSummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, models.EventSummary{
			ID:       entry.EventID,
			Name:     entry.EventName,
			Category: entry.EventType,
			Date:     entry.EventDate,
			Host: models.EventHost{
				Name: entry.HostName,
				Logo: entry.HostLogoURL,
			},
			Status: strings.ToLower(entry.Status),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventsResponse{Events: summaries})
}

// GetVoteDataByEvent handles GET /events/{eventId}/vote-data
// Resolves the event's backing sheet first, then returns the active roster.
func (h *EventsHandler) GetVoteDataByEvent(w http.ResponseWriter, r *http.Request) {
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

	data, err := h.voteData(r, entry.SheetID, entry.EventName)
	if err != nil {
		slog.Error("failed to fetch vote data", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, data)
}

// GetVoteDataBySheet handles GET /vote-data/{sheetId}
// The judge-facing voting pages carry the sheet ID directly; the event
// name comes from a reverse MasterIndex lookup and degrades to a
// placeholder when the sheet is not indexed.
func (h *EventsHandler) GetVoteDataBySheet(w http.ResponseWriter, r *http.Request) {
	sheetID := r.PathValue("sheetId")
	if sheetID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sheetId is required")
		return
	}

	eventName := "Event Title"
	entry, err := h.index.FindBySheetID(r.Context(), sheetID)
	if err == nil && entry.EventName != "" {
		eventName = entry.EventName
	} else if err != nil && !errors.Is(err, registry.ErrEventNotFound) {
		slog.Error("failed to resolve event name", "error", err, "sheet_id", sheetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := h.voteData(r, sheetID, eventName)
	if err != nil {
		slog.Error("failed to fetch vote data", "error", err, "sheet_id", sheetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, data)
}

// voteData reads the active teams and judges of one event sheet in parallel.
func (h *EventsHandler) voteData(r *http.Request, sheetID, eventName string) (models.EventData, error) {
	data := models.EventData{EventName: eventName}

	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		teams, err := h.events.ListActiveTeams(gctx, sheetID)
		if err != nil {
			return err
		}
		data.Teams = teams
		return nil
	})
	g.Go(func() error {
		judges, err := h.events.ListActiveJudges(gctx, sheetID)
		if err != nil {
			return err
		}
		data.Judges = judges
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.EventData{}, err
	}
	return data, nil
}
