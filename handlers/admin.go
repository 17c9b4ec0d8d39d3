// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseboard/caseboard/auth"
	"github.com/caseboard/caseboard/cliparse"
	"github.com/caseboard/caseboard/eventstore"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/registry"
	"github.com/caseboard/caseboard/sheetstore"
)

type AdminHandler struct {
	index  *registry.Repository
	events *eventstore.Repository
	store  sheetstore.RowStore
	cfg    cliparse.Config
}

func NewAdminHandler(index *registry.Repository, events *eventstore.Repository, store sheetstore.RowStore, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{index: index, events: events, store: store, cfg: cfg}
}

// CreateEvent handles POST /admin/events
// Clones the event sheet template, fills its roster tabs, and registers
// the event in the MasterIndex with status Live.
func (h *AdminHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.ValidateAdminToken(req.Token, h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing admin token")
		return
	}

	if req.EventID == "" || req.EventName == "" || req.EventType == "" ||
		req.EventDate == "" || req.HostName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required event fields")
		return
	}

	if h.cfg.TemplateSheetID == "" || h.cfg.DriveFolderID == "" {
		slog.Error("event template configuration missing")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server is missing event template configuration")
		return
	}

	// Reject duplicates before cloning so a taken ID never leaves an
	// orphaned sheet behind.
	_, err := h.index.FindByEventID(r.Context(), req.EventID)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "This Event ID is already taken. Please choose a new one.")
		return
	}
	if !errors.Is(err, registry.ErrEventNotFound) {
		slog.Error("failed to check event id", "error", err, "event_id", req.EventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sheetID, err := h.store.CopyStore(r.Context(), h.cfg.TemplateSheetID, h.cfg.DriveFolderID, "Event: "+req.EventName)
	if err != nil {
		slog.Error("failed to clone event template", "error", err, "event_id", req.EventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	teamRows := make([][]string, 0, len(req.Teams))
	for _, t := range req.Teams {
		teamRows = append(teamRows, []string{auth.NewRosterID(auth.TeamIDPrefix), t.TeamName, t.PhotoURL, "TRUE"})
	}
	judgeRows := make([][]string, 0, len(req.Judges))
	for _, j := range req.Judges {
		judgeRows = append(judgeRows, []string{auth.NewRosterID(auth.JudgeIDPrefix), j.JudgeName, j.PhotoURL, "TRUE"})
	}

	// No rollback from here on: a failure leaves the cloned sheet as an
	// operational cleanup task.
	if err := h.events.PopulateRoster(r.Context(), sheetID, teamRows, judgeRows); err != nil {
		slog.Error("failed to populate roster", "error", err, "event_id", req.EventID, "sheet_id", sheetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	entry := models.EventIndexEntry{
		EventID:     req.EventID,
		EventName:   req.EventName,
		SheetID:     sheetID,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		HostName:    req.HostName,
		HostLogoURL: req.HostLogoURL,
		Status:      models.StatusLive,
	}
	if err := h.index.Create(r.Context(), entry); err != nil {
		if errors.Is(err, registry.ErrDuplicateEventID) {
			middleware.ErrorResponse(w, http.StatusConflict, "This Event ID is already taken. Please choose a new one.")
			return
		}
		slog.Error("failed to register event", "error", err, "event_id", req.EventID, "sheet_id", sheetID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("event created", "event_id", req.EventID, "sheet_id", sheetID,
		"teams", len(teamRows), "judges", len(judgeRows))

	middleware.JSONResponse(w, http.StatusOK, models.CreateEventResponse{
		Success: true,
		EventID: req.EventID,
		SheetID: sheetID,
	})
}

// ResetVotes handles DELETE /admin/events/{eventId}/votes/{judgeId}
// Removes every vote row for one judge, for the case where someone voted
// under the wrong identity. The token travels in the X-Admin-Token header
// since DELETE carries no body.
func (h *AdminHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	judgeID := r.PathValue("judgeId")
	if eventID == "" || judgeID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "eventId and judgeId are required")
		return
	}

	if err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), h.cfg.AdminToken); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or missing admin token")
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

	removed, err := h.events.ResetJudgeVotes(r.Context(), entry.SheetID, judgeID)
	if err != nil {
		slog.Error("failed to reset votes", "error", err, "event_id", eventID, "judge_id", judgeID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("votes reset", "event_id", eventID, "judge_id", judgeID, "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.ResetVotesResponse{
		Success: true,
		Removed: removed,
	})
}
