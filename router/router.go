// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/caseboard/caseboard/cliparse"
	"github.com/caseboard/caseboard/eventstore"
	"github.com/caseboard/caseboard/handlers"
	"github.com/caseboard/caseboard/middleware"
	"github.com/caseboard/caseboard/registry"
	"github.com/caseboard/caseboard/sheetstore"
)

func NewRouter(store sheetstore.RowStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Repositories
	index := registry.New(store, cfg.MasterSheetID)
	events := eventstore.New(store)

	// Initialize handlers
	eventsHandler := handlers.NewEventsHandler(index, events)
	votesHandler := handlers.NewVotesHandler(index, events)
	scoreboardHandler := handlers.NewScoreboardHandler(index, events)
	adminHandler := handlers.NewAdminHandler(index, events, store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Event browsing (public)
	mux.HandleFunc("GET /events", middleware.WithLogging(eventsHandler.ListEvents))
	mux.HandleFunc("GET /events/{eventId}/vote-data", middleware.WithLogging(eventsHandler.GetVoteDataByEvent))
	mux.HandleFunc("GET /vote-data/{sheetId}", middleware.WithLogging(eventsHandler.GetVoteDataBySheet))

	// Voting operations (judges)
	mux.HandleFunc("POST /events/{eventId}/vote", middleware.WithLogging(votesHandler.SubmitVote))
	mux.HandleFunc("GET /vote-history/{sheetId}/{judgeId}", middleware.WithLogging(votesHandler.GetHistory))

	// Scoreboard (public, gated by event status)
	mux.HandleFunc("GET /scoreboard/{eventId}", middleware.WithLogging(scoreboardHandler.GetScoreboard))

	// Admin operations (shared token)
	mux.HandleFunc("POST /admin/events", middleware.WithLogging(adminHandler.CreateEvent))
	mux.HandleFunc("DELETE /admin/events/{eventId}/votes/{judgeId}", middleware.WithLogging(adminHandler.ResetVotes))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("caseboard API v1"))
	})

	return mux
}
