// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Caseboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Event browsing (public):

	GET /events                       - Event list
	GET /events/{eventId}/vote-data   - Active roster by event ID
	GET /vote-data/{sheetId}          - Active roster by sheet ID

Voting (judges, via sheet-ID capability URLs):

	POST /events/{eventId}/vote              - Submit/revise a ranked vote
	GET  /vote-history/{sheetId}/{judgeId}   - Current picks per round

Scoreboard (public, hidden until the event is Final):

	GET /scoreboard/{eventId}

Admin (shared token):

	POST   /admin/events                             - Provision an event
	DELETE /admin/events/{eventId}/votes/{judgeId}   - Reset a judge's votes

# Handler Initialization

The router builds the repositories over the injected row store and hands
them to the handlers:

	index := registry.New(store, cfg.MasterSheetID)
	events := eventstore.New(store)
	eventsHandler := handlers.NewEventsHandler(index, events)

Tests pass an in-memory RowStore; main passes the Google-backed one.
*/
package router
