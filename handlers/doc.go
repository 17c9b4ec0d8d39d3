// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Caseboard API.

# Handler Types

Each handler is a struct holding its repository dependencies:

  - EventsHandler: event list and per-event voting data
  - VotesHandler: vote submission and vote history
  - ScoreboardHandler: gated scoreboard retrieval
  - AdminHandler: event provisioning and vote resets

Handlers are created via constructor functions:

	eventsHandler := handlers.NewEventsHandler(index, events)

where index is the MasterIndex repository and events the per-event sheet
repository.

# Judge Voting Flow

Judges reach their event through its sheet ID (a capability URL handed out
by staff), pick their identity, rank three teams per round, and can revise
any round until the event closes:

	GET  /vote-data/{sheetId}              - active teams and judges
	POST /events/{eventId}/vote            - submit or revise a ranked vote
	GET  /vote-history/{sheetId}/{judgeId} - current picks per round

Submitting again for the same round replaces the earlier vote; at most one
vote row exists per (judge, round).

# Scoreboard Gating

GET /scoreboard/{eventId} checks the event's status in the MasterIndex.
Live events only ever return a waiting message; the four ranking tables
are returned once staff set the status to Final.

# Admin Operations

POST /admin/events validates the shared token, clones the event sheet
template via Drive, fills the roster tabs, and appends the MasterIndex
row. DELETE /admin/events/{eventId}/votes/{judgeId} clears a judge's vote
rows (token in the X-Admin-Token header).

# Error Mapping

Handlers translate repository sentinels at the boundary:

	registry.ErrEventNotFound    → 404
	registry.ErrDuplicateEventID → 409
	eventstore.ErrInvalidVote    → 400
	auth.ErrInvalidAdminToken    → 401
	anything else                → 500, store message passed through
*/
package handlers
