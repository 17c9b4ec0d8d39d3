// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - VotePayload: judge_id, round, ranks (rank1/rank2/rank3 team IDs)
  - CreateEventRequest: admin token plus event fields and team/judge lists

# Response Types

Types for JSON responses:

  - EventsResponse: events (summaries for the event list page)
  - EventData: eventName, active teams, active judges
  - VoteResponse: success
  - VoteHistoryResponse: eventName, judgeName, roundVotes grid
  - ScoreboardLiveResponse: status, eventName, waiting message
  - ScoreboardFinalResponse: all four pre-computed ranking tables
  - CreateEventResponse: success, eventId, sheetId
  - ErrorResponse: error, message

# Domain Types

Rows read from the backing sheets, typed immediately after the raw
string-cell read so column order never leaks past the repositories:

  - EventIndexEntry: one MasterIndex row
  - Team, Judge: rows of an event sheet's teams/judges tabs
  - VoteRecord: one votes_data row (one row per judge+round)
  - ScoreboardRow: one pre-ranked scoreboard entry

# Constants

Event status values (MasterIndex status column):

	StatusLive  = "Live"
	StatusFinal = "Final"

Round names:

	RoundDueDiligence        = "Due Diligence"
	RoundWrittenDeliverables = "Written Deliverables"
	RoundPartnerMeeting      = "Partner Meeting"

Rank labels for the history grid:

	RankFirst  = "1st Place"
	RankSecond = "2nd Place"
	RankThird  = "3rd Place"
*/
package models
