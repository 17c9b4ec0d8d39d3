// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package eventstore is the typed repository over one event's own sheet.

Each event owns an isolated spreadsheet with four tabs:

	teams      - team_id, team_name, photo_url, is_active
	judges     - judge_id, judge_name, photo_url, is_active
	votes_data - judge_id, round, rank1, rank2, rank3, last_updated
	scoreboard - four pre-ranked (team_name, total_score) column pairs

A single Repository serves every event; the sheet ID is a per-call
argument.

# Roster Reads

	teams, err := repo.ListActiveTeams(ctx, sheetID)
	judges, err := repo.ListActiveJudges(ctx, sheetID)
	name, err := repo.FindJudgeName(ctx, sheetID, judgeID)

Only rows with is_active == "TRUE" surface; FindJudgeName degrades to
"Unknown Judge" for an absent judge instead of failing.

# Vote Upsert

SubmitVote keeps the invariant of at most one current vote per
(judge, round): a resubmission overwrites the existing row in place,
timestamped, never appending a duplicate. Payloads are validated first -
three distinct team IDs and a known round, or ErrInvalidVote.

The read-scan-write sequence is serialized through an in-process mutex
keyed by (sheet, judge, round). That closes the double-submit race for a
single server instance, which is all this deployment runs. The store has
no compare-and-swap, so running multiple instances would need an external
lock instead.

# History

GetHistory rebuilds a judge's current picks into a 3x3 grid of round x
rank label, resolving team IDs against the teams tab and leaving cells nil
when a team has been deleted or never voted for.

# Scoreboard

ReadScoreboard fetches the four pre-computed category tables concurrently
and preserves their stored order. Score parsing is forgiving: a blank or
non-numeric score never fails the request.

# Admin

PopulateRoster fills the teams/judges tabs of a freshly cloned event sheet
in one batch write. ResetJudgeVotes removes all of a judge's vote rows in
one structural delete, indices applied high-to-low.
*/
package eventstore
