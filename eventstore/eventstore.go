// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventstore

import (
	"context"
	"time"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

// Per-event sheet ranges. All tabs keep a header row at row 1.
const (
	teamsRange       = "teams!A2:D"
	teamsWriteRange  = "teams!A2:D"
	judgesRange      = "judges!A2:D"
	judgesWriteRange = "judges!A2:D"
	votesRange       = "votes_data!A2:F"
	votesAppendRange = "votes_data!A:F"
	votesTab         = "votes_data"
)

// votes_data starts at sheet row 2, so data row i lives at physical
// zero-based row i+1 and sheet row i+2.
const votesFirstSheetRow = 2

// Repository is the typed view over one event's own sheet: its teams,
// judges, votes, and pre-computed scoreboard tabs. The sheet ID is passed
// per call because one Repository serves every event.
type Repository struct {
	store sheetstore.RowStore
	locks keyedMutex
	now   func() time.Time
}

func New(store sheetstore.RowStore) *Repository {
	return &Repository{store: store, now: time.Now}
}

// ListActiveTeams returns the teams tab rows with is_active == "TRUE".
func (r *Repository) ListActiveTeams(ctx context.Context, sheetID string) ([]models.Team, error) {
	rows, err := r.store.ReadRange(ctx, sheetID, teamsRange)
	if err != nil {
		return nil, err
	}

	teams := []models.Team{}
	for _, row := range rows {
		team := models.Team{
			TeamID:   sheetstore.Cell(row, 0),
			TeamName: sheetstore.Cell(row, 1),
			PhotoURL: sheetstore.Cell(row, 2),
			IsActive: sheetstore.Cell(row, 3) == "TRUE",
		}
		if team.TeamID == "" || !team.IsActive {
			continue
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// ListActiveJudges returns the judges tab rows with is_active == "TRUE".
func (r *Repository) ListActiveJudges(ctx context.Context, sheetID string) ([]models.Judge, error) {
	rows, err := r.store.ReadRange(ctx, sheetID, judgesRange)
	if err != nil {
		return nil, err
	}

	judges := []models.Judge{}
	for _, row := range rows {
		judge := models.Judge{
			JudgeID:   sheetstore.Cell(row, 0),
			JudgeName: sheetstore.Cell(row, 1),
			PhotoURL:  sheetstore.Cell(row, 2),
			IsActive:  sheetstore.Cell(row, 3) == "TRUE",
		}
		if judge.JudgeID == "" || !judge.IsActive {
			continue
		}
		judges = append(judges, judge)
	}
	return judges, nil
}

// PopulateRoster writes the teams and judges tabs of a freshly cloned
// event sheet in a single batch request. Rows are already in sheet column
// order (id, name, photo_url, is_active).
func (r *Repository) PopulateRoster(ctx context.Context, sheetID string, teamRows, judgeRows [][]string) error {
	entries := []sheetstore.BatchEntry{}
	if len(teamRows) > 0 {
		entries = append(entries, sheetstore.BatchEntry{Range: teamsWriteRange, Rows: teamRows})
	}
	if len(judgeRows) > 0 {
		entries = append(entries, sheetstore.BatchEntry{Range: judgesWriteRange, Rows: judgeRows})
	}
	if len(entries) == 0 {
		return nil
	}
	return r.store.BatchWrite(ctx, sheetID, entries)
}

// FindJudgeName resolves a judge ID to its display name. An absent judge
// degrades to "Unknown Judge"; only a store failure is an error.
func (r *Repository) FindJudgeName(ctx context.Context, sheetID, judgeID string) (string, error) {
	rows, err := r.store.ReadRange(ctx, sheetID, judgesRange)
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		if sheetstore.Cell(row, 0) == judgeID {
			return sheetstore.Cell(row, 1), nil
		}
	}
	return "Unknown Judge", nil
}
