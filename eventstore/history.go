// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventstore

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

// GetHistory reassembles a judge's current vote at each rank of each round
// into a 3x3 grid keyed by round name and rank label. Cells with no vote,
// or whose team ID no longer resolves against the teams tab, stay nil.
//
// Later votes_data rows overwrite earlier ones in scan order. SubmitVote
// keeps at most one row per (judge, round), so scan order only matters if
// the sheet was edited by hand.
func (r *Repository) GetHistory(ctx context.Context, sheetID, judgeID string) (models.RoundVotes, error) {
	var teamRows, voteRows [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.store.ReadRange(gctx, sheetID, teamsRange)
		if err != nil {
			return err
		}
		teamRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := r.store.ReadRange(gctx, sheetID, votesRange)
		if err != nil {
			return err
		}
		voteRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	teams := make(map[string]*models.HistoryTeam, len(teamRows))
	for _, row := range teamRows {
		id := sheetstore.Cell(row, 0)
		if id == "" {
			continue
		}
		teams[id] = &models.HistoryTeam{
			TeamID:   id,
			TeamName: sheetstore.Cell(row, 1),
			PhotoURL: sheetstore.Cell(row, 2),
		}
	}

	grid := models.NewRoundVotes()
	for _, row := range voteRows {
		if sheetstore.Cell(row, 0) != judgeID {
			continue
		}
		round := sheetstore.Cell(row, 1)
		cells, ok := grid[round]
		if !ok {
			continue
		}
		for i, label := range models.RankLabels {
			if team, ok := teams[sheetstore.Cell(row, 2+i)]; ok {
				cells[label] = team
			}
		}
	}
	return grid, nil
}
