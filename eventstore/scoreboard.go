// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventstore

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

// The scoreboard tab holds four pre-ranked (team_name, total_score) column
// pairs, one per category. The ranking itself is computed by formulas
// inside the sheet; this code only reads the results.
const (
	scoreboardOverallRange = "scoreboard!A2:B"
	scoreboardDDRange      = "scoreboard!D2:E"
	scoreboardWDRange      = "scoreboard!F2:G"
	scoreboardPMRange      = "scoreboard!H2:I"
)

// Scoreboard carries the four pre-computed ranking tables of a finished
// event, in stored (already rank-sorted) order.
type Scoreboard struct {
	Overall            []models.ScoreboardRow
	DueDiligence       []models.ScoreboardRow
	WrittenDeliverable []models.ScoreboardRow
	PartnerMeeting     []models.ScoreboardRow
}

// ReadScoreboard fetches all four category ranges concurrently. Rows with
// an empty team or score cell are skipped; a score that fails to parse as
// an integer counts as 0 rather than failing the read.
func (r *Repository) ReadScoreboard(ctx context.Context, sheetID string) (*Scoreboard, error) {
	board := &Scoreboard{}

	g, gctx := errgroup.WithContext(ctx)
	for _, part := range []struct {
		rng string
		dst *[]models.ScoreboardRow
	}{
		{scoreboardOverallRange, &board.Overall},
		{scoreboardDDRange, &board.DueDiligence},
		{scoreboardWDRange, &board.WrittenDeliverable},
		{scoreboardPMRange, &board.PartnerMeeting},
	} {
		g.Go(func() error {
			rows, err := r.store.ReadRange(gctx, sheetID, part.rng)
			if err != nil {
				return err
			}
			*part.dst = scoreboardRows(rows)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return board, nil
}

func scoreboardRows(rows [][]string) []models.ScoreboardRow {
	out := []models.ScoreboardRow{}
	for _, row := range rows {
		name := sheetstore.Cell(row, 0)
		raw := sheetstore.Cell(row, 1)
		if name == "" || raw == "" {
			continue
		}
		score, err := strconv.Atoi(raw)
		if err != nil || score < 0 {
			score = 0
		}
		out = append(out, models.ScoreboardRow{TeamName: name, TotalScore: score})
	}
	return out
}
