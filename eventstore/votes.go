// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

var ErrInvalidVote = errors.New("invalid vote payload")

// ValidateVote checks a payload before any store traffic: judge and round
// present, round one of the three known rounds, and the three ranked team
// IDs present and pairwise distinct.
func ValidateVote(vote models.VotePayload) error {
	if vote.JudgeID == "" {
		return fmt.Errorf("%w: judge_id is required", ErrInvalidVote)
	}
	if vote.Round == "" {
		return fmt.Errorf("%w: round is required", ErrInvalidVote)
	}
	if !models.KnownRound(vote.Round) {
		return fmt.Errorf("%w: unknown round %q", ErrInvalidVote, vote.Round)
	}

	ranks := []string{vote.Ranks.Rank1TeamID, vote.Ranks.Rank2TeamID, vote.Ranks.Rank3TeamID}
	seen := make(map[string]bool, len(ranks))
	for _, teamID := range ranks {
		if teamID == "" {
			return fmt.Errorf("%w: all three ranks are required", ErrInvalidVote)
		}
		seen[teamID] = true
	}
	if len(seen) != len(ranks) {
		return fmt.Errorf("%w: ranks must be three distinct teams", ErrInvalidVote)
	}
	return nil
}

// SubmitVote upserts a judge's ranked vote for a round: the existing
// (judge, round) row is overwritten in place, otherwise a new row is
// appended. Each vote is one row, so superseding never leaves duplicates.
//
// The read-scan-write sequence is serialized per (sheet, judge, round)
// through an in-process lock; two concurrent submissions from the same
// judge for the same round cannot both observe "no existing row". Distinct
// judges or rounds proceed in parallel. A second server instance would
// reopen the race; the row store offers no conditional write to close it.
func (r *Repository) SubmitVote(ctx context.Context, sheetID string, vote models.VotePayload) error {
	if err := ValidateVote(vote); err != nil {
		return err
	}

	mu := r.locks.get(sheetID + "\x00" + vote.JudgeID + "\x00" + vote.Round)
	mu.Lock()
	defer mu.Unlock()

	rows, err := r.store.ReadRange(ctx, sheetID, votesRange)
	if err != nil {
		return err
	}

	matchRow := -1 // sheet row number of the existing vote, if any
	for i, row := range rows {
		if sheetstore.Cell(row, 0) == vote.JudgeID && sheetstore.Cell(row, 1) == vote.Round {
			matchRow = i + votesFirstSheetRow
			break
		}
	}

	newRow := []string{
		vote.JudgeID,
		vote.Round,
		vote.Ranks.Rank1TeamID,
		vote.Ranks.Rank2TeamID,
		vote.Ranks.Rank3TeamID,
		r.now().UTC().Format(time.RFC3339),
	}

	if matchRow != -1 {
		rng := fmt.Sprintf("votes_data!A%d:F%d", matchRow, matchRow)
		return r.store.WriteRange(ctx, sheetID, rng, [][]string{newRow})
	}
	return r.store.AppendRows(ctx, sheetID, votesAppendRange, [][]string{newRow})
}

// ResetJudgeVotes deletes every votes_data row belonging to a judge and
// returns how many rows were removed. The physical indices go to the store
// in one request; it deletes high-to-low so the indices stay valid.
func (r *Repository) ResetJudgeVotes(ctx context.Context, sheetID, judgeID string) (int, error) {
	rows, err := r.store.ReadRange(ctx, sheetID, votesRange)
	if err != nil {
		return 0, err
	}

	var indices []int
	for i, row := range rows {
		if sheetstore.Cell(row, 0) == judgeID {
			// data row i sits at physical zero-based row i+1 (header is row 0)
			indices = append(indices, i+1)
		}
	}
	if len(indices) == 0 {
		return 0, nil
	}

	if err := r.store.DeleteRows(ctx, sheetID, votesTab, indices); err != nil {
		return 0, err
	}
	return len(indices), nil
}
