// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package eventstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/testutil"
)

func testVote(judgeID, round string) models.VotePayload {
	return models.VotePayload{
		JudgeID: judgeID,
		Round:   round,
		Ranks: models.VoteRanks{
			Rank1TeamID: "t_aaa111",
			Rank2TeamID: "t_bbb222",
			Rank3TeamID: "t_ccc333",
		},
	}
}

func TestValidateVote(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(v *models.VotePayload)
		wantErr bool
	}{
		{
			name:   "valid vote",
			mutate: func(v *models.VotePayload) {},
		},
		{
			name:    "missing judge_id",
			mutate:  func(v *models.VotePayload) { v.JudgeID = "" },
			wantErr: true,
		},
		{
			name:    "missing round",
			mutate:  func(v *models.VotePayload) { v.Round = "" },
			wantErr: true,
		},
		{
			name:    "unknown round",
			mutate:  func(v *models.VotePayload) { v.Round = "Semifinals" },
			wantErr: true,
		},
		{
			name:    "missing rank1",
			mutate:  func(v *models.VotePayload) { v.Ranks.Rank1TeamID = "" },
			wantErr: true,
		},
		{
			name:    "missing rank3",
			mutate:  func(v *models.VotePayload) { v.Ranks.Rank3TeamID = "" },
			wantErr: true,
		},
		{
			name:    "same team in two ranks",
			mutate:  func(v *models.VotePayload) { v.Ranks.Rank2TeamID = v.Ranks.Rank1TeamID },
			wantErr: true,
		},
		{
			name: "same team in all three ranks",
			mutate: func(v *models.VotePayload) {
				v.Ranks.Rank2TeamID = v.Ranks.Rank1TeamID
				v.Ranks.Rank3TeamID = v.Ranks.Rank1TeamID
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vote := testVote("j_abc123", models.RoundDueDiligence)
			tt.mutate(&vote)

			err := ValidateVote(vote)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVote) {
					t.Errorf("Expected ErrInvalidVote, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSubmitVote_AppendsNewRow(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	repo := New(store)
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	if err := repo.SubmitVote(context.Background(), sheetID, testVote("j_abc123", models.RoundDueDiligence)); err != nil {
		t.Fatalf("SubmitVote failed: %v", err)
	}

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 vote row, got %d", len(rows))
	}
	want := []string{"j_abc123", models.RoundDueDiligence, "t_aaa111", "t_bbb222", "t_ccc333", "2026-03-14T15:09:26Z"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("Row cell %d: expected %q, got %q", i, cell, rows[0][i])
		}
	}
}

func TestSubmitVote_OverwritesExistingRow(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	repo := New(store)
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	if err := repo.SubmitVote(context.Background(), sheetID, testVote("j_abc123", models.RoundDueDiligence)); err != nil {
		t.Fatalf("First SubmitVote failed: %v", err)
	}

	// Revised vote for the same round: different order, later clock
	now = now.Add(10 * time.Minute)
	revised := models.VotePayload{
		JudgeID: "j_abc123",
		Round:   models.RoundDueDiligence,
		Ranks: models.VoteRanks{
			Rank1TeamID: "t_ccc333",
			Rank2TeamID: "t_aaa111",
			Rank3TeamID: "t_bbb222",
		},
	}
	if err := repo.SubmitVote(context.Background(), sheetID, revised); err != nil {
		t.Fatalf("Second SubmitVote failed: %v", err)
	}

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Fatalf("Expected exactly 1 row after revision, got %d", len(rows))
	}
	if rows[0][2] != "t_ccc333" || rows[0][3] != "t_aaa111" || rows[0][4] != "t_bbb222" {
		t.Errorf("Expected revised ranks, got %v", rows[0])
	}
	if rows[0][5] != "2026-03-14T15:10:00Z" {
		t.Errorf("Expected updated timestamp, got %q", rows[0][5])
	}
}

func TestSubmitVote_DistinctRoundsAndJudgesKeepOwnRows(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	for _, round := range models.Rounds {
		if err := repo.SubmitVote(context.Background(), sheetID, testVote("j_abc123", round)); err != nil {
			t.Fatalf("SubmitVote for round %q failed: %v", round, err)
		}
	}
	if err := repo.SubmitVote(context.Background(), sheetID, testVote("j_def456", models.RoundDueDiligence)); err != nil {
		t.Fatalf("SubmitVote for second judge failed: %v", err)
	}

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows (3 rounds + 1 other judge), got %d", len(rows))
	}
}

func TestSubmitVote_InvalidPayloadWritesNothing(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	vote := testVote("j_abc123", models.RoundDueDiligence)
	vote.Ranks.Rank3TeamID = vote.Ranks.Rank1TeamID

	err := repo.SubmitVote(context.Background(), sheetID, vote)
	if !errors.Is(err, ErrInvalidVote) {
		t.Fatalf("Expected ErrInvalidVote, got %v", err)
	}
	if rows := testutil.VoteRows(t, store, sheetID); len(rows) != 0 {
		t.Errorf("Expected no rows after rejected vote, got %d", len(rows))
	}
}

func TestSubmitVote_ConcurrentSameJudgeSameRound(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	const submissions = 20
	var wg sync.WaitGroup
	errs := make(chan error, submissions)

	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.SubmitVote(context.Background(), sheetID, testVote("j_abc123", models.RoundPartnerMeeting))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent SubmitVote failed: %v", err)
		}
	}

	// Every submission either created or superseded the one row
	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Errorf("Expected exactly 1 row after %d concurrent submissions, got %d", submissions, len(rows))
	}
}

func TestSubmitVote_ConcurrentDistinctJudges(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	const judges = 8
	var wg sync.WaitGroup
	for i := 0; i < judges; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			judgeID := fmt.Sprintf("j_%06d", n)
			if err := repo.SubmitVote(context.Background(), sheetID, testVote(judgeID, models.RoundDueDiligence)); err != nil {
				t.Errorf("SubmitVote for %s failed: %v", judgeID, err)
			}
		}(i)
	}
	wg.Wait()

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != judges {
		t.Errorf("Expected %d rows, got %d", judges, len(rows))
	}
}

func TestSubmitVote_StoreError(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	store.Err = errors.New("store unreachable")
	err := repo.SubmitVote(context.Background(), sheetID, testVote("j_abc123", models.RoundDueDiligence))
	if err == nil {
		t.Fatal("Expected error when store is down")
	}
}

func TestResetJudgeVotes(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	for _, round := range models.Rounds {
		testutil.AddVoteRow(t, store, sheetID, models.VoteRecord{
			JudgeID: "j_abc123", Round: round,
			Rank1TeamID: "t_aaa111", Rank2TeamID: "t_bbb222", Rank3TeamID: "t_ccc333",
			LastUpdated: "2026-03-14T15:00:00Z",
		})
	}
	testutil.AddVoteRow(t, store, sheetID, models.VoteRecord{
		JudgeID: "j_def456", Round: models.RoundDueDiligence,
		Rank1TeamID: "t_bbb222", Rank2TeamID: "t_aaa111", Rank3TeamID: "t_ccc333",
		LastUpdated: "2026-03-14T15:00:00Z",
	})

	removed, err := repo.ResetJudgeVotes(context.Background(), sheetID, "j_abc123")
	if err != nil {
		t.Fatalf("ResetJudgeVotes failed: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 removed rows, got %d", removed)
	}

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 surviving row, got %d", len(rows))
	}
	if rows[0][0] != "j_def456" {
		t.Errorf("Wrong judge's votes removed: surviving row belongs to %q", rows[0][0])
	}
}

func TestResetJudgeVotes_NoVotes(t *testing.T) {
	store := testutil.SetupStore(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	repo := New(store)

	removed, err := repo.ResetJudgeVotes(context.Background(), sheetID, "j_nobody")
	if err != nil {
		t.Fatalf("ResetJudgeVotes failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected 0 removed rows, got %d", removed)
	}
}
