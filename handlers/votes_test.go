package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/testutil"
)

func rankedVote(judgeID, round string) models.VotePayload {
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

func TestSubmitVote(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	handler := NewVotesHandler(index, events)

	tests := []struct {
		name           string
		eventID        string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid vote",
			eventID:        "spring-2026",
			requestBody:    rankedVote("j_abc123", models.RoundDueDiligence),
			expectedStatus: http.StatusOK,
		},
		{
			name:    "duplicate team across ranks",
			eventID: "spring-2026",
			requestBody: models.VotePayload{
				JudgeID: "j_abc123",
				Round:   models.RoundDueDiligence,
				Ranks: models.VoteRanks{
					Rank1TeamID: "t_aaa111",
					Rank2TeamID: "t_aaa111",
					Rank3TeamID: "t_ccc333",
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown round",
			eventID:        "spring-2026",
			requestBody:    rankedVote("j_abc123", "Finals"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "missing judge",
			eventID: "spring-2026",
			requestBody: models.VotePayload{
				Round: models.RoundDueDiligence,
				Ranks: models.VoteRanks{
					Rank1TeamID: "t_aaa111",
					Rank2TeamID: "t_bbb222",
					Rank3TeamID: "t_ccc333",
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown event",
			eventID:        "no-such-event",
			requestBody:    rankedVote("j_abc123", models.RoundDueDiligence),
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/events/"+tt.eventID+"/vote", tt.requestBody, nil)
			req.SetPathValue("eventId", tt.eventID)
			w := httptest.NewRecorder()

			handler.SubmitVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.VoteResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success true")
				}
			}
		})
	}

	// Only the one valid submission should have reached the sheet
	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Errorf("Expected 1 vote row after all cases, got %d", len(rows))
	}
}

func TestSubmitVote_InvalidJSON(t *testing.T) {
	_, index, events := setupTest(t)
	handler := NewVotesHandler(index, events)

	req := httptest.NewRequest("POST", "/events/spring-2026/vote", strings.NewReader("{not json"))
	req.SetPathValue("eventId", "spring-2026")
	w := httptest.NewRecorder()

	handler.SubmitVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSubmitVote_SupersedesEarlierVote(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	handler := NewVotesHandler(index, events)

	submit := func(vote models.VotePayload) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/events/spring-2026/vote", vote, nil)
		req.SetPathValue("eventId", "spring-2026")
		w := httptest.NewRecorder()
		handler.SubmitVote(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	submit(rankedVote("j_abc123", models.RoundDueDiligence))

	revised := rankedVote("j_abc123", models.RoundDueDiligence)
	revised.Ranks = models.VoteRanks{
		Rank1TeamID: "t_ccc333",
		Rank2TeamID: "t_bbb222",
		Rank3TeamID: "t_aaa111",
	}
	submit(revised)

	rows := testutil.VoteRows(t, store, sheetID)
	if len(rows) != 1 {
		t.Fatalf("Expected exactly 1 row after revision, got %d", len(rows))
	}
	if rows[0][2] != "t_ccc333" {
		t.Errorf("Expected revised rank 1 t_ccc333, got %q", rows[0][2])
	}
}

func TestGetHistory(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	testutil.AddTeam(t, store, sheetID, "t_aaa111", "Ash Ventures", true)
	testutil.AddTeam(t, store, sheetID, "t_bbb222", "Birch Capital", true)
	testutil.AddTeam(t, store, sheetID, "t_ccc333", "Cedar Fund", true)
	testutil.AddJudge(t, store, sheetID, "j_abc123", "Morgan Li", true)
	testutil.AddVoteRow(t, store, sheetID, models.VoteRecord{
		JudgeID: "j_abc123", Round: models.RoundDueDiligence,
		Rank1TeamID: "t_aaa111", Rank2TeamID: "t_bbb222", Rank3TeamID: "t_ccc333",
		LastUpdated: "2026-03-14T15:00:00Z",
	})

	handler := NewVotesHandler(index, events)

	req := testutil.MakeRequest("GET", "/vote-history/"+sheetID+"/j_abc123", nil, nil)
	req.SetPathValue("sheetId", sheetID)
	req.SetPathValue("judgeId", "j_abc123")
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.VoteHistoryResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.EventName != "Spring 2026" {
		t.Errorf("Expected event name, got %q", resp.EventName)
	}
	if resp.JudgeName != "Morgan Li" {
		t.Errorf("Expected judge name, got %q", resp.JudgeName)
	}

	dd := resp.RoundVotes[models.RoundDueDiligence]
	if dd[models.RankFirst] == nil || dd[models.RankFirst].TeamName != "Ash Ventures" {
		t.Errorf("Expected Ash Ventures at 1st place, got %v", dd[models.RankFirst])
	}
	for _, label := range models.RankLabels {
		if resp.RoundVotes[models.RoundPartnerMeeting][label] != nil {
			t.Errorf("Expected empty partner meeting cells, got %v", resp.RoundVotes[models.RoundPartnerMeeting][label])
		}
	}
}

func TestGetHistory_UnknownJudge(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	handler := NewVotesHandler(index, events)

	req := testutil.MakeRequest("GET", "/vote-history/"+sheetID+"/j_nobody", nil, nil)
	req.SetPathValue("sheetId", sheetID)
	req.SetPathValue("judgeId", "j_nobody")
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.VoteHistoryResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.JudgeName != "Unknown Judge" {
		t.Errorf("Expected 'Unknown Judge', got %q", resp.JudgeName)
	}
}

func TestGetHistory_MissingSheet(t *testing.T) {
	_, index, events := setupTest(t)
	handler := NewVotesHandler(index, events)

	req := testutil.MakeRequest("GET", "/vote-history/no-such-sheet/j_abc123", nil, nil)
	req.SetPathValue("sheetId", "no-such-sheet")
	req.SetPathValue("judgeId", "j_abc123")
	w := httptest.NewRecorder()

	handler.GetHistory(w, req)

	testutil.AssertStatus(t, w, 500)
}
