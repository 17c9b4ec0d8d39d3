package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/testutil"
)

func TestGetScoreboard_LiveEventHidesScores(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})
	// Scores exist in the sheet but must not leak while the event is live
	store.SetTab(sheetID, "scoreboard", [][]string{
		{"Team", "Score", "", "Team", "Score", "Team", "Score", "Team", "Score"},
		{"Ash Ventures", "70", "", "Ash Ventures", "30", "Ash Ventures", "15", "Ash Ventures", "25"},
	})

	handler := NewScoreboardHandler(index, events)

	req := testutil.MakeRequest("GET", "/scoreboard/spring-2026", nil, nil)
	req.SetPathValue("eventId", "spring-2026")
	w := httptest.NewRecorder()

	handler.GetScoreboard(w, req)

	testutil.AssertStatus(t, w, 200)

	body := w.Body.String()
	if strings.Contains(body, "70") || strings.Contains(body, "overallRankings") {
		t.Errorf("Live scoreboard response leaked score data: %s", body)
	}
}

func TestGetScoreboard_Live(t *testing.T) {
	store, index, events := setupTest(t)
	testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026", Status: models.StatusLive,
	})

	handler := NewScoreboardHandler(index, events)

	req := testutil.MakeRequest("GET", "/scoreboard/spring-2026", nil, nil)
	req.SetPathValue("eventId", "spring-2026")
	w := httptest.NewRecorder()

	handler.GetScoreboard(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.ScoreboardLiveResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Status != models.StatusLive {
		t.Errorf("Expected status Live, got %q", resp.Status)
	}
	if resp.EventName != "Spring 2026" {
		t.Errorf("Expected event name, got %q", resp.EventName)
	}
	if resp.Message == "" {
		t.Error("Expected a waiting message for live events")
	}
}

func TestGetScoreboard_Final(t *testing.T) {
	store, index, events := setupTest(t)
	sheetID := testutil.CreateTestEvent(t, store, models.EventIndexEntry{
		EventID: "spring-2026", EventName: "Spring 2026",
		HostName: "Hawkins University", HostLogoURL: "https://example.com/hawkins.png",
		Status: models.StatusFinal,
	})
	store.SetTab(sheetID, "scoreboard", [][]string{
		{"Team", "Score", "", "Team", "Score", "Team", "Score", "Team", "Score"},
		{"Ash Ventures", "70", "", "Ash Ventures", "30", "Birch Capital", "15", "Ash Ventures", "25"},
		{"Birch Capital", "29", "", "Birch Capital", "8", "Ash Ventures", "15", "Birch Capital", "6"},
	})

	handler := NewScoreboardHandler(index, events)

	req := testutil.MakeRequest("GET", "/scoreboard/spring-2026", nil, nil)
	req.SetPathValue("eventId", "spring-2026")
	w := httptest.NewRecorder()

	handler.GetScoreboard(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.ScoreboardFinalResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Status != models.StatusFinal {
		t.Errorf("Expected status Final, got %q", resp.Status)
	}
	if resp.HostName != "Hawkins University" {
		t.Errorf("Expected host name, got %q", resp.HostName)
	}
	if len(resp.OverallRankings) != 2 {
		t.Fatalf("Expected 2 overall rows, got %d", len(resp.OverallRankings))
	}
	if resp.OverallRankings[0].TeamName != "Ash Ventures" || resp.OverallRankings[0].TotalScore != 70 {
		t.Errorf("Unexpected overall leader: %v", resp.OverallRankings[0])
	}
	if len(resp.DueDiligence) != 2 || len(resp.WrittenDeliverable) != 2 || len(resp.PartnerMeeting) != 2 {
		t.Error("Expected all four category tables to be populated")
	}
}

func TestGetScoreboard_UnknownEvent(t *testing.T) {
	_, index, events := setupTest(t)
	handler := NewScoreboardHandler(index, events)

	req := testutil.MakeRequest("GET", "/scoreboard/no-such-event", nil, nil)
	req.SetPathValue("eventId", "no-such-event")
	w := httptest.NewRecorder()

	handler.GetScoreboard(w, req)

	testutil.AssertStatus(t, w, 404)
}
