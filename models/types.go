// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Event status constants (MasterIndex status column)
const (
	StatusLive  = "Live"
	StatusFinal = "Final"
)

// Round name constants (votes_data round column)
const (
	RoundDueDiligence        = "Due Diligence"
	RoundWrittenDeliverables = "Written Deliverables"
	RoundPartnerMeeting      = "Partner Meeting"
)

// Rounds lists the three judged rounds in competition order.
var Rounds = []string{RoundDueDiligence, RoundWrittenDeliverables, RoundPartnerMeeting}

// KnownRound reports whether round is one of the three judged rounds.
func KnownRound(round string) bool {
	for _, r := range Rounds {
		if r == round {
			return true
		}
	}
	return false
}

// Rank label constants used in the vote history grid
const (
	RankFirst  = "1st Place"
	RankSecond = "2nd Place"
	RankThird  = "3rd Place"
)

// RankLabels lists the three rank labels in order.
var RankLabels = []string{RankFirst, RankSecond, RankThird}

// Domain types

// EventIndexEntry is one row of the MasterIndex sheet.
type EventIndexEntry struct {
	EventID     string `json:"event_id"`
	EventName   string `json:"event_name"`
	SheetID     string `json:"-"` // never expose the backing sheet in event-keyed responses
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	HostName    string `json:"host_name"`
	HostLogoURL string `json:"host_logo_url"`
	Status      string `json:"status"`
}

// Team is one row of an event sheet's teams tab.
type Team struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	PhotoURL string `json:"photo_url"`
	IsActive bool   `json:"is_active"`
}

// Judge is one row of an event sheet's judges tab.
type Judge struct {
	JudgeID   string `json:"judge_id"`
	JudgeName string `json:"judge_name"`
	PhotoURL  string `json:"photo_url"`
	IsActive  bool   `json:"is_active"`
}

// VoteRecord is one row of an event sheet's votes_data tab.
type VoteRecord struct {
	JudgeID     string `json:"judge_id"`
	Round       string `json:"round"`
	Rank1TeamID string `json:"rank1_team_id"`
	Rank2TeamID string `json:"rank2_team_id"`
	Rank3TeamID string `json:"rank3_team_id"`
	LastUpdated string `json:"last_updated"`
}

// Request types

type VoteRanks struct {
	Rank1TeamID string `json:"rank1_team_id"`
	Rank2TeamID string `json:"rank2_team_id"`
	Rank3TeamID string `json:"rank3_team_id"`
}

type VotePayload struct {
	JudgeID string    `json:"judge_id"`
	Round   string    `json:"round"`
	Ranks   VoteRanks `json:"ranks"`
}

// FormTeam is a team submitted through the admin create-event form.
type FormTeam struct {
	TeamName string `json:"team_name"`
	PhotoURL string `json:"photo_url"`
}

// FormJudge is a judge submitted through the admin create-event form.
type FormJudge struct {
	JudgeName string `json:"judge_name"`
	PhotoURL  string `json:"photo_url"`
}

type CreateEventRequest struct {
	Token       string      `json:"token"`
	EventID     string      `json:"event_id"`
	EventName   string      `json:"event_name"`
	EventType   string      `json:"event_type"`
	EventDate   string      `json:"event_date"`
	HostName    string      `json:"host_name"`
	HostLogoURL string      `json:"host_logo_url"`
	Teams       []FormTeam  `json:"teams"`
	Judges      []FormJudge `json:"judges"`
}

// Response types

// EventHost is the nested host block of an event summary.
type EventHost struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// EventSummary is the event-list projection of a MasterIndex row.
// Status is lowercased for the frontend ("live"/"final").
type EventSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Date     string    `json:"date"`
	Host     EventHost `json:"host"`
	Status   string    `json:"status"`
}

type EventsResponse struct {
	Events []EventSummary `json:"events"`
}

// EventData is the voting-page payload: active teams and judges only.
type EventData struct {
	EventName string  `json:"eventName"`
	Teams     []Team  `json:"teams"`
	Judges    []Judge `json:"judges"`
}

type VoteResponse struct {
	Success bool `json:"success"`
}

// HistoryTeam is the team projection shown in the vote history grid.
type HistoryTeam struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	PhotoURL string `json:"photo_url"`
}

// RoundVotes maps round name -> rank label -> team (nil when no vote recorded).
type RoundVotes map[string]map[string]*HistoryTeam

// NewRoundVotes returns a grid with every round/rank cell present and nil.
func NewRoundVotes() RoundVotes {
	grid := make(RoundVotes, len(Rounds))
	for _, round := range Rounds {
		cells := make(map[string]*HistoryTeam, len(RankLabels))
		for _, label := range RankLabels {
			cells[label] = nil
		}
		grid[round] = cells
	}
	return grid
}

type VoteHistoryResponse struct {
	EventName  string     `json:"eventName"`
	JudgeName  string     `json:"judgeName"`
	RoundVotes RoundVotes `json:"roundVotes"`
}

// ScoreboardRow is one pre-ranked entry of a scoreboard category.
type ScoreboardRow struct {
	TeamName   string `json:"teamName"`
	TotalScore int    `json:"totalScore"`
}

// ScoreboardLiveResponse is returned while an event is still in progress.
type ScoreboardLiveResponse struct {
	Status    string `json:"status"`
	EventName string `json:"eventName"`
	Message   string `json:"message"`
}

// ScoreboardFinalResponse carries all four pre-computed ranking tables.
type ScoreboardFinalResponse struct {
	Status             string          `json:"status"`
	EventName          string          `json:"eventName"`
	HostName           string          `json:"hostName"`
	HostLogoURL        string          `json:"hostLogoUrl"`
	OverallRankings    []ScoreboardRow `json:"overallRankings"`
	DueDiligence       []ScoreboardRow `json:"dueDiligence"`
	WrittenDeliverable []ScoreboardRow `json:"writtenDeliverable"`
	PartnerMeeting     []ScoreboardRow `json:"partnerMeeting"`
}

type CreateEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
	SheetID string `json:"sheetId"`
}

type ResetVotesResponse struct {
	Success bool `json:"success"`
	Removed int  `json:"removed"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
