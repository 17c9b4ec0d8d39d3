// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/caseboard/caseboard/cliparse"
	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

// Well-known sheet IDs used by GetTestConfig and the fixtures.
const (
	TestMasterSheetID   = "master-index"
	TestTemplateSheetID = "event-template"
	TestAdminToken      = "test-admin-token"
)

// MasterHeader is the canonical MasterIndex header row.
var MasterHeader = []string{
	"event_id", "event_name", "sheet_id", "event_type",
	"event_date", "host_name", "host_logo_url", "status",
}

// MemStore is an in-memory sheetstore.RowStore for tests: a map of
// spreadsheet ID to tab name to a cell grid (row 0 is the header row).
type MemStore struct {
	mu     sync.Mutex
	sheets map[string]map[string][][]string
	nextID int

	// Err, when set, fails every operation. Simulates an unreachable store.
	Err error

	// LastCopyName and LastCopyFolder record the most recent CopyStore call.
	LastCopyName   string
	LastCopyFolder string
}

func NewMemStore() *MemStore {
	return &MemStore{sheets: make(map[string]map[string][][]string)}
}

// CreateSheet registers a new spreadsheet with the given (empty) tabs and
// returns its generated ID.
func (m *MemStore) CreateSheet(tabs ...string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := fmt.Sprintf("sheet-%d", m.nextID)
	m.createLocked(id, tabs)
	return id
}

// CreateSheetWithID registers a new spreadsheet under a fixed ID.
func (m *MemStore) CreateSheetWithID(id string, tabs ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createLocked(id, tabs)
}

func (m *MemStore) createLocked(id string, tabs []string) {
	doc := make(map[string][][]string, len(tabs))
	for _, tab := range tabs {
		doc[tab] = [][]string{}
	}
	m.sheets[id] = doc
}

// SetTab replaces a tab's full grid, header row included.
func (m *MemStore) SetTab(sheetID, tab string, rows [][]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sheets[sheetID] == nil {
		m.sheets[sheetID] = make(map[string][][]string)
	}
	m.sheets[sheetID][tab] = copyGrid(rows)
}

// Tab returns a copy of a tab's full grid for assertions.
func (m *MemStore) Tab(sheetID, tab string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyGrid(m.sheets[sheetID][tab])
}

// ReadRange implements sheetstore.RowStore.
func (m *MemStore) ReadRange(ctx context.Context, sheetID, rng string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	grid, r, err := m.gridLocked(sheetID, rng)
	if err != nil {
		return nil, err
	}

	first := r.startRow - 1
	last := len(grid) - 1
	if r.endRow > 0 && r.endRow-1 < last {
		last = r.endRow - 1
	}

	out := [][]string{}
	for i := first; i <= last && i < len(grid); i++ {
		cells := []string{}
		for c := r.startCol; c <= r.endCol && c < len(grid[i]); c++ {
			cells = append(cells, grid[i][c])
		}
		// the real store omits trailing empty cells
		for len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		out = append(out, cells)
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

// WriteRange implements sheetstore.RowStore.
func (m *MemStore) WriteRange(ctx context.Context, sheetID, rng string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	grid, r, err := m.gridLocked(sheetID, rng)
	if err != nil {
		return err
	}
	m.sheets[sheetID][r.tab] = writeAt(grid, r.startRow-1, r.startCol, rows)
	return nil
}

// AppendRows implements sheetstore.RowStore.
func (m *MemStore) AppendRows(ctx context.Context, sheetID, rng string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	grid, r, err := m.gridLocked(sheetID, rng)
	if err != nil {
		return err
	}
	start := len(grid)
	for start > 0 && rowEmpty(grid[start-1]) {
		start--
	}
	m.sheets[sheetID][r.tab] = writeAt(grid, start, r.startCol, rows)
	return nil
}

// BatchWrite implements sheetstore.RowStore.
func (m *MemStore) BatchWrite(ctx context.Context, sheetID string, entries []sheetstore.BatchEntry) error {
	for _, e := range entries {
		if err := m.WriteRange(ctx, sheetID, e.Range, e.Rows); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRows implements sheetstore.RowStore.
func (m *MemStore) DeleteRows(ctx context.Context, sheetID, tab string, rowIndices []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	doc, ok := m.sheets[sheetID]
	if !ok {
		return fmt.Errorf("%w: sheet %q", sheetstore.ErrStoreUnavailable, sheetID)
	}
	grid, ok := doc[tab]
	if !ok {
		return fmt.Errorf("%w: tab %q", sheetstore.ErrRangeNotFound, tab)
	}

	sorted := append([]int(nil), rowIndices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	for _, idx := range sorted {
		if idx < 0 || idx >= len(grid) {
			continue
		}
		grid = append(grid[:idx], grid[idx+1:]...)
	}
	doc[tab] = grid
	return nil
}

// CopyStore implements sheetstore.RowStore.
func (m *MemStore) CopyStore(ctx context.Context, templateID, folderID, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	template, ok := m.sheets[templateID]
	if !ok {
		return "", fmt.Errorf("%w: template %q", sheetstore.ErrStoreUnavailable, templateID)
	}
	m.nextID++
	id := fmt.Sprintf("sheet-%d", m.nextID)
	doc := make(map[string][][]string, len(template))
	for tab, grid := range template {
		doc[tab] = copyGrid(grid)
	}
	m.sheets[id] = doc
	m.LastCopyName = name
	m.LastCopyFolder = folderID
	return id, nil
}

func (m *MemStore) gridLocked(sheetID, rng string) ([][]string, a1Range, error) {
	r, err := parseA1(rng)
	if err != nil {
		return nil, a1Range{}, err
	}
	doc, ok := m.sheets[sheetID]
	if !ok {
		return nil, a1Range{}, fmt.Errorf("%w: sheet %q", sheetstore.ErrStoreUnavailable, sheetID)
	}
	grid, ok := doc[r.tab]
	if !ok {
		return nil, a1Range{}, fmt.Errorf("%w: tab %q", sheetstore.ErrRangeNotFound, r.tab)
	}
	return grid, r, nil
}

// a1Range is a parsed A1-notation range. Rows are 1-based; endRow 0 means
// unbounded ("A2:B"). Columns are 0-based inclusive.
type a1Range struct {
	tab      string
	startCol int
	startRow int
	endCol   int
	endRow   int
}

func parseA1(rng string) (a1Range, error) {
	tab, cells, ok := strings.Cut(rng, "!")
	if !ok {
		return a1Range{}, fmt.Errorf("range %q has no tab", rng)
	}
	tab = strings.Trim(tab, "'")

	start, end, hasEnd := strings.Cut(cells, ":")
	if !hasEnd {
		end = start
	}
	startCol, startRow := splitCell(start)
	endCol, endRow := splitCell(end)
	if startRow == 0 {
		startRow = 1
	}
	return a1Range{tab: tab, startCol: startCol, startRow: startRow, endCol: endCol, endRow: endRow}, nil
}

// splitCell parses "D7" into column 3, row 7. A bare column ("D") yields
// row 0.
func splitCell(s string) (int, int) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	col := 0
	for _, c := range s[:i] {
		col = col*26 + int(c-'A'+1)
	}
	col--
	row := 0
	if i < len(s) {
		row, _ = strconv.Atoi(s[i:])
	}
	return col, row
}

func copyGrid(grid [][]string) [][]string {
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

// writeAt overlays rows onto grid starting at (row, col), growing the grid
// as needed, and returns the grid.
func writeAt(grid [][]string, row, col int, rows [][]string) [][]string {
	for i, src := range rows {
		target := row + i
		for len(grid) <= target {
			grid = append(grid, []string{})
		}
		line := grid[target]
		for j, cell := range src {
			for len(line) <= col+j {
				line = append(line, "")
			}
			line[col+j] = cell
		}
		grid[target] = line
	}
	return grid
}

// Fixtures

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            8790,
		MasterSheetID:   TestMasterSheetID,
		AdminToken:      TestAdminToken,
		TemplateSheetID: TestTemplateSheetID,
		DriveFolderID:   "drive-folder-1",
		CredentialsFile: "credentials.json",
		StoreTimeout:    time.Second,
	}
}

// SetupStore creates a MemStore holding an empty MasterIndex under
// TestMasterSheetID and an event sheet template under TestTemplateSheetID.
func SetupStore(t *testing.T) *MemStore {
	t.Helper()

	store := NewMemStore()
	store.CreateSheetWithID(TestMasterSheetID, "MasterIndex")
	store.SetTab(TestMasterSheetID, "MasterIndex", [][]string{MasterHeader})

	store.CreateSheetWithID(TestTemplateSheetID, "teams", "judges", "votes_data", "scoreboard")
	seedEventTabs(store, TestTemplateSheetID)
	return store
}

func seedEventTabs(store *MemStore, sheetID string) {
	store.SetTab(sheetID, "teams", [][]string{{"team_id", "team_name", "photo_url", "is_active"}})
	store.SetTab(sheetID, "judges", [][]string{{"judge_id", "judge_name", "photo_url", "is_active"}})
	store.SetTab(sheetID, "votes_data", [][]string{
		{"judge_id", "round", "rank1_team_id", "rank2_team_id", "rank3_team_id", "last_updated"},
	})
	store.SetTab(sheetID, "scoreboard", [][]string{
		{"Team", "Score", "", "Team", "Score", "Team", "Score", "Team", "Score"},
	})
}

// CreateTestEvent registers an event in the MasterIndex with its own event
// sheet and returns the new sheet's ID.
func CreateTestEvent(t *testing.T, store *MemStore, entry models.EventIndexEntry) string {
	t.Helper()

	sheetID := store.CreateSheet("teams", "judges", "votes_data", "scoreboard")
	seedEventTabs(store, sheetID)
	entry.SheetID = sheetID

	grid := store.Tab(TestMasterSheetID, "MasterIndex")
	grid = append(grid, []string{
		entry.EventID, entry.EventName, entry.SheetID, entry.EventType,
		entry.EventDate, entry.HostName, entry.HostLogoURL, entry.Status,
	})
	store.SetTab(TestMasterSheetID, "MasterIndex", grid)
	return sheetID
}

// AddTeam appends a team row to an event sheet.
func AddTeam(t *testing.T, store *MemStore, sheetID, teamID, name string, active bool) {
	t.Helper()
	addRosterRow(store, sheetID, "teams", teamID, name, active)
}

// AddJudge appends a judge row to an event sheet.
func AddJudge(t *testing.T, store *MemStore, sheetID, judgeID, name string, active bool) {
	t.Helper()
	addRosterRow(store, sheetID, "judges", judgeID, name, active)
}

func addRosterRow(store *MemStore, sheetID, tab, id, name string, active bool) {
	flag := "FALSE"
	if active {
		flag = "TRUE"
	}
	grid := store.Tab(sheetID, tab)
	grid = append(grid, []string{id, name, "https://example.com/" + id + ".png", flag})
	store.SetTab(sheetID, tab, grid)
}

// AddVoteRow appends a raw votes_data row, bypassing the upsert engine.
func AddVoteRow(t *testing.T, store *MemStore, sheetID string, vote models.VoteRecord) {
	t.Helper()
	grid := store.Tab(sheetID, "votes_data")
	grid = append(grid, []string{
		vote.JudgeID, vote.Round,
		vote.Rank1TeamID, vote.Rank2TeamID, vote.Rank3TeamID,
		vote.LastUpdated,
	})
	store.SetTab(sheetID, "votes_data", grid)
}

// VoteRows returns the votes_data rows of an event sheet, header excluded.
func VoteRows(t *testing.T, store *MemStore, sheetID string) [][]string {
	t.Helper()
	grid := store.Tab(sheetID, "votes_data")
	if len(grid) == 0 {
		return nil
	}
	return grid[1:]
}

// HTTP helpers

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
