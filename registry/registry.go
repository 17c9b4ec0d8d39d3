// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/caseboard/caseboard/models"
	"github.com/caseboard/caseboard/sheetstore"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrDuplicateEventID = errors.New("event id already taken")
)

// MasterIndex ranges. Header row is row 1; data starts at row 2.
const (
	headerRange = "MasterIndex!A1:H1"
	dataRange   = "MasterIndex!A2:H"
	idRange     = "MasterIndex!A2:A"
	appendRange = "MasterIndex!A:H"
)

// Repository is the typed view over the MasterIndex sheet, the single
// source of truth for event existence and status.
type Repository struct {
	store   sheetstore.RowStore
	sheetID string
}

func New(store sheetstore.RowStore, masterSheetID string) *Repository {
	return &Repository{store: store, sheetID: masterSheetID}
}

// columns holds header-resolved column positions so a reordered
// MasterIndex never breaks lookups.
type columns struct {
	eventID     int
	eventName   int
	sheetID     int
	eventType   int
	eventDate   int
	hostName    int
	hostLogoURL int
	status      int
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	cols := columns{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{"event_id", &cols.eventID},
		{"event_name", &cols.eventName},
		{"sheet_id", &cols.sheetID},
		{"event_type", &cols.eventType},
		{"event_date", &cols.eventDate},
		{"host_name", &cols.hostName},
		{"host_logo_url", &cols.hostLogoURL},
		{"status", &cols.status},
	} {
		i, ok := idx[want.name]
		if !ok {
			return columns{}, fmt.Errorf("master index is missing the %q column", want.name)
		}
		*want.dst = i
	}
	return cols, nil
}

func entryFromRow(cols columns, row []string) models.EventIndexEntry {
	entry := models.EventIndexEntry{
		EventID:     sheetstore.Cell(row, cols.eventID),
		EventName:   sheetstore.Cell(row, cols.eventName),
		SheetID:     sheetstore.Cell(row, cols.sheetID),
		EventType:   sheetstore.Cell(row, cols.eventType),
		EventDate:   sheetstore.Cell(row, cols.eventDate),
		HostName:    sheetstore.Cell(row, cols.hostName),
		HostLogoURL: sheetstore.Cell(row, cols.hostLogoURL),
		Status:      sheetstore.Cell(row, cols.status),
	}
	if entry.Status == "" {
		entry.Status = models.StatusLive
	}
	return entry
}

// readIndex fetches the header and data ranges concurrently and returns
// resolved columns plus the data rows.
func (r *Repository) readIndex(ctx context.Context) (columns, [][]string, error) {
	var headerRows, dataRows [][]string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.store.ReadRange(gctx, r.sheetID, headerRange)
		if err != nil {
			return err
		}
		headerRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := r.store.ReadRange(gctx, r.sheetID, dataRange)
		if err != nil {
			return err
		}
		dataRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return columns{}, nil, err
	}

	if len(headerRows) == 0 {
		return columns{}, nil, errors.New("master index has no header row")
	}
	cols, err := resolveColumns(headerRows[0])
	if err != nil {
		return columns{}, nil, err
	}
	return cols, dataRows, nil
}

// ListAll returns every event in the MasterIndex, in sheet order.
// Rows without an event_id are skipped.
func (r *Repository) ListAll(ctx context.Context) ([]models.EventIndexEntry, error) {
	cols, rows, err := r.readIndex(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]models.EventIndexEntry, 0, len(rows))
	for _, row := range rows {
		if sheetstore.Cell(row, cols.eventID) == "" {
			continue
		}
		entries = append(entries, entryFromRow(cols, row))
	}
	return entries, nil
}

// FindByEventID returns the event with the given event_id, or ErrEventNotFound.
func (r *Repository) FindByEventID(ctx context.Context, eventID string) (models.EventIndexEntry, error) {
	cols, rows, err := r.readIndex(ctx)
	if err != nil {
		return models.EventIndexEntry{}, err
	}
	for _, row := range rows {
		if sheetstore.Cell(row, cols.eventID) == eventID {
			return entryFromRow(cols, row), nil
		}
	}
	return models.EventIndexEntry{}, fmt.Errorf("%w: %q", ErrEventNotFound, eventID)
}

// FindBySheetID is the reverse lookup: resolve an event by its backing
// sheet ID. Used by the voting and history pages, which carry the sheet ID
// in their URLs instead of the public event ID.
func (r *Repository) FindBySheetID(ctx context.Context, sheetID string) (models.EventIndexEntry, error) {
	cols, rows, err := r.readIndex(ctx)
	if err != nil {
		return models.EventIndexEntry{}, err
	}
	for _, row := range rows {
		if sheetstore.Cell(row, cols.sheetID) == sheetID {
			return entryFromRow(cols, row), nil
		}
	}
	return models.EventIndexEntry{}, fmt.Errorf("%w: sheet %q", ErrEventNotFound, sheetID)
}

// Create appends a new MasterIndex row. The duplicate check and the append
// are two separate store calls; the store offers nothing closer to
// check-and-set, so a concurrent create of the same id can still slip
// through. Callers treat that as an operational cleanup case.
func (r *Repository) Create(ctx context.Context, entry models.EventIndexEntry) error {
	ids, err := r.store.ReadRange(ctx, r.sheetID, idRange)
	if err != nil {
		return err
	}
	for _, row := range ids {
		if sheetstore.Cell(row, 0) == entry.EventID {
			return fmt.Errorf("%w: %q", ErrDuplicateEventID, entry.EventID)
		}
	}

	row := []string{
		entry.EventID,
		entry.EventName,
		entry.SheetID,
		entry.EventType,
		entry.EventDate,
		entry.HostName,
		entry.HostLogoURL,
		entry.Status,
	}
	return r.store.AppendRows(ctx, r.sheetID, appendRange, [][]string{row})
}
