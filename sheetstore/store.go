// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheetstore

import (
	"context"
	"errors"
)

var (
	// ErrStoreUnavailable wraps transport or auth failures talking to the row store.
	ErrStoreUnavailable = errors.New("row store unavailable")
	// ErrRangeNotFound means the addressed tab does not exist in the spreadsheet.
	ErrRangeNotFound = errors.New("range not found")
)

// BatchEntry pairs an A1 range with the rows to write there.
type BatchEntry struct {
	Range string
	Rows  [][]string
}

// RowStore is the tabular persistence contract the repositories are built on.
// A "sheet" is one spreadsheet document; ranges are A1 notation scoped to a
// tab, e.g. "votes_data!A2:F". Cells are plain strings; missing trailing
// cells read as empty strings.
type RowStore interface {
	// ReadRange returns the populated rows of the addressed range.
	ReadRange(ctx context.Context, sheetID, rng string) ([][]string, error)

	// WriteRange overwrites exactly the addressed cells.
	WriteRange(ctx context.Context, sheetID, rng string, rows [][]string) error

	// AppendRows adds rows after the last populated row of the range's tab.
	AppendRows(ctx context.Context, sheetID, rng string, rows [][]string) error

	// BatchWrite applies multiple range writes as one request.
	BatchWrite(ctx context.Context, sheetID string, entries []BatchEntry) error

	// DeleteRows removes the given zero-based physical rows from a tab.
	// Indices are applied high-to-low in a single request so earlier
	// deletions never shift later ones.
	DeleteRows(ctx context.Context, sheetID, tab string, rowIndices []int) error

	// CopyStore clones an entire spreadsheet into the destination folder
	// and returns the new spreadsheet ID.
	CopyStore(ctx context.Context, templateID, folderID, name string) (string, error)
}

// Cell returns the column at index i of row, or "" when the row is short.
// Sheets omits trailing empty cells, so positional reads go through here.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
