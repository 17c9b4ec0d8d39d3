// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const maxRetries = 3

// GoogleStore implements RowStore against the Google Sheets and Drive APIs.
type GoogleStore struct {
	sheets  *sheets.Service
	drive   *drive.Service
	timeout time.Duration
}

// NewGoogleStore builds a store from a service-account credentials file.
// The Drive scope is needed for CopyStore; Sheets alone cannot clone files.
func NewGoogleStore(ctx context.Context, credentialsFile string, timeout time.Duration) (*GoogleStore, error) {
	sheetsSvc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive client: %w", err)
	}

	return &GoogleStore{sheets: sheetsSvc, drive: driveSvc, timeout: timeout}, nil
}

// ReadRange implements RowStore.
func (s *GoogleStore) ReadRange(ctx context.Context, sheetID, rng string) ([][]string, error) {
	var resp *sheets.ValueRange
	err := s.call(ctx, func(callCtx context.Context) error {
		var err error
		resp, err = s.sheets.Spreadsheets.Values.Get(sheetID, rng).Context(callCtx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}
	return toStringRows(resp.Values), nil
}

// WriteRange implements RowStore.
func (s *GoogleStore) WriteRange(ctx context.Context, sheetID, rng string, rows [][]string) error {
	body := &sheets.ValueRange{Values: toCellRows(rows)}
	return s.call(ctx, func(callCtx context.Context) error {
		_, err := s.sheets.Spreadsheets.Values.Update(sheetID, rng, body).
			ValueInputOption("RAW").Context(callCtx).Do()
		return err
	})
}

// AppendRows implements RowStore.
func (s *GoogleStore) AppendRows(ctx context.Context, sheetID, rng string, rows [][]string) error {
	body := &sheets.ValueRange{Values: toCellRows(rows)}
	return s.call(ctx, func(callCtx context.Context) error {
		_, err := s.sheets.Spreadsheets.Values.Append(sheetID, rng, body).
			ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(callCtx).Do()
		return err
	})
}

// BatchWrite implements RowStore.
func (s *GoogleStore) BatchWrite(ctx context.Context, sheetID string, entries []BatchEntry) error {
	data := make([]*sheets.ValueRange, 0, len(entries))
	for _, e := range entries {
		data = append(data, &sheets.ValueRange{Range: e.Range, Values: toCellRows(e.Rows)})
	}
	body := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             data,
	}
	return s.call(ctx, func(callCtx context.Context) error {
		_, err := s.sheets.Spreadsheets.Values.BatchUpdate(sheetID, body).Context(callCtx).Do()
		return err
	})
}

// DeleteRows implements RowStore. The tab name is resolved to its numeric
// sheet ID first; deletions are issued high-to-low in one batch request.
func (s *GoogleStore) DeleteRows(ctx context.Context, sheetID, tab string, rowIndices []int) error {
	if len(rowIndices) == 0 {
		return nil
	}

	gid, err := s.tabID(ctx, sheetID, tab)
	if err != nil {
		return err
	}

	sorted := append([]int(nil), rowIndices...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	requests := make([]*sheets.Request, 0, len(sorted))
	for _, idx := range sorted {
		requests = append(requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    gid,
					Dimension:  "ROWS",
					StartIndex: int64(idx),
					EndIndex:   int64(idx + 1),
				},
			},
		})
	}

	body := &sheets.BatchUpdateSpreadsheetRequest{Requests: requests}
	return s.call(ctx, func(callCtx context.Context) error {
		_, err := s.sheets.Spreadsheets.BatchUpdate(sheetID, body).Context(callCtx).Do()
		return err
	})
}

// CopyStore implements RowStore via the Drive files.copy endpoint.
func (s *GoogleStore) CopyStore(ctx context.Context, templateID, folderID, name string) (string, error) {
	var copied *drive.File
	err := s.call(ctx, func(callCtx context.Context) error {
		var err error
		copied, err = s.drive.Files.Copy(templateID, &drive.File{
			Name:    name,
			Parents: []string{folderID},
		}).Fields("id").Context(callCtx).Do()
		return err
	})
	if err != nil {
		return "", err
	}
	if copied.Id == "" {
		return "", fmt.Errorf("%w: drive copy returned no file id", ErrStoreUnavailable)
	}
	return copied.Id, nil
}

// tabID resolves a tab name to its numeric sheet ID within the spreadsheet.
func (s *GoogleStore) tabID(ctx context.Context, sheetID, tab string) (int64, error) {
	var doc *sheets.Spreadsheet
	err := s.call(ctx, func(callCtx context.Context) error {
		var err error
		doc, err = s.sheets.Spreadsheets.Get(sheetID).
			Fields("sheets.properties").Context(callCtx).Do()
		return err
	})
	if err != nil {
		return 0, err
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == tab {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("%w: tab %q", ErrRangeNotFound, tab)
}

// call runs one RPC under the per-call timeout with bounded retry on
// transient failures, then maps the terminal error into the store taxonomy.
func (s *GoogleStore) call(ctx context.Context, op func(context.Context) error) error {
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	err := backoff.Retry(func() error {
		callCtx := ctx
		if s.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		if err := op(callCtx); err != nil {
			if transient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}, bo)
	if err != nil {
		return classify(err)
	}
	return nil
}

// transient reports whether an error is worth retrying: rate limits, server
// errors, and anything that never produced an API response (network).
func transient(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code >= http.StatusInternalServerError
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// classify maps a terminal API error into the store error taxonomy.
// Sheets reports an unknown tab as a 400 "Unable to parse range".
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "Unable to parse range") {
			return fmt.Errorf("%w: %s", ErrRangeNotFound, gerr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

func toStringRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, 0, len(v))
		for _, cell := range v {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}

func toCellRows(rows [][]string) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, c := range row {
			cells = append(cells, c)
		}
		values = append(values, cells)
	}
	return values
}
