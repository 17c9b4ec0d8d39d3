// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry is the typed repository over the MasterIndex sheet.

# Layout

One row per event, header row at row 1:

	event_id | event_name | sheet_id | event_type | event_date | host_name | host_logo_url | status

Column positions are resolved from the header row by name on every read, so
reordering the sheet's columns does not break lookups.

# Operations

	repo := registry.New(store, masterSheetID)

	events, err := repo.ListAll(ctx)
	event, err := repo.FindByEventID(ctx, "2025-texas")
	event, err := repo.FindBySheetID(ctx, sheetID)   // reverse lookup
	err = repo.Create(ctx, entry)                    // duplicate-checked append

# Errors

	ErrEventNotFound    - no row matches the lookup
	ErrDuplicateEventID - Create found the event_id already present

The duplicate check on Create is read-then-append, not atomic; the row
store has no conditional write. See the vote upsert discussion in
eventstore for the same caveat.
*/
package registry
