// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheetstore adapts Google Sheets into a generic row store.

# The RowStore Contract

Everything above this package talks to the RowStore interface, never to the
Google clients directly:

	rows, err := store.ReadRange(ctx, sheetID, "votes_data!A2:F")
	err = store.WriteRange(ctx, sheetID, "votes_data!A5:F5", rows)
	err = store.AppendRows(ctx, sheetID, "votes_data!A:F", rows)
	err = store.BatchWrite(ctx, sheetID, entries)
	err = store.DeleteRows(ctx, sheetID, "votes_data", []int{7, 3})
	id, err := store.CopyStore(ctx, templateID, folderID, "Event: Spring Cup")

Rows are plain string cells. Sheets omits trailing empty cells, so positional
access goes through Cell, which treats short rows as padded with "".

# Error Taxonomy

Two sentinels cover every failure mode:

  - ErrRangeNotFound: the addressed tab does not exist
  - ErrStoreUnavailable: transport, auth, or quota failure

Callers match with errors.Is and map to HTTP statuses at the boundary.

# Retry and Timeouts

GoogleStore wraps every RPC in a per-call timeout and retries transient
failures (HTTP 429/5xx and network errors) up to three times with
exponential backoff. Validation-class API errors are never retried.

# Credentials

GoogleStore authenticates with a service-account JSON file and needs both
the Sheets scope (cell reads/writes) and the Drive scope (template cloning
for event creation).
*/
package sheetstore
