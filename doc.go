// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Caseboard API server.

Caseboard is the voting and scoreboard backend for business-case
competitions: judges rank three teams per round across three rounds, and a
public scoreboard opens once an event is marked Final. Google Sheets is the
only datastore - one MasterIndex spreadsheet lists events, and each event
owns its own spreadsheet with teams, judges, votes, and scoreboard tabs,
so competition staff can inspect and correct everything in place.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	MASTER_INDEX_SHEET_ID=... GOOGLE_CREDENTIALS_FILE=sa.json ADMIN_TOKEN=... go run .

Or with flags:

	go run . -p 8790 -master <sheet-id> -credentials sa.json -admin-token <secret>

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - MASTER_INDEX_SHEET_ID (-master): MasterIndex spreadsheet ID
  - GOOGLE_CREDENTIALS_FILE (-credentials): service-account JSON path
  - ADMIN_TOKEN (-admin-token): shared secret for the admin surface

Optional settings:

  - PORT (-p): server port (default: 8790)
  - EVENT_SHEET_TEMPLATE_ID (-template): template cloned per event
  - GOOGLE_DRIVE_FOLDER_ID (-folder): destination folder for clones
  - STORE_TIMEOUT (-store-timeout): per-call store timeout (default: 20s)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - sheetstore: generic row-store adapter over Sheets/Drive
  - registry: typed repository over the MasterIndex sheet
  - eventstore: typed repository over per-event sheets (votes, history, scoreboard)
  - handlers: HTTP request handlers (events, votes, scoreboard, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: admin token validation, roster ID generation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
