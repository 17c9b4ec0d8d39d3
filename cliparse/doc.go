// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8790)
  - MasterSheetID: MasterIndex spreadsheet ID (required)
  - CredentialsFile: Service-account JSON path (required)
  - AdminToken: Shared admin secret (required)
  - TemplateSheetID: Event sheet template to clone (optional)
  - DriveFolderID: Destination folder for cloned sheets (optional)
  - StoreTimeout: Per-call store timeout (default: 20s)

# CLI Flags

	-p             Server port
	-master        Master index spreadsheet ID
	-credentials   Service account credentials JSON path
	-admin-token   Shared admin secret
	-template      Event sheet template ID
	-folder        Drive folder ID
	-store-timeout Per-call store timeout

# Environment Variables

Flags fall back to environment variables:

	PORT                    → -p
	MASTER_INDEX_SHEET_ID   → -master
	GOOGLE_CREDENTIALS_FILE → -credentials
	ADMIN_TOKEN             → -admin-token
	EVENT_SHEET_TEMPLATE_ID → -template
	GOOGLE_DRIVE_FOLDER_ID  → -folder
	STORE_TIMEOUT           → -store-timeout

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing. The template
and folder IDs are optional: only the admin create-event endpoint needs
them, and it reports their absence at request time.
*/
package cliparse
