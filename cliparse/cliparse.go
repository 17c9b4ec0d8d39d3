package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            int
	MasterSheetID   string
	AdminToken      string
	TemplateSheetID string
	DriveFolderID   string
	CredentialsFile string
	StoreTimeout    time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var timeoutStr string

	fs := flag.NewFlagSet("caseboard", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MasterSheetID, "master", "", "Master index spreadsheet ID")
	fs.StringVar(&cfg.CredentialsFile, "credentials", "", "Service account credentials JSON path")
	fs.StringVar(&timeoutStr, "store-timeout", "", "Per-call store timeout (e.g. 20s)")

	// Admin provisioning (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminToken, "admin-token", "", "Shared admin secret (prefer env)")
	fs.StringVar(&cfg.TemplateSheetID, "template", "", "Event sheet template to clone")
	fs.StringVar(&cfg.DriveFolderID, "folder", "", "Drive folder for cloned event sheets")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8790 // default
		}
	}

	if cfg.MasterSheetID == "" {
		cfg.MasterSheetID = os.Getenv("MASTER_INDEX_SHEET_ID")
	}
	if cfg.MasterSheetID == "" {
		return Config{}, errors.New("master index sheet ID required (use -master or MASTER_INDEX_SHEET_ID env)")
	}

	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}
	if cfg.CredentialsFile == "" {
		return Config{}, errors.New("credentials file required (use -credentials or GOOGLE_CREDENTIALS_FILE env)")
	}

	// Secrets - MUST be provided
	if cfg.AdminToken == "" {
		cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	}
	if cfg.AdminToken == "" {
		return Config{}, errors.New("ADMIN_TOKEN required")
	}

	// Optional: only event provisioning needs these, the voting and
	// scoreboard surfaces run without them.
	if cfg.TemplateSheetID == "" {
		cfg.TemplateSheetID = os.Getenv("EVENT_SHEET_TEMPLATE_ID")
	}
	if cfg.DriveFolderID == "" {
		cfg.DriveFolderID = os.Getenv("GOOGLE_DRIVE_FOLDER_ID")
	}

	if timeoutStr == "" {
		timeoutStr = os.Getenv("STORE_TIMEOUT")
	}
	if timeoutStr == "" {
		cfg.StoreTimeout = 20 * time.Second
	} else {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil || timeout <= 0 {
			return Config{}, errors.New("invalid STORE_TIMEOUT value")
		}
		cfg.StoreTimeout = timeout
	}

	return cfg, nil
}
