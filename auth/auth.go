// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidAdminToken = errors.New("invalid admin token")

// ValidateAdminToken checks a caller-supplied token against the configured
// shared secret in constant time. An empty configured secret rejects
// everything rather than letting an unset env var open the admin surface.
func ValidateAdminToken(provided, configured string) error {
	if configured == "" {
		return ErrInvalidAdminToken
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// Roster ID prefixes
const (
	TeamIDPrefix  = "t"
	JudgeIDPrefix = "j"
)

// NewRosterID returns a short prefixed ID for a team or judge row,
// e.g. "t_3f9a2c". Six hex characters of a UUID is plenty for a roster
// of at most a few dozen rows.
func NewRosterID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + "_" + raw[:6]
}
