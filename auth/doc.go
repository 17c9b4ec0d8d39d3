// Copyright (c) 2026 Caseboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin token validation and roster ID generation.

# Admin Token

The admin surface is gated by a single shared secret from configuration:

	if err := auth.ValidateAdminToken(req.Token, cfg.AdminToken); err != nil {
		// 401
	}

Comparison is constant time. A missing configured secret fails closed.

# Roster IDs

Teams and judges created through the admin form get short prefixed IDs:

	teamID := auth.NewRosterID(auth.TeamIDPrefix)   // "t_3f9a2c"
	judgeID := auth.NewRosterID(auth.JudgeIDPrefix) // "j_b81e07"

IDs only need to be unique within one event's roster tabs.
*/
package auth
