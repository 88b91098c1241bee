// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates the shared admin secret.

	if err := auth.ValidateAdminSecret(presented, configured); err != nil {
		// 403
	}

The comparison is constant time (hmac.Equal) and an empty configured secret
always fails, so an unset ADMIN_SECRET cannot leave admin endpoints open.
*/
package auth
