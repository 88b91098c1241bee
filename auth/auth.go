// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidAdminSecret = errors.New("invalid admin secret")

// ValidateAdminSecret compares a presented secret against the configured one
// in constant time. An empty configured secret always fails: a server
// misconfiguration must not leave the admin surface wide open.
func ValidateAdminSecret(presented, configured string) error {
	if configured == "" {
		return ErrInvalidAdminSecret
	}
	if !hmac.Equal([]byte(presented), []byte(configured)) {
		return ErrInvalidAdminSecret
	}
	return nil
}
