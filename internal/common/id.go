// File: internal/common/id.go
package common

import (
	"github.com/google/uuid"
	"github.com/rs/xid"
)

// NewID returns a time-ordered identifier token. Top-level records (users, and
// therefore representative-authored universities, whose id equals the owner's)
// sort by creation time, so xid's timestamp-prefixed format is used.
func NewID() string {
	return xid.New().String()
}

// NewChildID returns an identifier for subordinate entities (programs,
// campuses, faculties, reviews, replies) where creation order does not matter.
func NewChildID() string {
	return uuid.NewString()
}
