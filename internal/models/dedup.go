package models

import "time"

// DedupEntry - short-lived index entry keyed by a client idempotency token.
// Maps the token to the record created by the first submission.
type DedupEntry struct {
	Token     string    `json:"token"`
	RecordID  string    `json:"recordId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the entry is past its TTL at the given time.
func (e DedupEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
