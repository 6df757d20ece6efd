package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRecordID synthesizes a record identifier as
// <prefix><unix-millis>_<9-char suffix>. Uniqueness is probabilistic,
// there is no collision check against the store.
func NewRecordID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// Timestamp renders a record creation time, ISO-8601 in UTC.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
