package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rudracore/client-portal/internal/models"
)

type DedupDatabase struct {
	KV KVStore
}

// NewDedupStorage creates the idempotency dedup index store.
func NewDedupStorage(kv KVStore) DedupStorage {
	return &DedupDatabase{KV: kv}
}

func dedupKey(token string) string {
	return DedupKeyPrefix + token
}

func (s *DedupDatabase) GetDedupEntry(ctx context.Context, token string) (*models.DedupEntry, error) {
	value, err := s.KV.Get(ctx, dedupKey(token))
	if err != nil {
		return nil, err
	}
	var entry models.DedupEntry
	if err := json.Unmarshal(value, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dedup entry: %w", err)
	}
	return &entry, nil
}

func (s *DedupDatabase) PutDedupEntry(ctx context.Context, entry models.DedupEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal dedup entry: %w", err)
	}
	if err := s.KV.Set(ctx, dedupKey(entry.Token), value); err != nil {
		return fmt.Errorf("failed to put dedup entry: %w", err)
	}
	return nil
}

func (s *DedupDatabase) GetDedupEntries(ctx context.Context) ([]models.DedupEntry, error) {
	values, err := s.KV.GetByPrefix(ctx, DedupKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dedup entries: %w", err)
	}
	entries := make([]models.DedupEntry, 0, len(values))
	for _, value := range values {
		var entry models.DedupEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dedup entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *DedupDatabase) DeleteDedupEntry(ctx context.Context, token string) error {
	return s.KV.Del(ctx, dedupKey(token))
}
