package services

import (
	"context"
	"errors"
	"time"

	"github.com/rudracore/client-portal/internal/config"
	"github.com/rudracore/client-portal/internal/logger"
	"github.com/rudracore/client-portal/internal/models"
	"github.com/rudracore/client-portal/internal/storage"
)

type OrdersService interface {
	CreateOrder(ctx context.Context, identity models.Identity, request models.OrderRequest, idempotencyToken string) (*models.Order, error)
	GetUserOrders(ctx context.Context, identity models.Identity) ([]models.Order, error)
	SweepDedup(ctx context.Context, now time.Time) (int, error)
}

type Orders struct {
	Storage  storage.IStorage
	DedupTTL time.Duration
}

// NewOrders creates the order service.
func NewOrders(storage storage.IStorage, cfg config.DedupConfig) OrdersService {
	return &Orders{Storage: storage, DedupTTL: cfg.TTL}
}

// CreateOrder persists a new order. Without an idempotency token every
// submission creates a fresh record, double submits included. With a token
// a repeat submission inside the TTL returns the original record. The
// index is scoped per caller, a token reused by another user never
// resolves to a foreign record.
func (s *Orders) CreateOrder(ctx context.Context, identity models.Identity, request models.OrderRequest, idempotencyToken string) (*models.Order, error) {
	scopedToken := ""
	if idempotencyToken != "" {
		scopedToken = dedupToken(identity, idempotencyToken)
		if order, err := s.findDuplicate(ctx, scopedToken); err != nil {
			return nil, err
		} else if order != nil {
			logger.Info("Duplicate submission collapsed", scopedToken, order.ID)
			return order, nil
		}
	}

	order := models.Order{
		ID:              NewRecordID(storage.OrderKeyPrefix),
		UserID:          identity.UserID,
		ClientEmail:     identity.Email,
		ClientName:      identity.Name,
		ServiceID:       request.ServiceID,
		ServiceName:     request.ServiceName,
		Price:           request.Price,
		CustomNotes:     request.CustomNotes,
		LifetimeUpdates: request.LifetimeUpdates,
		PaymentStatus:   models.PaymentStatusPaid, // asserted, not verified
		Progress:        0,
		Status:          models.OrderStatusPending,
		CreatedAt:       Timestamp(time.Now()),
	}

	if err := s.Storage.AddOrder(ctx, order); err != nil {
		logger.Error("Failed to add order", err)
		return nil, err
	}

	if scopedToken != "" {
		now := time.Now()
		entry := models.DedupEntry{
			Token:     scopedToken,
			RecordID:  order.ID,
			CreatedAt: now,
			ExpiresAt: now.Add(s.DedupTTL),
		}
		// the order exists either way, a failed index write only costs dedup
		if err := s.Storage.PutDedupEntry(ctx, entry); err != nil {
			logger.Warn("Failed to put dedup entry", scopedToken, err)
		}
	}

	return &order, nil
}

// dedupToken prefixes the client token with the caller's user id so two
// users sharing a token never collide in the index.
func dedupToken(identity models.Identity, token string) string {
	return identity.UserID + "_" + token
}

// findDuplicate resolves a live dedup entry to its original order.
func (s *Orders) findDuplicate(ctx context.Context, token string) (*models.Order, error) {
	entry, err := s.Storage.GetDedupEntry(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if entry.Expired(time.Now()) {
		return nil, nil
	}
	order, err := s.Storage.GetOrder(ctx, entry.RecordID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

// GetUserOrders returns the caller's orders only.
func (s *Orders) GetUserOrders(ctx context.Context, identity models.Identity) ([]models.Order, error) {
	all, err := s.Storage.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(all))
	for _, order := range all {
		if order.UserID == identity.UserID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// SweepDedup drops expired dedup entries, returning how many were removed.
func (s *Orders) SweepDedup(ctx context.Context, now time.Time) (int, error) {
	entries, err := s.Storage.GetDedupEntries(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, entry := range entries {
		if !entry.Expired(now) {
			continue
		}
		if err := s.Storage.DeleteDedupEntry(ctx, entry.Token); err != nil {
			logger.Warn("Failed to delete dedup entry", entry.Token, err)
			continue
		}
		removed++
	}
	return removed, nil
}
