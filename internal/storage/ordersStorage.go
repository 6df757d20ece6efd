package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rudracore/client-portal/internal/models"
)

type OrderDatabase struct {
	KV KVStore
}

// NewOrdersStorage creates the order record store.
func NewOrdersStorage(kv KVStore) OrdersStorage {
	return &OrderDatabase{KV: kv}
}

func (s *OrderDatabase) AddOrder(ctx context.Context, order models.Order) error {
	value, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	if err := s.KV.Set(ctx, order.ID, value); err != nil {
		return fmt.Errorf("failed to add order: %w", err)
	}
	return nil
}

func (s *OrderDatabase) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	value, err := s.KV.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := json.Unmarshal(value, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

// GetOrders returns every order record, in store iteration order.
func (s *OrderDatabase) GetOrders(ctx context.Context) ([]models.Order, error) {
	values, err := s.KV.GetByPrefix(ctx, OrderKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	orders := make([]models.Order, 0, len(values))
	for _, value := range values {
		var order models.Order
		if err := json.Unmarshal(value, &order); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
