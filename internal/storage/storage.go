package storage

import (
	"context"
	"errors"

	"github.com/rudracore/client-portal/internal/models"
)

// Record key prefixes. Every record lives in one flat key space and is
// grouped only by its prefix.
const (
	ProjectKeyPrefix = "project_"
	OrderKeyPrefix   = "order_"
	TicketKeyPrefix  = "ticket_"
	DedupKeyPrefix   = "dedup_"
)

var ErrNotFound = errors.New("not found")

// KVStore is the external key-value persistence contract: atomic per-key
// get/set plus a prefix scan. No ordering is guaranteed by GetByPrefix.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

type ProjectsStorage interface {
	AddProject(ctx context.Context, project models.Project) error
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjects(ctx context.Context) ([]models.Project, error)
	SaveProject(ctx context.Context, project models.Project) error
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
}

type TicketsStorage interface {
	AddTicket(ctx context.Context, ticket models.Ticket) error
	GetTickets(ctx context.Context) ([]models.Ticket, error)
}

type DedupStorage interface {
	GetDedupEntry(ctx context.Context, token string) (*models.DedupEntry, error)
	PutDedupEntry(ctx context.Context, entry models.DedupEntry) error
	GetDedupEntries(ctx context.Context) ([]models.DedupEntry, error)
	DeleteDedupEntry(ctx context.Context, token string) error
}

// IStorage aggregates every record store the services need.
type IStorage interface {
	ProjectsStorage
	OrdersStorage
	TicketsStorage
	DedupStorage
}

// Records implements IStorage over a single KVStore.
type Records struct {
	ProjectsStorage
	OrdersStorage
	TicketsStorage
	DedupStorage
}

// NewStorage builds the record stores on top of a key-value store.
func NewStorage(kv KVStore) IStorage {
	return &Records{
		ProjectsStorage: NewProjectsStorage(kv),
		OrdersStorage:   NewOrdersStorage(kv),
		TicketsStorage:  NewTicketsStorage(kv),
		DedupStorage:    NewDedupStorage(kv),
	}
}
