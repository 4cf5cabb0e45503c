package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
)

type ProductRepository interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	// ListByID returns an empty slice both when no product matches and when
	// the id is malformed; the store does not distinguish the two.
	ListByID(ctx context.Context, id string) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update and Delete return the prior state of the matched records,
	// empty when nothing matched.
	Update(ctx context.Context, id string, product *domain.Product) ([]domain.Product, error)
	Delete(ctx context.Context, id string) ([]domain.Product, error)
}

type MessageRepository interface {
	ListAll(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
}

// CacheRepository fronts the product list. Implementations swallow and log
// their own failures: a broken cache degrades to the primary store.
type CacheRepository interface {
	GetProductList(ctx context.Context) ([]domain.Product, bool)
	SetProductList(ctx context.Context, products []domain.Product) error
	InvalidateProductList(ctx context.Context) error
}
