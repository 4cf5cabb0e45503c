package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
)

type CatalogUC interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListByID(ctx context.Context, id string) ([]domain.Product, error)
	Create(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	Update(ctx context.Context, id string, req *SaveProductReq) ([]domain.Product, error)
	Delete(ctx context.Context, id string) ([]domain.Product, error)
}

type ChatUC interface {
	ListMessages(ctx context.Context) ([]domain.Message, error)
	CreateMessage(ctx context.Context, req *SaveMessageReq) (*domain.Message, error)
}
