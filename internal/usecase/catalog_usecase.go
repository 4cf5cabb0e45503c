package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
)

// CatalogUseCase implements product CRUD over the document store with a
// read-through cache in front of the full listing.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ListAll returns every product in the catalog, serving from the cache when
// it is warm. An empty catalog is an empty slice, not an error.
func (c *CatalogUseCase) ListAll(ctx context.Context) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListAll"

	if products, ok := c.cacheRepo.GetProductList(ctx); ok {
		return products, nil
	}

	products, err := c.productRepo.ListAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.SetProductList(ctx, products); err != nil {
		c.logger.Warnf("%s: failed to refill product list cache: %v", op, err)
	}

	return products, nil
}

// ListByID returns the matching product as a single-element slice.
// A malformed id and a missing id both report ErrProductNotFound.
func (c *CatalogUseCase) ListByID(ctx context.Context, id string) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListByID"

	products, err := c.productRepo.ListByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(products) == 0 {
		return nil, e.ErrProductNotFound
	}

	return products, nil
}

// Create persists a new product and drops the cached listing.
func (c *CatalogUseCase) Create(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.Create"

	created, err := c.productRepo.Create(ctx, req.ToDomain())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.InvalidateProductList(ctx); err != nil {
		c.logger.Warnf("%s: failed to invalidate product list cache: %v", op, err)
	}

	return created, nil
}

// Update replaces all fields of the matched product and returns its prior
// state, ErrProductNotFound when nothing matched.
func (c *CatalogUseCase) Update(ctx context.Context, id string, req *SaveProductReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.Update"

	prior, err := c.productRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(prior) == 0 {
		return nil, e.ErrProductNotFound
	}

	if err := c.cacheRepo.InvalidateProductList(ctx); err != nil {
		c.logger.Warnf("%s: failed to invalidate product list cache: %v", op, err)
	}

	return prior, nil
}

// Delete removes the matched product and returns its prior state,
// ErrProductNotFound when nothing matched.
func (c *CatalogUseCase) Delete(ctx context.Context, id string) ([]domain.Product, error) {
	const op = "CatalogUseCase.Delete"

	prior, err := c.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(prior) == 0 {
		return nil, e.ErrProductNotFound
	}

	if err := c.cacheRepo.InvalidateProductList(ctx); err != nil {
		c.logger.Warnf("%s: failed to invalidate product list cache: %v", op, err)
	}

	return prior, nil
}
