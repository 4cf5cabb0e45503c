package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// fakeProductRepo keeps products in insertion order and assigns hex-shaped
// ids, mirroring the store contract: misses and malformed ids both come back
// as empty slices.
type fakeProductRepo struct {
	products []domain.Product
	nextID   int
	failWith error
}

func (f *fakeProductRepo) assignID() string {
	f.nextID++
	return fmt.Sprintf("%024x", f.nextID)
}

func (f *fakeProductRepo) ListAll(context.Context) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) ListByID(_ context.Context, id string) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.products {
		if p.ID == id {
			return []domain.Product{p}, nil
		}
	}
	return []domain.Product{}, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	created := *product
	created.ID = f.assignID()
	f.products = append(f.products, created)
	return &created, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id string, product *domain.Product) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i, p := range f.products {
		if p.ID == id {
			prior := p
			updated := *product
			updated.ID = id
			f.products[i] = updated
			return []domain.Product{prior}, nil
		}
	}
	return []domain.Product{}, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) ([]domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return []domain.Product{p}, nil
		}
	}
	return []domain.Product{}, nil
}

type fakeCache struct {
	list        []domain.Product
	warm        bool
	sets        int
	invalidates int
}

func (f *fakeCache) GetProductList(context.Context) ([]domain.Product, bool) {
	if !f.warm {
		return nil, false
	}
	return f.list, true
}

func (f *fakeCache) SetProductList(_ context.Context, products []domain.Product) error {
	f.list = products
	f.warm = true
	f.sets++
	return nil
}

func (f *fakeCache) InvalidateProductList(context.Context) error {
	f.list = nil
	f.warm = false
	f.invalidates++
	return nil
}

func newCatalogForTest() (*CatalogUseCase, *fakeProductRepo, *fakeCache) {
	repo := &fakeProductRepo{}
	cache := &fakeCache{}
	return NewCatalogUC(repo, cache, nopLogger{}), repo, cache
}

func TestCreateThenListByID(t *testing.T) {
	uc, _, _ := newCatalogForTest()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewSaveProductReq("Carcassonne", 5840, "http://x/img.webp"))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := uc.ListByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, *created, found[0])
}

func TestListByIDNotFound(t *testing.T) {
	uc, _, _ := newCatalogForTest()

	_, err := uc.ListByID(context.Background(), "000000000000000000000000")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestUpdateNotFoundLeavesStateUntouched(t *testing.T) {
	uc, repo, _ := newCatalogForTest()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewSaveProductReq("Catan", 4200, ""))
	require.NoError(t, err)

	_, err = uc.Update(ctx, "ffffffffffffffffffffffff", NewSaveProductReq("Azul", 1, ""))
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	require.Len(t, repo.products, 1)
	assert.Equal(t, *created, repo.products[0])
}

func TestUpdateReturnsPriorState(t *testing.T) {
	uc, _, _ := newCatalogForTest()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewSaveProductReq("Catan", 4200, "http://x/catan.webp"))
	require.NoError(t, err)

	prior, err := uc.Update(ctx, created.ID, NewSaveProductReq("Catan Junior", 3900, ""))
	require.NoError(t, err)
	require.Len(t, prior, 1)
	assert.Equal(t, *created, prior[0])

	found, err := uc.ListByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Catan Junior", found[0].Title)
	assert.Equal(t, float64(3900), found[0].Price)
}

func TestDeleteNotFound(t *testing.T) {
	uc, _, _ := newCatalogForTest()

	_, err := uc.Delete(context.Background(), "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestDeleteReturnsPriorState(t *testing.T) {
	uc, _, _ := newCatalogForTest()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewSaveProductReq("Dixit", 2500, ""))
	require.NoError(t, err)

	prior, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, prior, 1)
	assert.Equal(t, *created, prior[0])

	_, err = uc.ListByID(ctx, created.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListAllServesWarmCache(t *testing.T) {
	uc, repo, cache := newCatalogForTest()

	cached := []domain.Product{{ID: "cacheado", Title: "Splendor", Price: 3000}}
	cache.list = cached
	cache.warm = true
	repo.failWith = fmt.Errorf("store down")

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, products)
}

func TestListAllRefillsCacheOnMiss(t *testing.T) {
	uc, repo, cache := newCatalogForTest()
	repo.products = []domain.Product{{ID: "000000000000000000000001", Title: "Jaipur", Price: 1800}}

	products, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, products, cache.list)
}

func TestMutationsInvalidateCache(t *testing.T) {
	uc, _, cache := newCatalogForTest()
	ctx := context.Background()

	created, err := uc.Create(ctx, NewSaveProductReq("Patchwork", 2100, ""))
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, NewSaveProductReq("Patchwork", 2200, ""))
	require.NoError(t, err)

	_, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, cache.invalidates)
}
