package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// fakeCatalogUC implements usecase.CatalogUC with per-method hooks.
type fakeCatalogUC struct {
	listAll  func(ctx context.Context) ([]domain.Product, error)
	listByID func(ctx context.Context, id string) ([]domain.Product, error)
	create   func(ctx context.Context, req *usecase.SaveProductReq) (*domain.Product, error)
	update   func(ctx context.Context, id string, req *usecase.SaveProductReq) ([]domain.Product, error)
	del      func(ctx context.Context, id string) ([]domain.Product, error)
}

func (f *fakeCatalogUC) ListAll(ctx context.Context) ([]domain.Product, error) {
	return f.listAll(ctx)
}

func (f *fakeCatalogUC) ListByID(ctx context.Context, id string) ([]domain.Product, error) {
	return f.listByID(ctx, id)
}

func (f *fakeCatalogUC) Create(ctx context.Context, req *usecase.SaveProductReq) (*domain.Product, error) {
	return f.create(ctx, req)
}

func (f *fakeCatalogUC) Update(ctx context.Context, id string, req *usecase.SaveProductReq) ([]domain.Product, error) {
	return f.update(ctx, id, req)
}

func (f *fakeCatalogUC) Delete(ctx context.Context, id string) ([]domain.Product, error) {
	return f.del(ctx, id)
}

func newTestRouter(uc usecase.CatalogUC) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(uc, nopLogger{}))
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSaveProductReturnsCreatedRecord(t *testing.T) {
	uc := &fakeCatalogUC{
		create: func(_ context.Context, req *usecase.SaveProductReq) (*domain.Product, error) {
			created := req.ToDomain()
			created.ID = "64f000000000000000000001"
			return created, nil
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodPost, "/api/productos/guardar",
		`{"title":"Carcassonne","price":5840,"thumbnail":"http://x/img.webp"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var got domain.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Carcassonne", got.Title)
	assert.Equal(t, float64(5840), got.Price)
	assert.Equal(t, "http://x/img.webp", got.Thumbnail)
}

func TestListProductsEmptyIs404(t *testing.T) {
	uc := &fakeCatalogUC{
		listAll: func(context.Context) ([]domain.Product, error) {
			return []domain.Product{}, nil
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/productos/listar", "")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgNoProducts, resp.Error)
}

func TestListProducts(t *testing.T) {
	uc := &fakeCatalogUC{
		listAll: func(context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "64f000000000000000000001", Title: "Catan", Price: 4200},
				{ID: "64f000000000000000000002", Title: "Azul", Price: 3100},
			}, nil
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/productos/listar", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListProductsStoreFailureIs500(t *testing.T) {
	uc := &fakeCatalogUC{
		listAll: func(context.Context) ([]domain.Product, error) {
			return nil, e.ErrInternalServerError
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/productos/listar", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgListFailed, resp.Error)
}

// A malformed id is collapsed into the same 404 as a missing one.
func TestGetProductNotFound(t *testing.T) {
	uc := &fakeCatalogUC{
		listByID: func(_ context.Context, id string) ([]domain.Product, error) {
			return nil, e.ErrProductNotFound
		},
	}

	for _, id := range []string{"ffffffffffffffffffffffff", "no-es-un-id"} {
		rr := doRequest(t, newTestRouter(uc), http.MethodGet, "/api/productos/listar/"+id, "")

		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, msgProductNotFound, resp.Error)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := &fakeCatalogUC{
		update: func(context.Context, string, *usecase.SaveProductReq) ([]domain.Product, error) {
			return nil, e.ErrProductNotFound
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodPut,
		"/api/productos/actualizar/ffffffffffffffffffffffff",
		`{"title":"Azul","price":1,"thumbnail":""}`)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, msgProductNotFound, resp.Error)
}

func TestUpdateProductReturnsPriorState(t *testing.T) {
	prior := domain.Product{ID: "64f000000000000000000001", Title: "Catan", Price: 4200}
	uc := &fakeCatalogUC{
		update: func(context.Context, string, *usecase.SaveProductReq) ([]domain.Product, error) {
			return []domain.Product{prior}, nil
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodPut,
		"/api/productos/actualizar/64f000000000000000000001",
		`{"title":"Catan Junior","price":3900,"thumbnail":""}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, prior, got[0])
}

func TestDeleteProductReturnsPriorState(t *testing.T) {
	prior := domain.Product{ID: "64f000000000000000000001", Title: "Dixit", Price: 2500}
	uc := &fakeCatalogUC{
		del: func(context.Context, string) ([]domain.Product, error) {
			return []domain.Product{prior}, nil
		},
	}

	rr := doRequest(t, newTestRouter(uc), http.MethodDelete,
		"/api/productos/borrar/64f000000000000000000001", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, prior, got[0])
}
