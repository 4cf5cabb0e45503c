package http

import (
	"errors"
	"net/http"

	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/e"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// Client-facing messages, kept word for word from the original API.
const (
	msgNoProducts      = "No hay productos."
	msgProductNotFound = "No se encontró producto con ese ID."
	msgListFailed      = "Error al buscar documentos."
	msgSaveFailed      = "No se pudo agregar el producto."
	msgUpdateFailed    = "No se pudo editar el producto."
	msgDeleteFailed    = "No se pudo eliminar el producto."
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.ListAll(r.Context())
	if err != nil {
		p.logger.Errorf(err, "failed to list products")
		WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	if len(products) == 0 {
		WriteError(w, http.StatusNotFound, msgNoProducts)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := p.catalogUC.ListByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, msgProductNotFound)
			return
		}

		p.logger.Errorf(err, "failed to get product %s", id)
		WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

func (p *ProductHandler) saveProduct(w http.ResponseWriter, r *http.Request) {
	var req usecase.SaveProductReq
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("malformed product payload: %v", err)
		WriteError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	created, err := p.catalogUC.Create(r.Context(), &req)
	if err != nil {
		p.logger.Errorf(err, "failed to save product")
		WriteError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	WriteSuccess(w, http.StatusOK, created)
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req usecase.SaveProductReq
	if err := decodeJSON(r, &req); err != nil {
		p.logger.Warnf("malformed product payload: %v", err)
		WriteError(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	prior, err := p.catalogUC.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, msgProductNotFound)
			return
		}

		p.logger.Errorf(err, "failed to update product %s", id)
		WriteError(w, http.StatusInternalServerError, msgUpdateFailed)
		return
	}

	WriteSuccess(w, http.StatusOK, prior)
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	prior, err := p.catalogUC.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			WriteError(w, http.StatusNotFound, msgProductNotFound)
			return
		}

		p.logger.Errorf(err, "failed to delete product %s", id)
		WriteError(w, http.StatusInternalServerError, msgDeleteFailed)
		return
	}

	WriteSuccess(w, http.StatusOK, prior)
}
