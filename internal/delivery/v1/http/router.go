package http

import (
	"io/fs"
	"net/http"

	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init mounts the REST surface under /api, the rendered views at the root,
// and the live-connection endpoint.
func (r *Router) Init(catalogUC usecase.CatalogUC, live http.Handler) error {
	prHandler := NewProductHandler(catalogUC, r.logger)

	viewHandler, err := NewViewHandler(catalogUC, r.logger)
	if err != nil {
		return err
	}

	r.router.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, prHandler)
	})

	r.router.Get("/", viewHandler.renderForm)
	r.router.Get("/productos/vista", viewHandler.renderProducts)
	r.router.Get("/productos/vista-test", viewHandler.renderTestProducts)

	r.router.Handle("/ws", live)

	public, err := fs.Sub(assetsFS, "public")
	if err != nil {
		return err
	}
	r.router.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.FS(public))))

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return nil
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/productos", func(pr chi.Router) {
		pr.Get("/listar", prHandler.listProducts)
		pr.Get("/listar/{id}", prHandler.getProduct)
		pr.Post("/guardar", prHandler.saveProduct)
		pr.Put("/actualizar/{id}", prHandler.updateProduct)
		pr.Delete("/borrar/{id}", prHandler.deleteProduct)
	})
}
