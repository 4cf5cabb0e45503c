package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/catalog-live/internal/domain"
	"github.com/DRSN-tech/catalog-live/internal/generator"
	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed public
var assetsFS embed.FS

// defaultTestCount is how many synthetic products the test view renders when
// the cant query parameter is absent.
const defaultTestCount = 10

type productsViewData struct {
	ListaProductos []domain.Product
}

// ViewHandler renders the server-side HTML pages: the entry form and the two
// product listings (stored and synthetic).
type ViewHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
	form      *template.Template
	products  *template.Template
}

func NewViewHandler(catalogUC usecase.CatalogUC, logger logger.Logger) (*ViewHandler, error) {
	form, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/formulario.html")
	if err != nil {
		return nil, err
	}

	products, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/productos.html")
	if err != nil {
		return nil, err
	}

	return &ViewHandler{
		catalogUC: catalogUC,
		logger:    logger,
		form:      form,
		products:  products,
	}, nil
}

func (v *ViewHandler) renderForm(w http.ResponseWriter, r *http.Request) {
	if err := v.form.ExecuteTemplate(w, "layout", nil); err != nil {
		v.logger.Errorf(err, "failed to render form view")
	}
}

func (v *ViewHandler) renderProducts(w http.ResponseWriter, r *http.Request) {
	products, err := v.catalogUC.ListAll(r.Context())
	if err != nil {
		v.logger.Errorf(err, "failed to load products for view")
		http.Error(w, msgListFailed, http.StatusInternalServerError)
		return
	}

	v.render(w, productsViewData{ListaProductos: products})
}

func (v *ViewHandler) renderTestProducts(w http.ResponseWriter, r *http.Request) {
	count := defaultTestCount
	if raw := r.URL.Query().Get("cant"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			count = parsed
		}
	}

	v.render(w, productsViewData{ListaProductos: generator.List(count)})
}

func (v *ViewHandler) render(w http.ResponseWriter, data productsViewData) {
	if err := v.products.ExecuteTemplate(w, "layout", data); err != nil {
		v.logger.Errorf(err, "failed to render products view")
	}
}
