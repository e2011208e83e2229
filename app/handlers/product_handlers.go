package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalog *services.CatalogService
	render  *render.Render
}

func NewProductHandler(catalog *services.CatalogService, r *render.Render) *ProductHandler {
	return &ProductHandler{catalog, r}
}

// Products serves GET /api/products.
func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	filter, err := search.ParseProductFilter(r.URL.Query())
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	page, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	h.render.JSON(w, http.StatusOK, ProductListResponse{
		Products: NewProductResponses(page.Products),
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.Pages,
		},
	})
}

// GetProductByID serves GET /api/products/{id}.
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	h.render.JSON(w, http.StatusOK, NewProductResponse(*product))
}
