package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	catalog *services.CatalogService
	render  *render.Render
}

func NewCategoryHandler(catalog *services.CatalogService, r *render.Render) *CategoryHandler {
	return &CategoryHandler{catalog, r}
}

// Categories serves GET /api/categories as a bare array.
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}
