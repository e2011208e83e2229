package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/services"
)

// CreateCategory serves POST /api/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload services.CategoryPayload
	if err := helpers.DecodeJSON(w, r, &payload); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), payload)
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, category)
}

// Categories serves GET /api/admin/categories, inactive ones included.
func (h *AdminHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListAllCategories(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}
