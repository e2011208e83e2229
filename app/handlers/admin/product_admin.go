package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/handlers"
	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/gorilla/mux"
)

// CreateProduct serves POST /api/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload services.ProductPayload
	if err := helpers.DecodeJSON(w, r, &payload); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), payload)
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusCreated, handlers.NewProductResponse(*product))
}

// UpdateProduct serves PUT /api/products/{id}. The body replaces the product
// entirely, images and sizes included.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var payload services.ProductPayload
	if err := helpers.DecodeJSON(w, r, &payload); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, payload)
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, handlers.NewProductResponse(*product))
}

// DeleteProduct serves DELETE /api/products/{id}.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, handlers.MessageResponse{Message: "Product deleted successfully"})
}
