package admin

import (
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewAdminHandler(render *render.Render, catalog *services.CatalogService) *AdminHandler {
	return &AdminHandler{
		render:  render,
		catalog: catalog,
	}
}
