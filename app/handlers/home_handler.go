package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/models"
	"github.com/Rakhulsr/go-joias/app/search"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/unrolled/render"
	"golang.org/x/sync/errgroup"
)

const shelfSize = 8

type HomeHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewHomeHandler(r *render.Render, catalog *services.CatalogService) *HomeHandler {
	return &HomeHandler{
		render:  r,
		catalog: catalog,
	}
}

type homeResponse struct {
	Categories  []models.Category `json:"categories"`
	Featured    []ProductResponse `json:"featured"`
	Recommended []ProductResponse `json:"recommended"`
}

// Home serves GET /api/home: the category strip plus the featured and
// recommended shelves, newest in-stock products first.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	shelf := func(featured bool) search.ProductFilter {
		f := search.DefaultProductFilter()
		f.Limit = shelfSize
		f.InStockOnly = true
		f.FeaturedOnly = featured
		f.RecommendOnly = !featured
		return f
	}

	var (
		resp        homeResponse
		featured    *services.ProductPage
		recommended *services.ProductPage
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		resp.Categories, err = h.catalog.ListCategories(ctx)
		return err
	})
	g.Go(func() (err error) {
		featured, err = h.catalog.ListProducts(ctx, shelf(true))
		return err
	})
	g.Go(func() (err error) {
		recommended, err = h.catalog.ListProducts(ctx, shelf(false))
		return err
	})
	if err := g.Wait(); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	resp.Featured = NewProductResponses(featured.Products)
	resp.Recommended = NewProductResponses(recommended.Products)
	h.render.JSON(w, http.StatusOK, resp)
}

// Healthz reports 200 when the store answers and 503 otherwise.
func (h *HomeHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Ping(r.Context()); err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
