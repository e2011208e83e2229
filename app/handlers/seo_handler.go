package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rakhulsr/go-joias/app/helpers"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/unrolled/render"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SEOHandler struct {
	catalog *services.CatalogService
	render  *render.Render
	baseURL string
	now     func() time.Time
}

func NewSEOHandler(catalog *services.CatalogService, r *render.Render, baseURL string) *SEOHandler {
	return &SEOHandler{catalog: catalog, render: r, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap serves GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	categories, products, err := h.catalog.SitemapData(r.Context())
	if err != nil {
		helpers.WriteError(h.render, w, r, err)
		return
	}

	now := h.now().UTC().Format(time.RFC3339)
	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: h.baseURL, LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: h.baseURL + "/produtos", LastMod: now, ChangeFreq: "daily", Priority: "0.8"},
		sitemapURL{Loc: h.baseURL + "/sobre", LastMod: now, ChangeFreq: "monthly", Priority: "0.6"},
		sitemapURL{Loc: h.baseURL + "/contato", LastMod: now, ChangeFreq: "monthly", Priority: "0.6"},
	)
	for _, c := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/categoria/" + c.Slug,
			LastMod:    c.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}
	for _, p := range products {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/produto/" + p.Slug,
			LastMod:    p.UpdatedAt.UTC().Format(time.RFC3339),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	w.Header().Set("Cache-Control", "public, max-age=3600, s-maxage=3600")
	h.render.XML(w, http.StatusOK, set)
}

// Robots serves GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	body := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /admin/
Disallow: /api/

Sitemap: %s/sitemap.xml

Crawl-delay: 1
`, h.baseURL)

	w.Header().Set("Cache-Control", "public, max-age=86400, s-maxage=86400")
	h.render.Text(w, http.StatusOK, body)
}
