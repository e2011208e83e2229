package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-joias/app/configs"
	"github.com/Rakhulsr/go-joias/app/handlers"
	"github.com/Rakhulsr/go-joias/app/handlers/admin"
	"github.com/Rakhulsr/go-joias/app/middlewares"
	"github.com/Rakhulsr/go-joias/app/repositories"
	"github.com/Rakhulsr/go-joias/app/services"
	"github.com/Rakhulsr/go-joias/app/utils/renderer"
	"github.com/Rakhulsr/go-joias/app/utils/sessions"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Options struct {
	Store         services.StoreOptions
	BaseURL       string
	SessionKeys   *configs.SessionKeys
	SecureCookies bool
}

// OptionsFromEnv derives router options from the loaded environment.
func OptionsFromEnv(env configs.ENV) Options {
	store := services.DefaultStoreOptions()
	store.Timeout = env.StoreTimeout
	store.ReadRetries = env.ReadRetries

	return Options{
		Store:         store,
		BaseURL:       env.AppURL,
		SessionKeys:   configs.SessionKeysOrEphemeral(env),
		SecureCookies: env.AppEnv == "production",
	}
}

func NewRouter(db *gorm.DB, opts Options) *mux.Router {
	rnd := renderer.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	catalog := services.NewCatalogService(productRepo, categoryRepo, opts.Store)
	suggestions := services.NewSuggestionService(productRepo, categoryRepo, opts.Store)
	history := sessions.NewCookieSessionStore(opts.SessionKeys.AuthKey, opts.SessionKeys.EncKey, opts.SecureCookies)

	homeHandler := handlers.NewHomeHandler(rnd, catalog)
	productHandler := handlers.NewProductHandler(catalog, rnd)
	categoryHandler := handlers.NewCategoryHandler(catalog, rnd)
	searchHandler := handlers.NewSearchHandler(suggestions, history, rnd)
	seoHandler := handlers.NewSEOHandler(catalog, rnd, opts.BaseURL)
	adminHandler := admin.NewAdminHandler(rnd, catalog)

	router := mux.NewRouter()
	router.Use(middlewares.RequestIDMiddleware, middlewares.LoggingMiddleware, middlewares.RecoverMiddleware(rnd))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	router.HandleFunc("/healthz", homeHandler.Healthz).Methods("GET")
	router.HandleFunc("/sitemap.xml", seoHandler.Sitemap).Methods("GET")
	router.HandleFunc("/robots.txt", seoHandler.Robots).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/home", homeHandler.Home).Methods("GET")

	api.HandleFunc("/products", productHandler.Products).Methods("GET")
	api.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	api.HandleFunc("/products/{id}", productHandler.GetProductByID).Methods("GET")
	api.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods("PUT")
	api.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods("DELETE")

	api.HandleFunc("/categories", categoryHandler.Categories).Methods("GET")
	api.HandleFunc("/categories", adminHandler.CreateCategory).Methods("POST")
	api.HandleFunc("/admin/categories", adminHandler.Categories).Methods("GET")

	api.HandleFunc("/search/suggestions", searchHandler.Suggestions).Methods("GET")
	api.HandleFunc("/search/history", searchHandler.GetHistory).Methods("GET")
	api.HandleFunc("/search/history", searchHandler.AppendHistory).Methods("POST")
	api.HandleFunc("/search/history", searchHandler.ClearHistory).Methods("DELETE")

	return router
}
