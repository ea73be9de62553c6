package handlers

import (
	"Marketplace/internal/config"
	"Marketplace/internal/middleware"
	"Marketplace/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// APIPrefix — исходный префикс маршрутов; те же маршруты доступны и от корня.
const APIPrefix = "/marketplace/api"

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	listingService *service.ListingService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging(logger))
	r.Use(middleware.WithAuth(config.AuthSecret))

	listingHandler := NewListingHandler(listingService, logger, config)

	routes := func(r chi.Router) {
		r.Get("/listing/{id}", listingHandler.Get)
		r.Post("/listing/create", listingHandler.Create)
	}
	routes(r)
	r.Route(APIPrefix, routes)

	return &Handler{Router: r}
}
