package router

import (
	"github.com/denmor86/shop-admin/internal/config"
	"github.com/denmor86/shop-admin/internal/network/handlers"
	"github.com/denmor86/shop-admin/internal/network/middleware"
	"github.com/denmor86/shop-admin/internal/services"
	"github.com/denmor86/shop-admin/internal/storage"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Orders   services.OrdersService
	Metrics  services.MetricsService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	tracking := services.NewTracking(config.Tracking.TrackingAddr)
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage),
		Orders:   services.NewOrders(storage, tracking),
		Metrics:  services.NewMetrics(storage),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandle(router.Identity))
		})
		// публичный каталог
		r.Get("/categories", handlers.CategoriesHandler(router.Metrics))
		// оформление заказа покупателем
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Post("/orders", handlers.CreateOrderHandler(router.Orders))
		})
		// административный контур
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Get("/orders", handlers.GetOrdersHandler(router.Orders))
			r.Put("/orders/{id}", handlers.UpdateOrderStatusHandler(router.Orders))
			r.Delete("/orders/{id}", handlers.DeleteOrderHandler(router.Orders))
			r.Get("/users", handlers.GetUsersHandler(router.Identity))
			r.Get("/products/count", handlers.ProductCountHandler(router.Metrics))
			r.Get("/dashboard", handlers.DashboardHandler(router.Metrics))
		})
	})
	return r
}
