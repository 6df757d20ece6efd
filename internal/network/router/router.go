package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/rudracore/client-portal/internal/config"
	"github.com/rudracore/client-portal/internal/network/handlers"
	"github.com/rudracore/client-portal/internal/network/middleware"
	"github.com/rudracore/client-portal/internal/services"
	"github.com/rudracore/client-portal/internal/storage"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Projects services.ProjectsService
	Orders   services.OrdersService
	Tickets  services.TicketsService
}

func NewRouter(config config.Config, storage storage.IStorage) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config),
		Projects: services.NewProjects(storage),
		Orders:   services.NewOrders(storage, config.Dedup),
		Tickets:  services.NewTickets(storage),
	}
}

func (router *Router) HandleRouter() chi.Router {
	r := chi.NewRouter()
	r.Route("/"+router.Config.Server.Namespace, func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Get("/health", handlers.HealthHandler())
		r.Post("/register", handlers.RegisterUserHandler(router.Identity))
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(router.Identity))
			r.Post("/projects", handlers.CreateProjectHandler(router.Projects))
			r.Get("/projects/user", handlers.GetUserProjectsHandler(router.Projects))
			r.Get("/projects/all", handlers.GetAllProjectsHandler(router.Identity, router.Projects))
			r.Put("/projects/{id}", handlers.UpdateProjectHandler(router.Identity, router.Projects))
			r.Post("/orders", handlers.CreateOrderHandler(router.Orders))
			r.Get("/orders/user", handlers.GetUserOrdersHandler(router.Orders))
			r.Post("/tickets", handlers.CreateTicketHandler(router.Tickets))
			r.Get("/tickets/user", handlers.GetUserTicketsHandler(router.Tickets))
		})
	})
	return r
}
