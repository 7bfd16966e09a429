package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/handler"
	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	eligible fiber.Handler,
) {
	avail := api.Group("/availability", eligible)

	// Bookable listing is the apprentice-facing view of the calendar.
	avail.Get("/bookable", middleware.RequireRole(access.RoleApprentice, access.RoleSupervisor), ah.ListBookable)

	avail.Get("/", middleware.RequireRole(access.RoleSupervisor), ah.List)
	avail.Post("/", middleware.RequireRole(access.RoleSupervisor), ah.Create)
	avail.Delete("/:id", middleware.RequireRole(access.RoleSupervisor), ah.Delete)
}
