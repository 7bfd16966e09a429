package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/handler"
	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	bh *handler.BookingHandler,
	eligible fiber.Handler,
) {
	bookings := api.Group("/bookings", eligible)

	bookings.Get("/", bh.List)
	bookings.Post("/", middleware.RequireRole(access.RoleApprentice), bh.Create)

	b := bookings.Group("/:id")
	b.Get("/", bh.GetByID)
	b.Patch("/confirm", middleware.RequireRole(access.RoleSupervisor), bh.Confirm)
	b.Patch("/cancel", bh.Cancel)
	b.Patch("/no-show", middleware.RequireRole(access.RoleSupervisor), bh.MarkNoShow)
	b.Patch("/complete", middleware.RequireRole(access.RoleSupervisor), bh.Complete)
}
