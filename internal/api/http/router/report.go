package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/handler"
)

func (r *Router) registerReportRoutes(api fiber.Router, rh *handler.ReportHandler, eligible fiber.Handler) {
	reports := api.Group("/reports", eligible)

	reports.Get("/apprentices/:id/procedures", rh.Export)
}
