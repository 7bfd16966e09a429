package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/handler"
	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

func (r *Router) registerLedgerRoutes(api fiber.Router, lh *handler.LedgerHandler, eligible fiber.Handler) {
	ledger := api.Group("/ledger", eligible)

	ledger.Get("/apprentices/:id/entries", lh.ListForApprentice)
	ledger.Get("/entries/:id", lh.GetByID)

	// compliance audits are an admin concern
	ledger.Patch("/entries/:id/compliance", middleware.RequireRole(access.RoleAdmin), lh.SetCompliance)
}
