package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
)

type LedgerHandler struct {
	svc ledger.Service
}

func NewLedgerHandler(svc ledger.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func mapLedgerError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrEntryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, ledger.ErrDuplicateEntry):
		return conflict(c, err.Error())
	case errors.Is(err, access.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /ledger/apprentices/:id/entries
func (h *LedgerHandler) ListForApprentice(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	apprenticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid apprentice id")
	}

	var q struct {
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := ledger.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	entries, err := h.svc.ListForApprentice(c.Context(), apprenticeID, actor, req)
	if err != nil {
		return mapLedgerError(c, err)
	}

	return ok(c, entries)
}

// GET /ledger/entries/:id
func (h *LedgerHandler) GetByID(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	entry, err := h.svc.Get(c.Context(), entryID, actor)
	if err != nil {
		return mapLedgerError(c, err)
	}

	return ok(c, entry)
}

// PATCH /ledger/entries/:id/compliance
func (h *LedgerHandler) SetCompliance(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid entry id")
	}

	var body struct {
		Checked *bool `json:"checked"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.Checked == nil {
		return badRequest(c, "checked is required")
	}

	entry, err := h.svc.SetComplianceChecked(c.Context(), entryID, *body.Checked, actor)
	if err != nil {
		return mapLedgerError(c, err)
	}

	return ok(c, entry)
}
