package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entbooking "github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	entledger "github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	var ste *booking.StateTransitionError
	switch {
	case errors.Is(err, booking.ErrBlockNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrCapacityExceeded):
		return conflict(c, err.Error())
	case errors.As(err, &ste):
		return conflict(c, ste.Error())
	case errors.Is(err, ledger.ErrDuplicateEntry):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrNotParticipant):
		return forbidden(c)
	case errors.Is(err, booking.ErrProcedureTypeRequired),
		errors.Is(err, booking.ErrInvalidClientPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /bookings
func (h *BookingHandler) Create(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	var body struct {
		BlockID       string  `json:"block_id"`
		ApprenticeID  *string `json:"apprentice_id"`
		ClientID      *string `json:"client_id"`
		ClientName    *string `json:"client_name"`
		ClientEmail   *string `json:"client_email"`
		ClientPhone   *string `json:"client_phone"`
		ProcedureType string  `json:"procedure_type"`
		Notes         *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	blockID, err := uuid.Parse(body.BlockID)
	if err != nil {
		return badRequest(c, "invalid block_id")
	}

	// apprentices book for themselves; admins may book on behalf of one
	apprenticeID := actor.AccountID
	if body.ApprenticeID != nil {
		id, err := uuid.Parse(*body.ApprenticeID)
		if err != nil {
			return badRequest(c, "invalid apprentice_id")
		}
		if id != actor.AccountID && !actor.IsAdmin() {
			return forbidden(c)
		}
		apprenticeID = id
	}

	req := booking.CreateRequest{
		ClientName:    body.ClientName,
		ClientEmail:   body.ClientEmail,
		ClientPhone:   body.ClientPhone,
		ProcedureType: body.ProcedureType,
		Notes:         body.Notes,
	}
	if body.ClientID != nil {
		id, err := uuid.Parse(*body.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}

	b, err := h.svc.Create(c.Context(), blockID, apprenticeID, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, b)
}

// GET /bookings
func (h *BookingHandler) List(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	var q struct {
		BlockID string `query:"block_id"`
		Status  string `query:"status"`
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := booking.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.BlockID != "" {
		id, err := uuid.Parse(q.BlockID)
		if err != nil {
			return badRequest(c, "invalid block_id")
		}
		req.BlockID = &id
	}
	if q.Status != "" {
		status := entbooking.Status(q.Status)
		if err := entbooking.StatusValidator(status); err != nil {
			return badRequest(c, "invalid status")
		}
		req.Status = &status
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

	bookings, err := h.svc.List(c.Context(), actor, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, bookings)
}

// GET /bookings/:id
func (h *BookingHandler) GetByID(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.Get(c.Context(), bookingID, actor)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, b)
}

// PATCH /bookings/:id/confirm
func (h *BookingHandler) Confirm(c fiber.Ctx) error {
	return h.transition(c, h.svc.Confirm)
}

// PATCH /bookings/:id/cancel
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	return h.transition(c, h.svc.Cancel)
}

// PATCH /bookings/:id/no-show
func (h *BookingHandler) MarkNoShow(c fiber.Ctx) error {
	return h.transition(c, h.svc.MarkNoShow)
}

// PATCH /bookings/:id/complete
func (h *BookingHandler) Complete(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	// both fields are optional metadata, an empty body is fine
	var body struct {
		TrainingHours   *float64 `json:"training_hours"`
		ComplexityLevel *string  `json:"complexity_level"`
	}
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	req := booking.CompleteRequest{TrainingHours: body.TrainingHours}
	if body.ComplexityLevel != nil {
		level := entledger.ComplexityLevel(*body.ComplexityLevel)
		if err := entledger.ComplexityLevelValidator(level); err != nil {
			return badRequest(c, "invalid complexity_level")
		}
		req.ComplexityLevel = &level
	}

	b, err := h.svc.Complete(c.Context(), bookingID, actor, req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, b)
}

func (h *BookingHandler) transition(
	c fiber.Ctx,
	op func(ctx context.Context, id uuid.UUID, actor access.Actor) (*repo.Booking, error),
) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid booking id")
	}

	b, err := op(c.Context(), bookingID, actor)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, b)
}
