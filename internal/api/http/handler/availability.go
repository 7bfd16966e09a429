package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/availability"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapAvailabilityError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidTimeRange),
		errors.Is(err, availability.ErrInvalidCapacity),
		errors.Is(err, availability.ErrInvalidBuffer):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrOverlap),
		errors.Is(err, availability.ErrConcurrentPublish),
		errors.Is(err, availability.ErrBlockInUse):
		return conflict(c, err.Error())
	case errors.Is(err, availability.ErrBlockNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, availability.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /availability
func (h *AvailabilityHandler) Create(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	var body struct {
		StartTime     time.Time `json:"start_time"`
		EndTime       time.Time `json:"end_time"`
		Capacity      *int      `json:"capacity"`
		BufferMinutes *int      `json:"buffer_minutes"`
		Location      *string   `json:"location"`
		Notes         *string   `json:"notes"`
		Publish       *bool     `json:"publish"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	block, err := h.svc.Create(c.Context(), actor.AccountID, availability.CreateBlockRequest{
		StartTime:     body.StartTime,
		EndTime:       body.EndTime,
		Capacity:      body.Capacity,
		BufferMinutes: body.BufferMinutes,
		Location:      body.Location,
		Notes:         body.Notes,
		Publish:       body.Publish,
	})
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return created(c, block)
}

// GET /availability
func (h *AvailabilityHandler) List(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	var q struct {
		SupervisorID string `query:"supervisor_id"`
		From         string `query:"from"`
		To           string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	supervisorID := actor.AccountID
	if q.SupervisorID != "" {
		id, err := uuid.Parse(q.SupervisorID)
		if err != nil {
			return badRequest(c, "invalid supervisor_id")
		}
		// only admins read another supervisor's calendar
		if id != actor.AccountID && !actor.IsAdmin() {
			return forbidden(c)
		}
		supervisorID = id
	}

	var from, to *time.Time
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			from = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			to = &t
		}
	}

	blocks, err := h.svc.List(c.Context(), supervisorID, from, to)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, blocks)
}

// GET /availability/bookable
func (h *AvailabilityHandler) ListBookable(c fiber.Ctx) error {
	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	from := time.Now()
	to := from.AddDate(0, 0, 14)
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "invalid from")
		}
		from = t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "invalid to")
		}
		to = t
	}

	blocks, err := h.svc.ListBookable(c.Context(), from, to)
	if err != nil {
		return mapAvailabilityError(c, err)
	}

	return ok(c, blocks)
}

// DELETE /availability/:id
func (h *AvailabilityHandler) Delete(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	blockID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid block id")
	}

	if err := h.svc.Delete(c.Context(), blockID, actor); err != nil {
		return mapAvailabilityError(c, err)
	}

	return noContent(c)
}
