package handler

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrUnsupportedFormat):
		return badRequest(c, err.Error())
	case errors.Is(err, access.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /reports/apprentices/:id/procedures
func (h *ReportHandler) Export(c fiber.Ctx) error {
	actor, hasActor := middleware.ActorFromFiber(c)
	if !hasActor {
		return unauthorized(c)
	}

	apprenticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid apprentice id")
	}

	var q struct {
		From         string `query:"from"`
		To           string `query:"to"`
		SupervisorID string `query:"supervisor_id"`
		Format       string `query:"format"`
	}
	_ = c.Bind().Query(&q)

	req := report.ExportRequest{Format: report.Format(q.Format)}
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
	if q.SupervisorID != "" {
		id, err := uuid.Parse(q.SupervisorID)
		if err != nil {
			return badRequest(c, "invalid supervisor id")
		}
		req.SupervisorID = &id
	}

	rows, err := h.svc.Export(c.Context(), apprenticeID, actor, req)
	if err != nil {
		return mapReportError(c, err)
	}

	if req.Format == report.FormatCSV {
		var buf bytes.Buffer
		if err := h.svc.WriteCSV(&buf, rows); err != nil {
			return internalError(c)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="procedures-%s.csv"`, apprenticeID))
		return c.Send(buf.Bytes())
	}

	return ok(c, rows)
}
