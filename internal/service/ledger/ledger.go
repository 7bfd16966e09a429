// Package ledger maintains the append-only record of completed supervised
// procedures. Entries are never updated or deleted after insertion; the
// single exception is the compliance_checked flag, which an admin may flip
// during an audit.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entledger "github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

type AppendRequest struct {
	BookingID    uuid.UUID
	SupervisorID uuid.UUID
	ApprenticeID uuid.UUID
	ClientID     *uuid.UUID
	ClientName   *string

	ProcedureType string
	PerformedAt   time.Time

	TrainingHours   *float64
	ComplexityLevel *entledger.ComplexityLevel
}

// Append inserts one ledger entry for a completed booking. The unique index
// on booking_id makes the insert idempotent-safe: a second append for the
// same booking fails with ErrDuplicateEntry regardless of who raced whom.
// Callers composing the append into a larger transaction pass tx.Client().
func Append(ctx context.Context, db *repo.Client, req AppendRequest) (*repo.ProcedureLogEntry, error) {
	entry, err := db.ProcedureLogEntry.Create().
		SetBookingID(req.BookingID).
		SetSupervisorID(req.SupervisorID).
		SetApprenticeID(req.ApprenticeID).
		SetNillableClientID(req.ClientID).
		SetNillableClientName(req.ClientName).
		SetProcedureType(req.ProcedureType).
		SetPerformedAt(req.PerformedAt).
		SetNillableTrainingHours(req.TrainingHours).
		SetNillableComplexityLevel(req.ComplexityLevel).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("append ledger entry: %w", err)
	}
	return entry, nil
}

type ListRequest struct {
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

type Service interface {
	Get(ctx context.Context, entryID uuid.UUID, actor access.Actor) (*repo.ProcedureLogEntry, error)
	ListForApprentice(ctx context.Context, apprenticeID uuid.UUID, actor access.Actor, req ListRequest) ([]*repo.ProcedureLogEntry, error)
	SetComplianceChecked(ctx context.Context, entryID uuid.UUID, checked bool, actor access.Actor) (*repo.ProcedureLogEntry, error)
}

type ledgerService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &ledgerService{db: db}
}

func (s *ledgerService) Get(ctx context.Context, entryID uuid.UUID, actor access.Actor) (*repo.ProcedureLogEntry, error) {
	entry, err := s.db.ProcedureLogEntry.Query().
		Where(entledger.ID(entryID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	if !actor.IsAdmin() && entry.ApprenticeID != actor.AccountID && entry.SupervisorID != actor.AccountID {
		return nil, access.ErrAccessDenied
	}
	return entry, nil
}

func (s *ledgerService) ListForApprentice(ctx context.Context, apprenticeID uuid.UUID, actor access.Actor, req ListRequest) ([]*repo.ProcedureLogEntry, error) {
	// Apprentices read their own history; supervisors and admins read any.
	if actor.Role == access.RoleApprentice && actor.AccountID != apprenticeID {
		return nil, access.ErrAccessDenied
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.ProcedureLogEntry.Query().
		Where(entledger.ApprenticeID(apprenticeID))

	if req.From != nil {
		q = q.Where(entledger.PerformedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entledger.PerformedAtLT(*req.To))
	}

	entries, err := q.
		Order(entledger.ByPerformedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return entries, nil
}

func (s *ledgerService) SetComplianceChecked(ctx context.Context, entryID uuid.UUID, checked bool, actor access.Actor) (*repo.ProcedureLogEntry, error) {
	if !actor.IsAdmin() {
		return nil, access.ErrAccessDenied
	}
	entry, err := s.db.ProcedureLogEntry.UpdateOneID(entryID).
		SetComplianceChecked(checked).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("set compliance flag: %w", err)
	}

	slog.Info("compliance flag updated",
		"entry_id", entryID,
		"checked", checked,
		"actor_id", actor.AccountID,
	)
	return entry, nil
}
