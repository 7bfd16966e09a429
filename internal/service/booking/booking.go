// Package booking drives the supervised-booking lifecycle. Seat accounting
// against a block's capacity is the concurrency-critical part: a seat is
// claimed by a conditional update on the block row inside the same
// transaction as the booking insert, so the loser of a race on the last
// seat observes ErrCapacityExceeded instead of overbooking the block.
package booking

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entblock "github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	entbooking "github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	entledger "github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/availability"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ClientID      *uuid.UUID
	ClientName    *string
	ClientEmail   *string
	ClientPhone   *string
	ProcedureType string
	Notes         *string
}

// CompleteRequest carries the ledger metadata the caller supplies at
// completion time. Training hours and complexity have no derivation rule;
// they are recorded as given.
type CompleteRequest struct {
	TrainingHours   *float64
	ComplexityLevel *entledger.ComplexityLevel
}

type ListRequest struct {
	BlockID *uuid.UUID
	Status  *entbooking.Status
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, blockID, apprenticeID uuid.UUID, req CreateRequest) (*repo.Booking, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error)
	MarkNoShow(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error)
	Complete(ctx context.Context, bookingID uuid.UUID, actor access.Actor, req CompleteRequest) (*repo.Booking, error)
	Get(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error)
	List(ctx context.Context, actor access.Actor, req ListRequest) ([]*repo.Booking, error)
}

type bookingService struct {
	db            *repo.Client
	defaultRegion string
}

func New(db *repo.Client, defaultRegion string) Service {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &bookingService{db: db, defaultRegion: defaultRegion}
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

var transitions = map[entbooking.Status][]entbooking.Status{
	entbooking.StatusRequested: {entbooking.StatusConfirmed, entbooking.StatusCancelled},
	entbooking.StatusConfirmed: {entbooking.StatusCompleted, entbooking.StatusCancelled, entbooking.StatusNoShow},
	// completed, cancelled and no_show are terminal
}

func canTransition(from, to entbooking.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *bookingService) Create(ctx context.Context, blockID, apprenticeID uuid.UUID, req CreateRequest) (*repo.Booking, error) {
	if req.ProcedureType == "" {
		return nil, ErrProcedureTypeRequired
	}

	var phone *string
	if req.ClientPhone != nil && *req.ClientPhone != "" {
		normalized, err := s.normalizePhone(*req.ClientPhone)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}

	// Claim a seat: the conditional update only matches while the block is
	// published and under capacity, so concurrent claims are strictly
	// ordered by the row lock the UPDATE takes.
	claimed, err := tx.AvailabilityBlock.Update().
		Where(
			entblock.ID(blockID),
			entblock.IsPublished(true),
			availability.HasFreeSeat(),
		).
		AddActiveBookings(1).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("claim seat: %w", err))
	}
	if claimed == 0 {
		return nil, rollback(tx, s.diagnoseClaimFailure(ctx, tx, blockID))
	}

	block, err := tx.AvailabilityBlock.Get(ctx, blockID)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("load block: %w", err))
	}

	c := tx.Booking.Create().
		SetBlockID(block.ID).
		SetSupervisorID(block.SupervisorID).
		SetApprenticeID(apprenticeID).
		SetProcedureType(req.ProcedureType).
		SetStartTime(block.StartTime).
		SetEndTime(block.EndTime).
		SetNillableClientID(req.ClientID).
		SetNillableClientName(req.ClientName).
		SetNillableClientEmail(req.ClientEmail).
		SetNillableClientPhone(phone).
		SetNillableNotes(req.Notes)

	b, err := c.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create booking: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}
	return b, nil
}

// diagnoseClaimFailure turns a zero-row seat claim into the right error.
func (s *bookingService) diagnoseClaimFailure(ctx context.Context, tx *repo.Tx, blockID uuid.UUID) error {
	block, err := tx.AvailabilityBlock.Query().
		Where(entblock.ID(blockID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("inspect block: %w", err)
	}
	if !block.IsPublished {
		// unpublished blocks are not bookable and not visible
		return ErrBlockNotFound
	}
	return ErrCapacityExceeded
}

func (s *bookingService) normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, s.defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidClientPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func (s *bookingService) Confirm(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.SupervisorID != actor.AccountID {
		return nil, ErrNotParticipant
	}
	if !canTransition(b.Status, entbooking.StatusConfirmed) {
		return nil, &StateTransitionError{From: b.Status, To: entbooking.StatusConfirmed}
	}

	// Guard on the source status so two racing confirms cannot both apply.
	n, err := s.db.Booking.Update().
		Where(entbooking.ID(bookingID), entbooking.StatusEQ(entbooking.StatusRequested)).
		SetStatus(entbooking.StatusConfirmed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	if n == 0 {
		return nil, s.staleTransition(ctx, bookingID, entbooking.StatusConfirmed)
	}
	return s.load(ctx, bookingID)
}

func (s *bookingService) Cancel(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.ApprenticeID != actor.AccountID && b.SupervisorID != actor.AccountID {
		return nil, ErrNotParticipant
	}
	if !canTransition(b.Status, entbooking.StatusCancelled) {
		return nil, &StateTransitionError{From: b.Status, To: entbooking.StatusCancelled}
	}

	return s.leaveActiveSet(ctx, bookingID, b.BlockID,
		[]entbooking.Status{entbooking.StatusRequested, entbooking.StatusConfirmed},
		entbooking.StatusCancelled,
	)
}

func (s *bookingService) MarkNoShow(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.SupervisorID != actor.AccountID {
		return nil, ErrNotParticipant
	}
	if !canTransition(b.Status, entbooking.StatusNoShow) {
		return nil, &StateTransitionError{From: b.Status, To: entbooking.StatusNoShow}
	}

	return s.leaveActiveSet(ctx, bookingID, b.BlockID,
		[]entbooking.Status{entbooking.StatusConfirmed},
		entbooking.StatusNoShow,
	)
}

func (s *bookingService) Complete(ctx context.Context, bookingID uuid.UUID, actor access.Actor, req CompleteRequest) (*repo.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.SupervisorID != actor.AccountID {
		return nil, ErrNotParticipant
	}
	if !canTransition(b.Status, entbooking.StatusCompleted) {
		return nil, &StateTransitionError{From: b.Status, To: entbooking.StatusCompleted}
	}

	now := time.Now().UTC()

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin completion transaction: %w", err)
	}

	n, err := tx.Booking.Update().
		Where(entbooking.ID(bookingID), entbooking.StatusEQ(entbooking.StatusConfirmed)).
		SetStatus(entbooking.StatusCompleted).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("complete booking: %w", err))
	}
	if n == 0 {
		return nil, rollback(tx, s.staleTransition(ctx, bookingID, entbooking.StatusCompleted))
	}

	// Completion and the ledger append are one logical unit: if the append
	// fails, the completion must not be visible.
	_, err = ledger.Append(ctx, tx.Client(), ledger.AppendRequest{
		BookingID:       b.ID,
		SupervisorID:    b.SupervisorID,
		ApprenticeID:    b.ApprenticeID,
		ClientID:        b.ClientID,
		ClientName:      b.ClientName,
		ProcedureType:   b.ProcedureType,
		PerformedAt:     b.StartTime,
		TrainingHours:   req.TrainingHours,
		ComplexityLevel: req.ComplexityLevel,
	})
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := s.releaseSeat(ctx, tx, b.BlockID); err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit completion transaction: %w", err)
	}
	return s.load(ctx, bookingID)
}

// leaveActiveSet moves a booking out of the requested/confirmed set and
// releases its seat on the block in one transaction.
func (s *bookingService) leaveActiveSet(
	ctx context.Context,
	bookingID, blockID uuid.UUID,
	fromStates []entbooking.Status,
	to entbooking.Status,
) (*repo.Booking, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transition transaction: %w", err)
	}

	n, err := tx.Booking.Update().
		Where(entbooking.ID(bookingID), entbooking.StatusIn(fromStates...)).
		SetStatus(to).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update booking status: %w", err))
	}
	if n == 0 {
		return nil, rollback(tx, s.staleTransition(ctx, bookingID, to))
	}

	if err := s.releaseSeat(ctx, tx, blockID); err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transition transaction: %w", err)
	}
	return s.load(ctx, bookingID)
}

func (s *bookingService) releaseSeat(ctx context.Context, tx *repo.Tx, blockID uuid.UUID) error {
	_, err := tx.AvailabilityBlock.Update().
		Where(entblock.ID(blockID), entblock.ActiveBookingsGT(0)).
		AddActiveBookings(-1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("release seat: %w", err)
	}
	return nil
}

// staleTransition reports the booking's status as found after a guarded
// update matched no rows.
func (s *bookingService) staleTransition(ctx context.Context, bookingID uuid.UUID, to entbooking.Status) error {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	return &StateTransitionError{From: b.Status, To: to}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

func (s *bookingService) Get(ctx context.Context, bookingID uuid.UUID, actor access.Actor) (*repo.Booking, error) {
	b, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && b.ApprenticeID != actor.AccountID && b.SupervisorID != actor.AccountID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context, actor access.Actor, req ListRequest) ([]*repo.Booking, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Booking.Query()

	// Non-admin actors only see bookings they participate in.
	switch actor.Role {
	case access.RoleApprentice:
		q = q.Where(entbooking.ApprenticeID(actor.AccountID))
	case access.RoleSupervisor:
		q = q.Where(entbooking.SupervisorID(actor.AccountID))
	}

	if req.BlockID != nil {
		q = q.Where(entbooking.BlockID(*req.BlockID))
	}
	if req.Status != nil {
		q = q.Where(entbooking.StatusEQ(*req.Status))
	}
	if req.From != nil {
		q = q.Where(entbooking.StartTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entbooking.StartTimeLT(*req.To))
	}

	bookings, err := q.
		Order(entbooking.ByStartTime(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) load(ctx context.Context, bookingID uuid.UUID) (*repo.Booking, error) {
	b, err := s.db.Booking.Query().
		Where(entbooking.ID(bookingID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func rollback(tx *repo.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
