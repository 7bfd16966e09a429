// Package availability publishes and lists supervisor-owned availability
// blocks. Published blocks for one supervisor are mutually exclusive in
// time; the overlap check and the insert run inside a single serializable
// transaction so concurrent publishes cannot slip past each other.
package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entblock "github.com/inkwell-hq/inkwell_backend/internal/repo/availabilityblock"
	entbooking "github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/predicate"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateBlockRequest struct {
	StartTime     time.Time
	EndTime       time.Time
	Capacity      *int
	BufferMinutes *int
	Location      *string
	Notes         *string
	Publish       *bool // nil = publish immediately
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, supervisorID uuid.UUID, req CreateBlockRequest) (*repo.AvailabilityBlock, error)
	List(ctx context.Context, supervisorID uuid.UUID, from, to *time.Time) ([]*repo.AvailabilityBlock, error)
	ListBookable(ctx context.Context, from, to time.Time) ([]*repo.AvailabilityBlock, error)
	Delete(ctx context.Context, blockID uuid.UUID, actor access.Actor) error
}

type availabilityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &availabilityService{db: db}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func (s *availabilityService) Create(ctx context.Context, supervisorID uuid.UUID, req CreateBlockRequest) (*repo.AvailabilityBlock, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.Capacity != nil && *req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if req.BufferMinutes != nil && *req.BufferMinutes < 0 {
		return nil, ErrInvalidBuffer
	}

	publish := req.Publish == nil || *req.Publish

	// Unpublished blocks do not occupy the timeline yet, so they skip the
	// overlap check and the serializable transaction.
	if !publish {
		return s.insert(ctx, s.db, supervisorID, req, false)
	}

	tx, err := s.db.BeginTx(ctx, &entsql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin publish transaction: %w", err)
	}

	overlaps, err := tx.AvailabilityBlock.Query().
		Where(
			entblock.SupervisorID(supervisorID),
			entblock.IsPublished(true),
			entblock.StartTimeLT(req.EndTime),
			entblock.EndTimeGT(req.StartTime),
		).
		Exist(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("check overlap: %w", err))
	}
	if overlaps {
		return nil, rollback(tx, ErrOverlap)
	}

	block, err := s.insert(ctx, tx.Client(), supervisorID, req, true)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		if database.IsSerializationFailure(err) {
			return nil, ErrConcurrentPublish
		}
		return nil, fmt.Errorf("commit publish transaction: %w", err)
	}
	return block, nil
}

func (s *availabilityService) insert(ctx context.Context, db *repo.Client, supervisorID uuid.UUID, req CreateBlockRequest, publish bool) (*repo.AvailabilityBlock, error) {
	c := db.AvailabilityBlock.Create().
		SetSupervisorID(supervisorID).
		SetStartTime(req.StartTime).
		SetEndTime(req.EndTime).
		SetIsPublished(publish)

	if req.Capacity != nil {
		c = c.SetCapacity(*req.Capacity)
	}
	if req.BufferMinutes != nil {
		c = c.SetBufferMinutes(*req.BufferMinutes)
	}
	if req.Location != nil {
		c = c.SetNillableLocation(req.Location)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	block, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create availability block: %w", err)
	}
	return block, nil
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

func (s *availabilityService) List(ctx context.Context, supervisorID uuid.UUID, from, to *time.Time) ([]*repo.AvailabilityBlock, error) {
	q := s.db.AvailabilityBlock.Query().
		Where(entblock.SupervisorID(supervisorID))

	if from != nil {
		q = q.Where(entblock.StartTimeGTE(*from))
	}
	if to != nil {
		q = q.Where(entblock.StartTimeLT(*to))
	}

	blocks, err := q.Order(entblock.ByStartTime()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return blocks, nil
}

// ListBookable returns published blocks intersecting [from, to] that still
// have a free seat.
func (s *availabilityService) ListBookable(ctx context.Context, from, to time.Time) ([]*repo.AvailabilityBlock, error) {
	blocks, err := s.db.AvailabilityBlock.Query().
		Where(
			entblock.IsPublished(true),
			entblock.StartTimeLT(to),
			entblock.EndTimeGT(from),
			HasFreeSeat(),
		).
		Order(entblock.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookable blocks: %w", err)
	}
	return blocks, nil
}

// HasFreeSeat compares the live seat counter against capacity in SQL. The
// booking coordinator reuses it to guard the seat-claim update.
func HasFreeSeat() predicate.AvailabilityBlock {
	return func(s *entsql.Selector) {
		s.Where(entsql.ColumnsLT(
			s.C(entblock.FieldActiveBookings),
			s.C(entblock.FieldCapacity),
		))
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func (s *availabilityService) Delete(ctx context.Context, blockID uuid.UUID, actor access.Actor) error {
	block, err := s.db.AvailabilityBlock.Query().
		Where(entblock.ID(blockID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("get block: %w", err)
	}

	if !actor.IsAdmin() && block.SupervisorID != actor.AccountID {
		return ErrNotOwner
	}

	referenced, err := s.db.Booking.Query().
		Where(entbooking.BlockID(blockID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check block references: %w", err)
	}
	if referenced {
		return ErrBlockInUse
	}

	return s.db.AvailabilityBlock.DeleteOne(block).Exec(ctx)
}

func rollback(tx *repo.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
