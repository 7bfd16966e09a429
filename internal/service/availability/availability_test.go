package availability

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/enttest"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	db, err := stdsql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a single connection keeps concurrent transactions serialized
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(repo.Driver(drv)))
	t.Cleanup(func() { client.Close() })
	return client
}

func day(hour, minute int) time.Time {
	return time.Date(2026, 9, 14, hour, minute, 0, 0, time.UTC)
}

func TestCreateValidation(t *testing.T) {
	svc := New(newTestClient(t))
	supervisor := uuid.New()

	badCapacity := 0
	badBuffer := -5

	tests := []struct {
		name string
		req  CreateBlockRequest
		want error
	}{
		{
			name: "end before start",
			req:  CreateBlockRequest{StartTime: day(11, 0), EndTime: day(10, 0)},
			want: ErrInvalidTimeRange,
		},
		{
			name: "zero length",
			req:  CreateBlockRequest{StartTime: day(10, 0), EndTime: day(10, 0)},
			want: ErrInvalidTimeRange,
		},
		{
			name: "zero capacity",
			req:  CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0), Capacity: &badCapacity},
			want: ErrInvalidCapacity,
		},
		{
			name: "negative buffer",
			req:  CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0), BufferMinutes: &badBuffer},
			want: ErrInvalidBuffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), supervisor, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateOverlap(t *testing.T) {
	svc := New(newTestClient(t))
	ctx := context.Background()
	supervisor := uuid.New()
	other := uuid.New()

	if _, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)}); err != nil {
		t.Fatalf("create base block: %v", err)
	}

	// partial overlap with an existing published block is rejected
	_, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 30), EndTime: day(11, 30)})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("overlapping block: error = %v, want %v", err, ErrOverlap)
	}

	// containment counts as overlap too
	_, err = svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(9, 0), EndTime: day(12, 0)})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("containing block: error = %v, want %v", err, ErrOverlap)
	}

	// touching boundaries do not overlap
	if _, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(11, 0), EndTime: day(12, 0)}); err != nil {
		t.Fatalf("touching block: %v", err)
	}

	// another supervisor's timeline is independent
	if _, err := svc.Create(ctx, other, CreateBlockRequest{StartTime: day(10, 30), EndTime: day(11, 30)}); err != nil {
		t.Fatalf("other supervisor block: %v", err)
	}

	// unpublished drafts skip the overlap check
	draft := false
	if _, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 15), EndTime: day(10, 45), Publish: &draft}); err != nil {
		t.Fatalf("draft block: %v", err)
	}
}

func TestListBookable(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()
	supervisor := uuid.New()

	free, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)})
	if err != nil {
		t.Fatalf("create free block: %v", err)
	}

	full, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(12, 0), EndTime: day(13, 0)})
	if err != nil {
		t.Fatalf("create full block: %v", err)
	}
	if err := db.AvailabilityBlock.UpdateOneID(full.ID).SetActiveBookings(1).Exec(ctx); err != nil {
		t.Fatalf("fill block: %v", err)
	}

	draft := false
	if _, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(14, 0), EndTime: day(15, 0), Publish: &draft}); err != nil {
		t.Fatalf("create draft block: %v", err)
	}

	blocks, err := svc.ListBookable(ctx, day(0, 0), day(23, 59))
	if err != nil {
		t.Fatalf("ListBookable: %v", err)
	}
	if len(blocks) != 1 || blocks[0].ID != free.ID {
		t.Fatalf("ListBookable returned %d blocks, want only the free one", len(blocks))
	}
}

func TestListScopedToSupervisor(t *testing.T) {
	svc := New(newTestClient(t))
	ctx := context.Background()
	mine := uuid.New()
	theirs := uuid.New()

	if _, err := svc.Create(ctx, mine, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, theirs, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	blocks, err := svc.List(ctx, mine, nil, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(blocks) != 1 || blocks[0].SupervisorID != mine {
		t.Fatalf("List returned %d blocks, want 1 owned block", len(blocks))
	}
}

func TestDelete(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()
	supervisor := uuid.New()

	block, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	stranger := access.Actor{AccountID: uuid.New(), Role: access.RoleSupervisor}
	if err := svc.Delete(ctx, block.ID, stranger); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("stranger delete: error = %v, want %v", err, ErrNotOwner)
	}

	owner := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}
	if err := svc.Delete(ctx, block.ID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	if err := svc.Delete(ctx, block.ID, owner); !errors.Is(err, ErrBlockNotFound) {
		t.Fatalf("delete gone block: error = %v, want %v", err, ErrBlockNotFound)
	}
}

func TestDeleteReferencedBlock(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()
	supervisor := uuid.New()

	block, err := svc.Create(ctx, supervisor, CreateBlockRequest{StartTime: day(10, 0), EndTime: day(11, 0)})
	if err != nil {
		t.Fatalf("create block: %v", err)
	}

	_, err = db.Booking.Create().
		SetBlockID(block.ID).
		SetSupervisorID(supervisor).
		SetApprenticeID(uuid.New()).
		SetProcedureType("fine line tattoo").
		SetStartTime(block.StartTime).
		SetEndTime(block.EndTime).
		Save(ctx)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	owner := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}
	if err := svc.Delete(ctx, block.ID, owner); !errors.Is(err, ErrBlockInUse) {
		t.Fatalf("delete referenced block: error = %v, want %v", err, ErrBlockInUse)
	}
}
