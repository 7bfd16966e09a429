package booking

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entbooking "github.com/inkwell-hq/inkwell_backend/internal/repo/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/enttest"
	entledger "github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
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

func newBlock(t *testing.T, db *repo.Client, supervisor uuid.UUID, capacity int) *repo.AvailabilityBlock {
	t.Helper()
	block, err := db.AvailabilityBlock.Create().
		SetSupervisorID(supervisor).
		SetStartTime(time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)).
		SetEndTime(time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)).
		SetCapacity(capacity).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create block: %v", err)
	}
	return block
}

func TestCreateBooking(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	block := newBlock(t, db, supervisor, 2)

	phone := "(650) 253-0000"
	name := "Robin Vane"
	b, err := svc.Create(ctx, block.ID, apprentice, CreateRequest{
		ProcedureType: "fine line tattoo",
		ClientName:    &name,
		ClientPhone:   &phone,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if b.Status != entbooking.StatusRequested {
		t.Errorf("status = %s, want %s", b.Status, entbooking.StatusRequested)
	}
	if b.SupervisorID != supervisor || b.ApprenticeID != apprentice {
		t.Errorf("participants not copied from block")
	}
	if !b.StartTime.Equal(block.StartTime) || !b.EndTime.Equal(block.EndTime) {
		t.Errorf("times not copied from block")
	}
	if b.ClientPhone == nil || *b.ClientPhone != "+16502530000" {
		t.Errorf("phone = %v, want +16502530000", b.ClientPhone)
	}

	got, err := db.AvailabilityBlock.Get(ctx, block.ID)
	if err != nil {
		t.Fatalf("reload block: %v", err)
	}
	if got.ActiveBookings != 1 {
		t.Errorf("active bookings = %d, want 1", got.ActiveBookings)
	}
}

func TestCreateBookingErrors(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	block := newBlock(t, db, supervisor, 1)

	draft, err := db.AvailabilityBlock.Create().
		SetSupervisorID(supervisor).
		SetStartTime(time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)).
		SetEndTime(time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)).
		SetIsPublished(false).
		Save(ctx)
	if err != nil {
		t.Fatalf("create draft block: %v", err)
	}

	badPhone := "not a phone"

	tests := []struct {
		name    string
		blockID uuid.UUID
		req     CreateRequest
		want    error
	}{
		{
			name:    "missing procedure type",
			blockID: block.ID,
			req:     CreateRequest{},
			want:    ErrProcedureTypeRequired,
		},
		{
			name:    "unknown block",
			blockID: uuid.New(),
			req:     CreateRequest{ProcedureType: "microblading"},
			want:    ErrBlockNotFound,
		},
		{
			name:    "unpublished block",
			blockID: draft.ID,
			req:     CreateRequest{ProcedureType: "microblading"},
			want:    ErrBlockNotFound,
		},
		{
			name:    "invalid phone",
			blockID: block.ID,
			req:     CreateRequest{ProcedureType: "microblading", ClientPhone: &badPhone},
			want:    ErrInvalidClientPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.blockID, apprentice, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConcurrentSeatClaims(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	supervisor := uuid.New()
	block := newBlock(t, db, supervisor, 3)

	const claims = 8
	var wg sync.WaitGroup
	errs := make([]error, claims)

	for i := 0; i < claims; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), block.ID, uuid.New(), CreateRequest{
				ProcedureType: "fine line tattoo",
			})
		}(i)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrCapacityExceeded):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 3 || full != claims-3 {
		t.Fatalf("got %d successes and %d capacity errors, want 3 and %d", ok, full, claims-3)
	}

	got, err := db.AvailabilityBlock.Get(context.Background(), block.ID)
	if err != nil {
		t.Fatalf("reload block: %v", err)
	}
	if got.ActiveBookings != 3 {
		t.Fatalf("active bookings = %d, want 3", got.ActiveBookings)
	}

	n, err := db.Booking.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	if n != 3 {
		t.Fatalf("booking count = %d, want 3", n)
	}
}

func TestLifecycleCompletion(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	block := newBlock(t, db, supervisor, 1)

	clientName := "Robin Vane"
	b, err := svc.Create(ctx, block.ID, apprentice, CreateRequest{
		ProcedureType: "microblading",
		ClientName:    &clientName,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	supActor := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}

	b, err = svc.Confirm(ctx, b.ID, supActor)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if b.Status != entbooking.StatusConfirmed {
		t.Fatalf("status after confirm = %s", b.Status)
	}

	hours := 2.5
	level := entledger.ComplexityLevelIntermediate
	b, err = svc.Complete(ctx, b.ID, supActor, CompleteRequest{
		TrainingHours:   &hours,
		ComplexityLevel: &level,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if b.Status != entbooking.StatusCompleted {
		t.Fatalf("status after complete = %s", b.Status)
	}
	if b.CompletedAt == nil {
		t.Fatalf("completed_at not set")
	}

	entry, err := db.ProcedureLogEntry.Query().
		Where(entledger.BookingID(b.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("load ledger entry: %v", err)
	}
	if entry.SupervisorID != supervisor || entry.ApprenticeID != apprentice {
		t.Errorf("ledger participants do not match booking")
	}
	if entry.ProcedureType != "microblading" {
		t.Errorf("ledger procedure = %q", entry.ProcedureType)
	}
	if !entry.PerformedAt.Equal(b.StartTime) {
		t.Errorf("performed_at = %v, want block start %v", entry.PerformedAt, b.StartTime)
	}
	if entry.TrainingHours == nil || *entry.TrainingHours != hours {
		t.Errorf("training hours = %v, want %v", entry.TrainingHours, hours)
	}
	if entry.ClientName == nil || *entry.ClientName != clientName {
		t.Errorf("client name not carried into ledger")
	}
	if entry.ComplianceChecked {
		t.Errorf("new ledger entry must start unchecked")
	}

	// completion frees the seat
	gotBlock, err := db.AvailabilityBlock.Get(ctx, block.ID)
	if err != nil {
		t.Fatalf("reload block: %v", err)
	}
	if gotBlock.ActiveBookings != 0 {
		t.Errorf("active bookings = %d, want 0", gotBlock.ActiveBookings)
	}
}

func TestIllegalTransitions(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	supActor := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}

	mk := func(status entbooking.Status) uuid.UUID {
		t.Helper()
		block := newBlock(t, db, supervisor, 10)
		b, err := svc.Create(ctx, block.ID, apprentice, CreateRequest{ProcedureType: "tattoo touch-up"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if status != entbooking.StatusRequested {
			if err := db.Booking.UpdateOneID(b.ID).SetStatus(status).Exec(ctx); err != nil {
				t.Fatalf("force status: %v", err)
			}
		}
		return b.ID
	}

	tests := []struct {
		name   string
		from   entbooking.Status
		act    func(id uuid.UUID) error
		wantTo entbooking.Status
	}{
		{
			name:   "complete a requested booking",
			from:   entbooking.StatusRequested,
			act:    func(id uuid.UUID) error { _, err := svc.Complete(ctx, id, supActor, CompleteRequest{}); return err },
			wantTo: entbooking.StatusCompleted,
		},
		{
			name:   "confirm a completed booking",
			from:   entbooking.StatusCompleted,
			act:    func(id uuid.UUID) error { _, err := svc.Confirm(ctx, id, supActor); return err },
			wantTo: entbooking.StatusConfirmed,
		},
		{
			name:   "cancel a completed booking",
			from:   entbooking.StatusCompleted,
			act:    func(id uuid.UUID) error { _, err := svc.Cancel(ctx, id, supActor); return err },
			wantTo: entbooking.StatusCancelled,
		},
		{
			name:   "no-show a requested booking",
			from:   entbooking.StatusRequested,
			act:    func(id uuid.UUID) error { _, err := svc.MarkNoShow(ctx, id, supActor); return err },
			wantTo: entbooking.StatusNoShow,
		},
		{
			name:   "confirm a cancelled booking",
			from:   entbooking.StatusCancelled,
			act:    func(id uuid.UUID) error { _, err := svc.Confirm(ctx, id, supActor); return err },
			wantTo: entbooking.StatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.act(mk(tt.from))
			var ste *StateTransitionError
			if !errors.As(err, &ste) {
				t.Fatalf("error = %v, want StateTransitionError", err)
			}
			if ste.From != tt.from || ste.To != tt.wantTo {
				t.Fatalf("transition error %s -> %s, want %s -> %s", ste.From, ste.To, tt.from, tt.wantTo)
			}
		})
	}
}

func TestDoubleCompleteKeepsOneLedgerEntry(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	block := newBlock(t, db, supervisor, 1)
	supActor := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}

	b, err := svc.Create(ctx, block.ID, uuid.New(), CreateRequest{ProcedureType: "scalp micropigmentation"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Confirm(ctx, b.ID, supActor); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if _, err := svc.Complete(ctx, b.ID, supActor, CompleteRequest{}); err != nil {
		t.Fatalf("first Complete: %v", err)
	}

	_, err = svc.Complete(ctx, b.ID, supActor, CompleteRequest{})
	var ste *StateTransitionError
	if !errors.As(err, &ste) {
		t.Fatalf("second Complete error = %v, want StateTransitionError", err)
	}
	if ste.From != entbooking.StatusCompleted {
		t.Fatalf("second Complete reported from = %s", ste.From)
	}

	n, err := db.ProcedureLogEntry.Query().Where(entledger.BookingID(b.ID)).Count(ctx)
	if err != nil {
		t.Fatalf("count ledger entries: %v", err)
	}
	if n != 1 {
		t.Fatalf("ledger entries = %d, want exactly 1", n)
	}
}

func TestCancelReleasesSeat(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	block := newBlock(t, db, supervisor, 1)

	b, err := svc.Create(ctx, block.ID, apprentice, CreateRequest{ProcedureType: "tattoo removal session"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// the apprentice can cancel their own booking
	appActor := access.Actor{AccountID: apprentice, Role: access.RoleApprentice}
	if _, err := svc.Cancel(ctx, b.ID, appActor); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	got, err := db.AvailabilityBlock.Get(ctx, block.ID)
	if err != nil {
		t.Fatalf("reload block: %v", err)
	}
	if got.ActiveBookings != 0 {
		t.Fatalf("active bookings = %d, want 0 after cancel", got.ActiveBookings)
	}

	// the freed seat is claimable again
	if _, err := svc.Create(ctx, block.ID, uuid.New(), CreateRequest{ProcedureType: "tattoo removal session"}); err != nil {
		t.Fatalf("rebook freed seat: %v", err)
	}
}

func TestMarkNoShow(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	apprentice := uuid.New()
	block := newBlock(t, db, supervisor, 1)
	supActor := access.Actor{AccountID: supervisor, Role: access.RoleSupervisor}

	b, err := svc.Create(ctx, block.ID, apprentice, CreateRequest{ProcedureType: "permanent eyeliner"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Confirm(ctx, b.ID, supActor); err != nil {
		t.Fatalf("Confirm: %v", err)
	}

	// only the supervising artist or an admin records a no-show
	appActor := access.Actor{AccountID: apprentice, Role: access.RoleApprentice}
	if _, err := svc.MarkNoShow(ctx, b.ID, appActor); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("apprentice no-show: error = %v, want %v", err, ErrNotParticipant)
	}

	b, err = svc.MarkNoShow(ctx, b.ID, supActor)
	if err != nil {
		t.Fatalf("MarkNoShow: %v", err)
	}
	if b.Status != entbooking.StatusNoShow {
		t.Fatalf("status = %s, want %s", b.Status, entbooking.StatusNoShow)
	}

	// a no-show leaves no ledger trace
	n, err := db.ProcedureLogEntry.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count ledger entries: %v", err)
	}
	if n != 0 {
		t.Fatalf("ledger entries = %d, want 0", n)
	}
}

func TestTransitionAuthorization(t *testing.T) {
	db := newTestClient(t)
	svc := New(db, "US")
	ctx := context.Background()
	supervisor := uuid.New()
	block := newBlock(t, db, supervisor, 1)

	b, err := svc.Create(ctx, block.ID, uuid.New(), CreateRequest{ProcedureType: "cover-up consult"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	other := access.Actor{AccountID: uuid.New(), Role: access.RoleSupervisor}
	if _, err := svc.Confirm(ctx, b.ID, other); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("foreign supervisor confirm: error = %v, want %v", err, ErrNotParticipant)
	}

	admin := access.Actor{AccountID: uuid.New(), Role: access.RoleAdmin}
	if _, err := svc.Confirm(ctx, b.ID, admin); err != nil {
		t.Fatalf("admin confirm: %v", err)
	}

	if _, err := svc.Get(ctx, b.ID, other); !errors.Is(err, ErrNotParticipant) {
		t.Fatalf("foreign Get: error = %v, want %v", err, ErrNotParticipant)
	}
}
