package ledger

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
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(repo.Driver(drv)))
	t.Cleanup(func() { client.Close() })
	return client
}

func performedAt(day int) time.Time {
	return time.Date(2026, 9, day, 10, 0, 0, 0, time.UTC)
}

func TestAppendDuplicate(t *testing.T) {
	db := newTestClient(t)
	ctx := context.Background()

	req := AppendRequest{
		BookingID:     uuid.New(),
		SupervisorID:  uuid.New(),
		ApprenticeID:  uuid.New(),
		ProcedureType: "microblading",
		PerformedAt:   performedAt(14),
	}

	if _, err := Append(ctx, db, req); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if _, err := Append(ctx, db, req); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("second append: error = %v, want %v", err, ErrDuplicateEntry)
	}

	n, err := db.ProcedureLogEntry.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if n != 1 {
		t.Fatalf("entries = %d, want 1", n)
	}
}

func TestListForApprentice(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()
	apprentice := uuid.New()
	supervisor := uuid.New()

	for day := 14; day <= 16; day++ {
		_, err := Append(ctx, db, AppendRequest{
			BookingID:     uuid.New(),
			SupervisorID:  supervisor,
			ApprenticeID:  apprentice,
			ProcedureType: "fine line tattoo",
			PerformedAt:   performedAt(day),
		})
		if err != nil {
			t.Fatalf("append day %d: %v", day, err)
		}
	}
	// noise from another apprentice
	if _, err := Append(ctx, db, AppendRequest{
		BookingID:     uuid.New(),
		SupervisorID:  supervisor,
		ApprenticeID:  uuid.New(),
		ProcedureType: "fine line tattoo",
		PerformedAt:   performedAt(15),
	}); err != nil {
		t.Fatalf("append noise: %v", err)
	}

	self := access.Actor{AccountID: apprentice, Role: access.RoleApprentice}
	entries, err := svc.ListForApprentice(ctx, apprentice, self, ListRequest{})
	if err != nil {
		t.Fatalf("ListForApprentice: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// newest first
	if !entries[0].PerformedAt.Equal(performedAt(16)) {
		t.Errorf("first entry performed_at = %v, want %v", entries[0].PerformedAt, performedAt(16))
	}

	from := performedAt(15)
	to := performedAt(16)
	entries, err = svc.ListForApprentice(ctx, apprentice, self, ListRequest{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListForApprentice windowed: %v", err)
	}
	if len(entries) != 1 || !entries[0].PerformedAt.Equal(performedAt(15)) {
		t.Fatalf("windowed entries = %d, want the single day-15 entry", len(entries))
	}
}

func TestListForApprenticeScoping(t *testing.T) {
	svc := New(newTestClient(t))
	ctx := context.Background()
	apprentice := uuid.New()

	other := access.Actor{AccountID: uuid.New(), Role: access.RoleApprentice}
	if _, err := svc.ListForApprentice(ctx, apprentice, other, ListRequest{}); !errors.Is(err, access.ErrAccessDenied) {
		t.Fatalf("foreign apprentice list: error = %v, want %v", err, access.ErrAccessDenied)
	}

	supervisor := access.Actor{AccountID: uuid.New(), Role: access.RoleSupervisor}
	if _, err := svc.ListForApprentice(ctx, apprentice, supervisor, ListRequest{}); err != nil {
		t.Fatalf("supervisor list: %v", err)
	}
}

func TestSetComplianceChecked(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	entry, err := Append(ctx, db, AppendRequest{
		BookingID:     uuid.New(),
		SupervisorID:  uuid.New(),
		ApprenticeID:  uuid.New(),
		ProcedureType: "permanent eyeliner",
		PerformedAt:   performedAt(14),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	supervisor := access.Actor{AccountID: uuid.New(), Role: access.RoleSupervisor}
	if _, err := svc.SetComplianceChecked(ctx, entry.ID, true, supervisor); !errors.Is(err, access.ErrAccessDenied) {
		t.Fatalf("supervisor flip: error = %v, want %v", err, access.ErrAccessDenied)
	}

	admin := access.Actor{AccountID: uuid.New(), Role: access.RoleAdmin}
	got, err := svc.SetComplianceChecked(ctx, entry.ID, true, admin)
	if err != nil {
		t.Fatalf("admin flip: %v", err)
	}
	if !got.ComplianceChecked {
		t.Fatalf("compliance_checked not set")
	}

	if _, err := svc.SetComplianceChecked(ctx, uuid.New(), true, admin); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("missing entry: error = %v, want %v", err, ErrEntryNotFound)
	}
}

func TestGetScoping(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()
	apprentice := uuid.New()

	entry, err := Append(ctx, db, AppendRequest{
		BookingID:     uuid.New(),
		SupervisorID:  uuid.New(),
		ApprenticeID:  apprentice,
		ProcedureType: "microblading",
		PerformedAt:   performedAt(14),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	self := access.Actor{AccountID: apprentice, Role: access.RoleApprentice}
	if _, err := svc.Get(ctx, entry.ID, self); err != nil {
		t.Fatalf("own Get: %v", err)
	}

	stranger := access.Actor{AccountID: uuid.New(), Role: access.RoleApprentice}
	if _, err := svc.Get(ctx, entry.ID, stranger); !errors.Is(err, access.ErrAccessDenied) {
		t.Fatalf("foreign Get: error = %v, want %v", err, access.ErrAccessDenied)
	}
}
