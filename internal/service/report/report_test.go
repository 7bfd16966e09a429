package report

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/inkwell-hq/inkwell_backend/internal/directory"
	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	"github.com/inkwell-hq/inkwell_backend/internal/repo/enttest"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
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

type fakeDirectory struct {
	accounts map[uuid.UUID]*directory.Account
	clients  map[uuid.UUID]*directory.Client
	calls    int
}

func (f *fakeDirectory) Account(_ context.Context, id uuid.UUID) (*directory.Account, error) {
	f.calls++
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, directory.ErrNotFound
}

func (f *fakeDirectory) Client(_ context.Context, id uuid.UUID) (*directory.Client, error) {
	f.calls++
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, directory.ErrNotFound
}

func TestExport(t *testing.T) {
	db := newTestClient(t)
	ctx := context.Background()

	supervisor := uuid.New()
	apprentice := uuid.New()
	clientID := uuid.New()

	dir := &fakeDirectory{
		accounts: map[uuid.UUID]*directory.Account{
			supervisor: {ID: supervisor, DisplayName: "Mara Quill", LicenseNumber: "TAT-4471"},
			apprentice: {ID: apprentice, DisplayName: "Ezra Holt"},
		},
		clients: map[uuid.UUID]*directory.Client{
			clientID: {ID: clientID, DisplayName: "Robin Vane"},
		},
	}
	svc := New(db, dir)

	walkIn := "Walk-in Client"
	hours := 1.5
	entries := []ledger.AppendRequest{
		{
			BookingID:     uuid.New(),
			SupervisorID:  supervisor,
			ApprenticeID:  apprentice,
			ClientID:      &clientID,
			ProcedureType: "microblading",
			PerformedAt:   time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
			TrainingHours: &hours,
		},
		{
			BookingID:     uuid.New(),
			SupervisorID:  supervisor,
			ApprenticeID:  apprentice,
			ClientName:    &walkIn,
			ProcedureType: "fine line tattoo",
			PerformedAt:   time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, req := range entries {
		if _, err := ledger.Append(ctx, db, req); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	self := access.Actor{AccountID: apprentice, Role: access.RoleApprentice}
	rows, err := svc.Export(ctx, apprentice, self, ExportRequest{Format: FormatJSON})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	// newest first
	first, second := rows[0], rows[1]
	if !first.PerformedAt.After(second.PerformedAt) {
		t.Errorf("rows not ordered newest first")
	}

	if first.SupervisorName != "Mara Quill" || first.SupervisorLicense != "TAT-4471" {
		t.Errorf("supervisor not resolved: %+v", first)
	}
	if first.ApprenticeName != "Ezra Holt" {
		t.Errorf("apprentice not resolved: %+v", first)
	}
	if first.ClientName != walkIn {
		t.Errorf("client name = %q, want captured fallback", first.ClientName)
	}
	if second.ClientName != "Robin Vane" {
		t.Errorf("client name = %q, want directory name", second.ClientName)
	}
	if second.TrainingHours == nil || *second.TrainingHours != hours {
		t.Errorf("training hours = %v, want %v", second.TrainingHours, hours)
	}

	// two accounts and one client, each resolved once
	if dir.calls != 3 {
		t.Errorf("directory calls = %d, want 3", dir.calls)
	}

	otherSup := uuid.New()
	filtered, err := svc.Export(ctx, apprentice, self, ExportRequest{SupervisorID: &otherSup})
	if err != nil {
		t.Fatalf("filtered Export: %v", err)
	}
	if len(filtered) != 0 {
		t.Errorf("filtered rows = %d, want 0", len(filtered))
	}

	// the window is inclusive at both ends
	to := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	windowed, err := svc.Export(ctx, apprentice, self, ExportRequest{To: &to})
	if err != nil {
		t.Fatalf("windowed Export: %v", err)
	}
	if len(windowed) != 1 || !windowed[0].PerformedAt.Equal(to) {
		t.Errorf("windowed rows = %d, want the single entry at the bound", len(windowed))
	}
}

func TestExportScoping(t *testing.T) {
	svc := New(newTestClient(t), &fakeDirectory{})
	ctx := context.Background()
	apprentice := uuid.New()

	other := access.Actor{AccountID: uuid.New(), Role: access.RoleApprentice}
	if _, err := svc.Export(ctx, apprentice, other, ExportRequest{}); !errors.Is(err, access.ErrAccessDenied) {
		t.Fatalf("foreign export: error = %v, want %v", err, access.ErrAccessDenied)
	}

	admin := access.Actor{AccountID: uuid.New(), Role: access.RoleAdmin}
	if _, err := svc.Export(ctx, apprentice, admin, ExportRequest{}); err != nil {
		t.Fatalf("admin export: %v", err)
	}

	if _, err := svc.Export(ctx, apprentice, admin, ExportRequest{Format: "xml"}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("bad format: error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

func TestWriteCSV(t *testing.T) {
	svc := New(newTestClient(t), &fakeDirectory{})

	hours := 2.0
	rows := []Row{
		{
			EntryID:           uuid.New(),
			BookingID:         uuid.New(),
			PerformedAt:       time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
			ProcedureType:     "microblading",
			SupervisorID:      uuid.New(),
			SupervisorName:    "Mara Quill",
			ApprenticeID:      uuid.New(),
			ApprenticeName:    "Ezra Holt",
			ClientName:        "Robin Vane",
			TrainingHours:     &hours,
			ComplexityLevel:   "intermediate",
			ComplianceChecked: true,
			RecordedAt:        time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv lines = %d, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "entry_id,booking_id,performed_at") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	for _, want := range []string{"microblading", "Mara Quill", "Ezra Holt", "Robin Vane", "2", "intermediate", "true"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row missing %q: %s", want, lines[1])
		}
	}
}
