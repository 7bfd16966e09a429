// Package report produces compliance exports of an apprentice's procedure
// history, with participant names resolved through the account directory.
package report

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/inkwell-hq/inkwell_backend/internal/directory"
	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	entledger "github.com/inkwell-hq/inkwell_backend/internal/repo/procedurelogentry"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

type ExportRequest struct {
	From         *time.Time
	To           *time.Time
	SupervisorID *uuid.UUID
	Format       Format
}

// Row is one exported ledger entry with names resolved. ClientName falls
// back to the name captured on the booking when the client has no account.
type Row struct {
	EntryID           uuid.UUID `json:"entry_id"`
	BookingID         uuid.UUID `json:"booking_id"`
	PerformedAt       time.Time `json:"performed_at"`
	ProcedureType     string    `json:"procedure_type"`
	SupervisorID      uuid.UUID `json:"supervisor_id"`
	SupervisorName    string    `json:"supervisor_name"`
	SupervisorLicense string    `json:"supervisor_license,omitempty"`
	ApprenticeID      uuid.UUID `json:"apprentice_id"`
	ApprenticeName    string    `json:"apprentice_name"`
	ClientName        string    `json:"client_name,omitempty"`
	TrainingHours     *float64  `json:"training_hours,omitempty"`
	ComplexityLevel   string    `json:"complexity_level,omitempty"`
	ComplianceChecked bool      `json:"compliance_checked"`
	RecordedAt        time.Time `json:"recorded_at"`
}

type Service interface {
	Export(ctx context.Context, apprenticeID uuid.UUID, actor access.Actor, req ExportRequest) ([]Row, error)
	WriteCSV(w io.Writer, rows []Row) error
}

type reportService struct {
	db  *repo.Client
	dir directory.Directory
}

func New(db *repo.Client, dir directory.Directory) Service {
	return &reportService{db: db, dir: dir}
}

func (s *reportService) Export(ctx context.Context, apprenticeID uuid.UUID, actor access.Actor, req ExportRequest) ([]Row, error) {
	if actor.Role == access.RoleApprentice && actor.AccountID != apprenticeID {
		return nil, access.ErrAccessDenied
	}
	if req.Format != "" && req.Format != FormatJSON && req.Format != FormatCSV {
		return nil, ErrUnsupportedFormat
	}

	q := s.db.ProcedureLogEntry.Query().
		Where(entledger.ApprenticeID(apprenticeID))
	if req.From != nil {
		q = q.Where(entledger.PerformedAtGTE(*req.From))
	}
	// export windows are inclusive on both ends
	if req.To != nil {
		q = q.Where(entledger.PerformedAtLTE(*req.To))
	}
	if req.SupervisorID != nil {
		q = q.Where(entledger.SupervisorID(*req.SupervisorID))
	}

	entries, err := q.
		Order(entledger.ByPerformedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}

	names := newNameResolver(s.dir)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		row := Row{
			EntryID:           e.ID,
			BookingID:         e.BookingID,
			PerformedAt:       e.PerformedAt,
			ProcedureType:     e.ProcedureType,
			SupervisorID:      e.SupervisorID,
			ApprenticeID:      e.ApprenticeID,
			TrainingHours:     e.TrainingHours,
			ComplianceChecked: e.ComplianceChecked,
			RecordedAt:        e.CreatedAt,
		}
		if e.ComplexityLevel != nil {
			row.ComplexityLevel = string(*e.ComplexityLevel)
		}

		if acct, err := names.account(ctx, e.SupervisorID); err == nil {
			row.SupervisorName = acct.DisplayName
			row.SupervisorLicense = acct.LicenseNumber
		}
		if acct, err := names.account(ctx, e.ApprenticeID); err == nil {
			row.ApprenticeName = acct.DisplayName
		}

		row.ClientName = s.resolveClientName(ctx, names, e)
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *reportService) resolveClientName(ctx context.Context, names *nameResolver, e *repo.ProcedureLogEntry) string {
	if e.ClientID != nil {
		if c, err := names.client(ctx, *e.ClientID); err == nil && c.DisplayName != "" {
			return c.DisplayName
		}
	}
	if e.ClientName != nil {
		return *e.ClientName
	}
	return ""
}

var csvHeader = []string{
	"entry_id", "booking_id", "performed_at", "procedure_type",
	"supervisor_id", "supervisor_name", "supervisor_license",
	"apprentice_id", "apprentice_name", "client_name",
	"training_hours", "complexity_level", "compliance_checked", "recorded_at",
}

func (s *reportService) WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		hours := ""
		if r.TrainingHours != nil {
			hours = strconv.FormatFloat(*r.TrainingHours, 'f', -1, 64)
		}
		record := []string{
			r.EntryID.String(),
			r.BookingID.String(),
			r.PerformedAt.UTC().Format(time.RFC3339),
			r.ProcedureType,
			r.SupervisorID.String(),
			r.SupervisorName,
			r.SupervisorLicense,
			r.ApprenticeID.String(),
			r.ApprenticeName,
			r.ClientName,
			hours,
			r.ComplexityLevel,
			strconv.FormatBool(r.ComplianceChecked),
			r.RecordedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// nameResolver memoizes directory lookups for the duration of one export so
// an apprentice with one supervisor costs two calls, not two per row.
type nameResolver struct {
	dir      directory.Directory
	accounts map[uuid.UUID]*directory.Account
	clients  map[uuid.UUID]*directory.Client
}

func newNameResolver(dir directory.Directory) *nameResolver {
	return &nameResolver{
		dir:      dir,
		accounts: make(map[uuid.UUID]*directory.Account),
		clients:  make(map[uuid.UUID]*directory.Client),
	}
}

func (r *nameResolver) account(ctx context.Context, id uuid.UUID) (*directory.Account, error) {
	if a, ok := r.accounts[id]; ok {
		if a == nil {
			return nil, directory.ErrNotFound
		}
		return a, nil
	}
	a, err := r.dir.Account(ctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			r.accounts[id] = nil
		}
		return nil, err
	}
	r.accounts[id] = a
	return a, nil
}

func (r *nameResolver) client(ctx context.Context, id uuid.UUID) (*directory.Client, error) {
	if c, ok := r.clients[id]; ok {
		if c == nil {
			return nil, directory.ErrNotFound
		}
		return c, nil
	}
	c, err := r.dir.Client(ctx, id)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			r.clients[id] = nil
		}
		return nil, err
	}
	r.clients[id] = c
	return c, nil
}
