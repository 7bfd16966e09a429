// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AvailabilityBlocksColumns holds the columns for the "availability_blocks" table.
	AvailabilityBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "supervisor_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "capacity", Type: field.TypeInt, Default: 1},
		{Name: "buffer_minutes", Type: field.TypeInt, Default: 0},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "is_published", Type: field.TypeBool, Default: true},
		{Name: "active_bookings", Type: field.TypeInt, Default: 0},
	}
	// AvailabilityBlocksTable holds the schema information for the "availability_blocks" table.
	AvailabilityBlocksTable = &schema.Table{
		Name:       "availability_blocks",
		Columns:    AvailabilityBlocksColumns,
		PrimaryKey: []*schema.Column{AvailabilityBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "availabilityblock_supervisor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityBlocksColumns[3], AvailabilityBlocksColumns[4]},
			},
			{
				Name:    "availabilityblock_is_published_start_time",
				Unique:  false,
				Columns: []*schema.Column{AvailabilityBlocksColumns[10], AvailabilityBlocksColumns[4]},
			},
		},
	}
	// BookingsColumns holds the columns for the "bookings" table.
	BookingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "block_id", Type: field.TypeUUID},
		{Name: "supervisor_id", Type: field.TypeUUID},
		{Name: "apprentice_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "client_email", Type: field.TypeString, Nullable: true},
		{Name: "client_phone", Type: field.TypeString, Nullable: true},
		{Name: "procedure_type", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"requested", "confirmed", "completed", "cancelled", "no_show"}, Default: "requested"},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// BookingsTable holds the schema information for the "bookings" table.
	BookingsTable = &schema.Table{
		Name:       "bookings",
		Columns:    BookingsColumns,
		PrimaryKey: []*schema.Column{BookingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "booking_block_id_status",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[3], BookingsColumns[12]},
			},
			{
				Name:    "booking_apprentice_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[5], BookingsColumns[13]},
			},
			{
				Name:    "booking_supervisor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{BookingsColumns[4], BookingsColumns[13]},
			},
		},
	}
	// ProcedureLogEntriesColumns holds the columns for the "procedure_log_entries" table.
	ProcedureLogEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "booking_id", Type: field.TypeUUID, Unique: true},
		{Name: "apprentice_id", Type: field.TypeUUID},
		{Name: "supervisor_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID, Nullable: true},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "procedure_type", Type: field.TypeString},
		{Name: "performed_at", Type: field.TypeTime},
		{Name: "compliance_checked", Type: field.TypeBool, Default: false},
		{Name: "training_hours", Type: field.TypeFloat64, Nullable: true},
		{Name: "complexity_level", Type: field.TypeEnum, Nullable: true, Enums: []string{"basic", "intermediate", "advanced"}},
	}
	// ProcedureLogEntriesTable holds the schema information for the "procedure_log_entries" table.
	ProcedureLogEntriesTable = &schema.Table{
		Name:       "procedure_log_entries",
		Columns:    ProcedureLogEntriesColumns,
		PrimaryKey: []*schema.Column{ProcedureLogEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "procedurelogentry_apprentice_id_performed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcedureLogEntriesColumns[3], ProcedureLogEntriesColumns[8]},
			},
			{
				Name:    "procedurelogentry_supervisor_id_performed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcedureLogEntriesColumns[4], ProcedureLogEntriesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AvailabilityBlocksTable,
		BookingsTable,
		ProcedureLogEntriesTable,
	}
)

func init() {
}
