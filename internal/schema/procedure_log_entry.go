package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ProcedureLogEntry is one row of the compliance ledger. Entries are created
// exactly once when a booking completes and are never updated or deleted;
// corrections require a compensating entry.
type ProcedureLogEntry struct {
	ent.Schema
}

func (ProcedureLogEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ProcedureLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("booking_id", uuid.UUID{}).
			Unique().
			Immutable().
			Comment("one entry per completed booking"),

		field.UUID("apprentice_id", uuid.UUID{}).
			Immutable(),

		field.UUID("supervisor_id", uuid.UUID{}).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable(),

		field.String("client_name").
			Optional().
			Nillable().
			Immutable(),

		field.String("procedure_type").
			NotEmpty().
			Immutable(),

		field.Time("performed_at").
			Immutable(),

		field.Bool("compliance_checked").
			Default(false).
			Comment("flipped only by the audited admin action"),

		field.Float("training_hours").
			Optional().
			Nillable().
			Immutable(),

		field.Enum("complexity_level").
			Values("basic", "intermediate", "advanced").
			Optional().
			Nillable().
			Immutable(),
	}
}

func (ProcedureLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("apprentice_id", "performed_at"),
		index.Fields("supervisor_id", "performed_at"),
	}
}
