package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Booking is an apprentice's claim on a seat inside an availability block.
type Booking struct {
	ent.Schema
}

func (Booking) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("block_id", uuid.UUID{}).
			Immutable().
			Comment("FK → availability_blocks.id"),

		field.UUID("supervisor_id", uuid.UUID{}).
			Immutable(),

		field.UUID("apprentice_id", uuid.UUID{}).
			Immutable(),

		field.UUID("client_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("CRM client reference; nil for walk-in attribution"),

		field.String("client_name").
			Optional().
			Nillable(),

		field.String("client_email").
			Optional().
			Nillable(),

		field.String("client_phone").
			Optional().
			Nillable().
			Comment("E.164"),

		field.String("procedure_type").
			NotEmpty(),

		field.String("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("requested", "confirmed", "completed", "cancelled", "no_show").
			Default("requested"),

		field.Time("start_time").
			Immutable().
			Comment("copied from the block at creation"),

		field.Time("end_time").
			Immutable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("block_id", "status"),
		index.Fields("apprentice_id", "start_time"),
		index.Fields("supervisor_id", "start_time"),
	}
}
