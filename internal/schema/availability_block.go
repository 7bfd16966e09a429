package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilityBlock is a supervisor-published time window offering up to
// `capacity` supervised slots.
type AvailabilityBlock struct {
	ent.Schema
}

func (AvailabilityBlock) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityBlock) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("supervisor_id", uuid.UUID{}).
			Comment("account id of the owning supervisor (identity subsystem)"),

		field.Time("start_time"),

		field.Time("end_time"),

		field.Int("capacity").
			Default(1).
			Positive(),

		field.Int("buffer_minutes").
			Default(0).
			NonNegative().
			Comment("informational gap between procedures; not enforced"),

		field.String("location").
			Optional().
			Nillable(),

		field.String("notes").
			Optional().
			Nillable(),

		field.Bool("is_published").
			Default(true),

		field.Int("active_bookings").
			Default(0).
			NonNegative().
			Comment("count of requested+confirmed bookings; maintained transactionally, never exceeds capacity"),
	}
}

func (AvailabilityBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supervisor_id", "start_time"),
		index.Fields("is_published", "start_time"),
	}
}
