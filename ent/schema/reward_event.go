package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records a daily reward claim.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("day").
			NotEmpty().
			Comment("Calendar day of the claim, YYYY-MM-DD"),
		field.Int("streak").
			Comment("Streak length after the claim"),
		field.Int("xp_awarded").
			Comment("XP granted by the claim"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("day"),
	}
}
