package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz lifecycle events (start/complete/abandon/fail).
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("UUID grouping events in a quiz run"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the quiz was drawn from"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, abandon, or fail"),
		field.Int("questions_answered").
			Default(0).
			Comment("Confirmed answers (on complete/abandon only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on complete/abandon only)"),
		field.Int("score").
			Default(0).
			Comment("Final score 0-100 (on complete/abandon only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock quiz duration (on complete/abandon only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("topic"),
		index.Fields("action"),
	}
}
