package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single confirmed answer within a quiz.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the question was drawn from"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Int("selected_index").
			Comment("Option index the learner confirmed (0-3)"),
		field.Int("correct_index").
			Comment("Option index of the correct answer (0-3)"),
		field.Bool("correct").
			Comment("Whether the confirmed answer was correct"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds from presentation to confirm"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
