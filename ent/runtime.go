// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skilylabs/skily/ent/answerevent"
	"github.com/skilylabs/skily/ent/llmrequestevent"
	"github.com/skilylabs/skily/ent/quizevent"
	"github.com/skilylabs/skily/ent/rewardevent"
	"github.com/skilylabs/skily/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuizID is the schema descriptor for quiz_id field.
	answereventDescQuizID := answereventFields[0].Descriptor()
	// answerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	answerevent.QuizIDValidator = answereventDescQuizID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[1].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[6].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescQuizID is the schema descriptor for quiz_id field.
	quizeventDescQuizID := quizeventFields[0].Descriptor()
	// quizevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizevent.QuizIDValidator = quizeventDescQuizID.Validators[0].(func(string) error)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[1].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
	// quizeventDescAction is the schema descriptor for action field.
	quizeventDescAction := quizeventFields[2].Descriptor()
	// quizevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizevent.ActionValidator = quizeventDescAction.Validators[0].(func(string) error)
	// quizeventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	quizeventDescQuestionsAnswered := quizeventFields[3].Descriptor()
	// quizevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	quizevent.DefaultQuestionsAnswered = quizeventDescQuestionsAnswered.Default.(int)
	// quizeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	quizeventDescCorrectAnswers := quizeventFields[4].Descriptor()
	// quizevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	quizevent.DefaultCorrectAnswers = quizeventDescCorrectAnswers.Default.(int)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[5].Descriptor()
	// quizevent.DefaultScore holds the default value on creation for the score field.
	quizevent.DefaultScore = quizeventDescScore.Default.(int)
	// quizeventDescDurationSecs is the schema descriptor for duration_secs field.
	quizeventDescDurationSecs := quizeventFields[6].Descriptor()
	// quizevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizevent.DefaultDurationSecs = quizeventDescDurationSecs.Default.(int)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescDay is the schema descriptor for day field.
	rewardeventDescDay := rewardeventFields[0].Descriptor()
	// rewardevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	rewardevent.DayValidator = rewardeventDescDay.Validators[0].(func(string) error)
}
