package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored model request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizEventData captures a quiz lifecycle event.
type QuizEventData struct {
	QuizID            string
	Topic             string
	Action            string // start, complete, abandon, fail
	QuestionsAnswered int
	CorrectAnswers    int
	Score             int
	DurationSecs      int
}

// AnswerEventData captures a single confirmed answer.
type AnswerEventData struct {
	QuizID        string
	Topic         string
	QuestionText  string
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
	TimeMs        int64
}

// RewardEventData captures a daily reward claim.
type RewardEventData struct {
	Day       string // YYYY-MM-DD
	Streak    int
	XPAwarded int
}

// QuizSummaryRecord is a finished quiz run as stored in the log.
type QuizSummaryRecord struct {
	QuizID            string
	Topic             string
	Action            string
	Timestamp         time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	Score             int
	DurationSecs      int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one model request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendQuizEvent records a quiz lifecycle event.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// AppendAnswerEvent records a confirmed answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendRewardEvent records a daily reward claim.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QueryQuizSummaries returns finished quiz runs, newest first.
	QueryQuizSummaries(ctx context.Context, opts QueryOpts) ([]QuizSummaryRecord, error)

	// TopicAccuracy returns the all-time answer accuracy for a topic,
	// or 0 when no answers are recorded.
	TopicAccuracy(ctx context.Context, topic string) (float64, error)
}
