package store

import (
	"context"
	"fmt"

	"github.com/skilylabs/skily/ent"
	"github.com/skilylabs/skily/ent/answerevent"
	"github.com/skilylabs/skily/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetTopic(data.Topic).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetTopic(data.Topic).
		SetQuestionText(data.QuestionText).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizSummaries(ctx context.Context, opts QueryOpts) ([]QuizSummaryRecord, error) {
	query := r.client.QuizEvent.Query().
		Where(quizevent.ActionIn("complete", "abandon")).
		Order(ent.Desc(quizevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(quizevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz summaries: %w", err)
	}

	records := make([]QuizSummaryRecord, len(events))
	for i, e := range events {
		records[i] = QuizSummaryRecord{
			QuizID:            e.QuizID,
			Topic:             e.Topic,
			Action:            e.Action,
			Timestamp:         e.Timestamp,
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			Score:             e.Score,
			DurationSecs:      e.DurationSecs,
		}
	}
	return records, nil
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topic string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Topic(topic)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}
