package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/skilylabs/skily/internal/audio"
	"github.com/skilylabs/skily/internal/explain"
	sess "github.com/skilylabs/skily/internal/quiz"
	"github.com/skilylabs/skily/internal/quizgen"
	"github.com/skilylabs/skily/internal/router"
	"github.com/skilylabs/skily/internal/screen"
	"github.com/skilylabs/skily/internal/stats"
	"github.com/skilylabs/skily/internal/store"
	"github.com/skilylabs/skily/internal/topics"
	"github.com/skilylabs/skily/internal/ui/components"
	"github.com/skilylabs/skily/internal/ui/layout"
	"github.com/skilylabs/skily/internal/ui/theme"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen drives one quiz run on a single topic.
type QuizScreen struct {
	session   *sess.Session
	topic     topics.Info
	generator quizgen.Generator
	explainer *explain.Service
	stats     *stats.Store
	eventRepo store.EventRepo
	sounds    *audio.Engine

	options     components.OptionList
	spinnerTick int
	applied     bool
	result      stats.QuizResult
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)

// New creates a QuizScreen for the given topic.
func New(topic topics.Info, generator quizgen.Generator, explainer *explain.Service, statsStore *stats.Store, eventRepo store.EventRepo, sounds *audio.Engine) *QuizScreen {
	return &QuizScreen{
		session:   sess.NewSession(),
		topic:     topic,
		generator: generator,
		explainer: explainer,
		stats:     statsStore,
		eventRepo: eventRepo,
		sounds:    sounds,
	}
}

func (q *QuizScreen) Title() string {
	return q.topic.Name + " Quiz"
}

func (q *QuizScreen) Init() tea.Cmd {
	if err := q.session.Start(q.topic.Topic); err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	q.appendQuizEvent("start", 0)
	return tea.Batch(q.loadQuestion(), spinnerTickCmd())
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.session.Phase {
	case sess.PhasePresenting, sess.PhaseSelected:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Abandon"},
		}
	case sess.PhaseExplained:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case sess.PhaseComplete, sess.PhaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Abandon"},
	}
}

// Leave abandons an unfinished run when navigation removes the screen.
func (q *QuizScreen) Leave() tea.Cmd {
	if !q.session.Active() {
		return nil
	}
	score := q.session.Abandon()
	q.appendQuizEvent("abandon", score)
	q.applyResult(score)
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return q.handleQuestionReady(msg)

	case explanationReadyMsg:
		q.session.AttachExplanation(msg.Epoch, msg.Text)
		return q, nil

	case spinnerTickMsg:
		q.spinnerTick++
		if q.session.Phase == sess.PhaseLoading || q.session.Phase == sess.PhaseConfirmed {
			return q, spinnerTickCmd()
		}
		return q, nil

	case tea.KeyPressMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if q.session.FailLoad(msg.Epoch) {
			score := q.session.FinalScore()
			q.appendQuizEvent("fail", score)
			q.applyResult(score)
			if q.sounds != nil {
				q.sounds.Play(audio.CueError)
			}
		}
		return q, nil
	}
	if q.session.AttachQuestion(msg.Epoch, msg.Question) {
		q.options = components.NewOptionList(msg.Question.Options)
	}
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.session.Phase {
	case sess.PhasePresenting, sess.PhaseSelected:
		switch key {
		case "up", "k", "down", "j":
			var cmd tea.Cmd
			q.options, cmd = q.options.Update(msg)
			q.session.Select(q.options.Cursor)
			if q.sounds != nil {
				q.sounds.Play(audio.CueHover)
			}
			return q, cmd
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if q.session.Select(idx) {
				q.options.Cursor = idx
				return q.confirm()
			}
			return q, nil
		case "enter":
			if q.session.Phase == sess.PhasePresenting {
				// Selection follows the cursor.
				q.session.Select(q.options.Cursor)
			}
			return q.confirm()
		}

	case sess.PhaseExplained:
		return q.advance()

	case sess.PhaseComplete, sess.PhaseFailed:
		if key == "enter" || key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return q, nil
}

// confirm locks in the current selection and records the answer.
func (q *QuizScreen) confirm() (screen.Screen, tea.Cmd) {
	question := q.session.Question
	selection := q.session.Selection
	timeMs := time.Since(q.session.QuestionStart).Milliseconds()

	needsExplanation, ok := q.session.Confirm()
	if !ok {
		return q, nil
	}

	q.options.Reveal(question.CorrectIndex, selection)

	if q.sounds != nil {
		if q.session.LastCorrect {
			q.sounds.Play(audio.CueSuccess)
		} else {
			q.sounds.Play(audio.CueError)
		}
	}

	if q.eventRepo != nil {
		_ = q.eventRepo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			QuizID:        q.session.ID,
			Topic:         string(q.topic.Topic),
			QuestionText:  question.Text,
			SelectedIndex: selection,
			CorrectIndex:  question.CorrectIndex,
			Correct:       q.session.LastCorrect,
			TimeMs:        timeMs,
		})
	}

	if needsExplanation {
		return q, tea.Batch(q.loadExplanation(question, selection), spinnerTickCmd())
	}
	return q, nil
}

// advance moves to the next question or completes the run.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	done, ok := q.session.Advance()
	if !ok {
		return q, nil
	}
	if !done {
		return q, tea.Batch(q.loadQuestion(), spinnerTickCmd())
	}

	score := q.session.FinalScore()
	q.appendQuizEvent("complete", score)
	q.applyResult(score)
	if q.sounds != nil {
		if q.result.Passed {
			q.sounds.Play(audio.CueReward)
		} else {
			q.sounds.Play(audio.CueError)
		}
	}
	return q, nil
}

// loadQuestion requests the next question. The closure captures the
// epoch and a copy of the prior questions so a stale response can be
// recognized and dropped.
func (q *QuizScreen) loadQuestion() tea.Cmd {
	epoch := q.session.Epoch()
	prior := append([]string(nil), q.session.PriorQuestions...)
	topic := q.topic
	gen := q.generator
	return func() tea.Msg {
		question, err := gen.Generate(context.Background(), quizgen.GenerateInput{
			Topic:          topic,
			PriorQuestions: prior,
		})
		if err != nil {
			return questionReadyMsg{Epoch: epoch, Err: err}
		}
		return questionReadyMsg{Epoch: epoch, Question: question}
	}
}

// loadExplanation fetches the elaborated explanation for a wrong answer.
func (q *QuizScreen) loadExplanation(question *quizgen.Question, selection int) tea.Cmd {
	epoch := q.session.Epoch()
	explainer := q.explainer
	return func() tea.Msg {
		text := explainer.Explain(context.Background(), explain.Input{
			QuestionText:  question.Text,
			Options:       question.Options,
			CorrectOption: question.Options[question.CorrectIndex],
			ChosenOption:  question.Options[selection],
		})
		return explanationReadyMsg{Epoch: epoch, Text: text}
	}
}

// applyResult folds the run into the learner profile, once.
func (q *QuizScreen) applyResult(score int) {
	if q.applied || q.stats == nil {
		return
	}
	q.applied = true
	q.result = q.stats.ApplyQuizResult(q.topic.Topic, score)
}

func (q *QuizScreen) appendQuizEvent(action string, score int) {
	if q.eventRepo == nil {
		return
	}
	answered := q.session.Index
	if q.session.Phase == sess.PhaseComplete && action == "complete" {
		answered = sess.TargetQuestions
	}
	_ = q.eventRepo.AppendQuizEvent(context.Background(), store.QuizEventData{
		QuizID:            q.session.ID,
		Topic:             string(q.topic.Topic),
		Action:            action,
		QuestionsAnswered: answered,
		CorrectAnswers:    q.session.Correct,
		Score:             score,
		DurationSecs:      int(time.Since(q.session.StartTime).Seconds()),
	})
}

func (q *QuizScreen) skin() theme.Skin {
	if q.stats != nil {
		if s, err := theme.Get(q.stats.Stats().Skin); err == nil {
			return s
		}
	}
	return theme.Default()
}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
