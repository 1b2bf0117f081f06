// Package session runs the drill turn loop.
//
// A Session owns the current question and the statistics tracker. The
// presentation layer holds the only reference and drives it through
// QuestionText, FeedbackText, StatsText, Submit and Quit.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/flashcards/internal/logging"
	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/stats"
)

// ErrClosed is returned by Submit after Quit.
var ErrClosed = errors.New("session is closed")

const trendWindow = 5

// Result is the outcome of one submitted answer.
type Result struct {
	Correct  bool
	Feedback string
}

// Session is a single drill run. It is not safe for concurrent use.
type Session struct {
	id      string
	deck    Deck
	tracker *stats.Tracker
	log     *zap.SugaredLogger

	current  model.Question
	feedback string
	answered bool
	correct  bool
	closed   bool
}

// New starts a session and selects its first question.
func New(deck Deck, tracker *stats.Tracker, log *zap.SugaredLogger) *Session {
	s := &Session{
		id:      uuid.NewString(),
		deck:    deck,
		tracker: tracker,
		log:     logging.OrNop(log),
	}
	s.current = deck.Next(nil, nil)
	s.log.Debugw("session started", "session_id", s.id, "mode", deck.Mode().String(), "question", s.current.Key)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Question returns the question awaiting an answer.
func (s *Session) Question() model.Question {
	return s.current
}

// QuestionText returns the prompt of the current question.
func (s *Session) QuestionText() string {
	return s.current.Prompt
}

// FeedbackText returns the feedback for the previous turn, empty before the first.
func (s *Session) FeedbackText() string {
	return s.feedback
}

// LastCorrect reports whether the previous turn was answered correctly.
// ok is false before the first turn.
func (s *Session) LastCorrect() (correct, ok bool) {
	return s.correct, s.answered
}

// StatsText renders recent and overall success rates.
func (s *Session) StatsText() string {
	recent, recentOK := s.tracker.RecentRate()
	total, totalOK := s.tracker.TotalRate()
	correct, incorrect := s.tracker.Totals()
	return fmt.Sprintf("Recent %s  Total %s (%d/%d)",
		stats.FormatRate(recent, recentOK),
		stats.FormatRate(total, totalOK),
		correct, correct+incorrect)
}

// Trend renders the rolling accuracy of the recent window.
func (s *Session) Trend() string {
	return stats.Trend(s.tracker.Recent(), trendWindow)
}

// Submit verifies raw against the current question, records the outcome,
// builds the feedback and advances to the next question.
func (s *Session) Submit(raw string) (Result, error) {
	if s.closed {
		return Result{}, ErrClosed
	}
	q := s.current
	correct := s.deck.Check(q, raw)
	s.tracker.Record(q.Key, correct)
	s.feedback = s.deck.Feedback(q, raw, correct)
	s.answered = true
	s.correct = correct
	s.current = s.deck.Next(&q, s.tracker.RecentIncorrect())
	s.log.Debugw("answer submitted", "session_id", s.id, "question", q.Key, "correct", correct, "next", s.current.Key)
	return Result{Correct: correct, Feedback: s.feedback}, nil
}

// Quit closes the session and returns its summary. Calling it again returns
// the same summary.
func (s *Session) Quit() model.Summary {
	correct, incorrect := s.tracker.Totals()
	summary := model.Summary{
		SessionID: s.id,
		Mode:      s.deck.Mode(),
		Correct:   correct,
		Incorrect: incorrect,
		Missed:    stats.TopMissed(s.tracker.Misses(), len(s.tracker.Misses())),
	}
	if !s.closed {
		s.closed = true
		s.log.Debugw("session finished", "session_id", s.id, "correct", correct, "incorrect", incorrect)
	}
	return summary
}

// Closed reports whether Quit has been called.
func (s *Session) Closed() bool {
	return s.closed
}
