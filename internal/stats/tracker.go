package stats

import "github.com/verte-zerg/flashcards/internal/model"

// DefaultHistorySize is the capacity of the recent-history window.
const DefaultHistorySize = 15

// Tracker records outcomes in a bounded recent window and in lifetime
// counters that only grow during a session.
type Tracker struct {
	recent []model.Outcome
	start  int
	size   int

	totalCorrect   int
	totalIncorrect int
	misses         map[string]int
}

// NewTracker returns a Tracker whose recent window holds capacity outcomes.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &Tracker{
		recent: make([]model.Outcome, capacity),
		misses: map[string]int{},
	}
}

// Record stores the outcome of one answered question, evicting the oldest
// recent entry once the window is full.
func (t *Tracker) Record(key string, correct bool) {
	if correct {
		t.totalCorrect++
	} else {
		t.totalIncorrect++
		t.misses[key]++
	}
	capacity := len(t.recent)
	if t.size < capacity {
		t.recent[(t.start+t.size)%capacity] = model.Outcome{Key: key, Correct: correct}
		t.size++
		return
	}
	t.recent[t.start] = model.Outcome{Key: key, Correct: correct}
	t.start = (t.start + 1) % capacity
}

// Recent returns the recent window, oldest first.
func (t *Tracker) Recent() []model.Outcome {
	out := make([]model.Outcome, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.recent[(t.start+i)%len(t.recent)]
	}
	return out
}

// RecentIncorrect returns the keys missed within the recent window, oldest
// first, keeping duplicates.
func (t *Tracker) RecentIncorrect() []string {
	var keys []string
	for _, o := range t.Recent() {
		if !o.Correct {
			keys = append(keys, o.Key)
		}
	}
	return keys
}

// RecentRate returns the fraction of correct answers in the recent window.
// ok is false while the window is empty.
func (t *Tracker) RecentRate() (rate float64, ok bool) {
	correct := 0
	for _, o := range t.Recent() {
		if o.Correct {
			correct++
		}
	}
	return Accuracy(correct, t.size-correct)
}

// TotalRate returns the fraction of correct answers over the session. ok is
// false before the first answer.
func (t *Tracker) TotalRate() (rate float64, ok bool) {
	return Accuracy(t.totalCorrect, t.totalIncorrect)
}

// Totals returns the lifetime counters.
func (t *Tracker) Totals() (correct, incorrect int) {
	return t.totalCorrect, t.totalIncorrect
}

// Misses returns a copy of the per-key miss counts for the session.
func (t *Tracker) Misses() map[string]int {
	out := make(map[string]int, len(t.misses))
	for k, v := range t.misses {
		out[k] = v
	}
	return out
}
