// Package model defines shared data structures.
package model

// Mode selects which kind of drill a session runs.
type Mode int

const (
	// ModeWords drills term -> definition pairs.
	ModeWords Mode = iota
	// ModeCountries drills ranking a handful of countries by population.
	ModeCountries
)

// String returns the mode name used in logs and summaries.
func (m Mode) String() string {
	switch m {
	case ModeWords:
		return "words"
	case ModeCountries:
		return "countries"
	default:
		return "unknown"
	}
}

// Config defines practice settings.
type Config struct {
	Mode        Mode
	Files       []string
	Dataset     string
	MissBias    float64
	HistorySize int
	TablePath   string
	Radius      int
	RankSize    int
	Plain       bool
}

// Country is a ranked record of the country dataset.
type Country struct {
	Name       string
	Population float64
}

// Question is the card currently shown to the learner.
//
// Key identifies the question for history and repeat avoidance. For the
// ranking drill it is derived from the sampled names, in presentation order.
type Question struct {
	Key       string
	Prompt    string
	Answer    string
	Countries []Country
}

// Outcome pairs a question key with whether it was answered correctly.
type Outcome struct {
	Key     string
	Correct bool
}

// KeyMisses counts how often a key was missed in a session.
type KeyMisses struct {
	Key    string
	Misses int
}

// Summary describes a finished session.
type Summary struct {
	SessionID string
	Mode      Mode
	Correct   int
	Incorrect int
	Missed    []KeyMisses
}

// Turns returns the number of answered questions.
func (s Summary) Turns() int {
	return s.Correct + s.Incorrect
}
