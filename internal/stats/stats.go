// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/flashcards/internal/model"
)

const sparkChars = " .:-=+*#%@"

// summaryTopMissed bounds the missed-keys table of the summary.
const summaryTopMissed = 10

// Accuracy returns correct / (correct + incorrect). ok is false when there
// is nothing to divide by.
func Accuracy(correct, incorrect int) (rate float64, ok bool) {
	den := correct + incorrect
	if den <= 0 {
		return 0, false
	}
	return float64(correct) / float64(den), true
}

// FormatRate renders a rate as a percentage with two decimals, or "n/a".
func FormatRate(rate float64, ok bool) string {
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", rate*100)
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Trend renders the rolling accuracy of outcomes as a sparkline.
func Trend(outcomes []model.Outcome, window int) string {
	values := make([]float64, len(outcomes))
	for i, o := range outcomes {
		if o.Correct {
			values[i] = 1
		}
	}
	return Sparkline(MovingAverage(values, window))
}

// RenderSummary prints the end-of-session summary.
func RenderSummary(w io.Writer, summary model.Summary) error {
	if summary.Turns() == 0 {
		_, err := fmt.Fprintln(w, "No questions answered.")
		return err
	}
	rate, ok := Accuracy(summary.Correct, summary.Incorrect)
	lines := []string{
		"Summary",
		fmt.Sprintf("Session: %s (%s)", summary.SessionID, summary.Mode),
		fmt.Sprintf("Answered: %d", summary.Turns()),
		fmt.Sprintf("Correct: %d", summary.Correct),
		fmt.Sprintf("Incorrect: %d", summary.Incorrect),
		fmt.Sprintf("Accuracy: %s", FormatRate(rate, ok)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	missed := summary.Missed
	if len(missed) > summaryTopMissed {
		missed = missed[:summaryTopMissed]
	}
	if len(missed) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Most missed"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(missed))
	for _, m := range missed {
		rows = append(rows, []string{m.Key, fmt.Sprintf("%d", m.Misses)})
	}
	return WriteTable(w, []string{"Question", "Misses"}, rows, map[int]bool{1: true})
}
