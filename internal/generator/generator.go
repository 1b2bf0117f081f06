// Package generator picks the next question for a drill.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/flashcards/internal/model"
)

const (
	// DefaultMissBias is the probability of drawing from recent misses.
	DefaultMissBias = 0.75
	// DefaultRadius is the half-width of the country sampling window.
	DefaultRadius = 10
	// DefaultRankSize is how many countries are ranked per question.
	DefaultRankSize = 3

	maxAttempts = 32
)

// Generator produces randomized question selections.
type Generator struct {
	rnd      *rand.Rand
	missBias float64
}

// New returns a Generator seeded with the current time.
func New(missBias float64) *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()), missBias)
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source, missBias float64) *Generator {
	return &Generator{rnd: rand.New(src), missBias: missBias}
}

// PickKey selects the next key. With probability missBias, and when misses
// is non-empty, it draws from misses; otherwise it draws from all. The
// result never equals last unless all has no other key. An empty last means
// there is no previous question.
func (g *Generator) PickKey(all, misses []string, last string) string {
	if len(all) == 0 {
		return ""
	}
	if len(all) == 1 {
		return all[0]
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		key := g.drawKey(all, misses)
		if last == "" || key != last {
			return key
		}
	}
	return g.drawExcluding(all, last)
}

func (g *Generator) drawKey(all, misses []string) string {
	if len(misses) > 0 && g.rnd.Float64() < g.missBias {
		return misses[g.rnd.Intn(len(misses))]
	}
	return all[g.rnd.Intn(len(all))]
}

func (g *Generator) drawExcluding(all []string, last string) string {
	candidates := make([]string, 0, len(all))
	for _, k := range all {
		if k != last {
			candidates = append(candidates, k)
		}
	}
	if len(candidates) == 0 {
		return last
	}
	return candidates[g.rnd.Intn(len(candidates))]
}

// Window returns the [lower, upper) slice of a sorted list of length n
// around center, clamped to the list bounds. center may equal n.
func Window(center, n, radius int) (lower, upper int) {
	switch {
	case center < radius:
		lower, upper = 0, center+radius
	case center > n-radius:
		lower, upper = center-radius, n
	default:
		lower, upper = center-radius, center+radius
	}
	if lower < 0 {
		lower = 0
	}
	if upper > n {
		upper = n
	}
	return lower, upper
}

// PickCountries samples size distinct countries from a window around a
// random pivot of the population-sorted list. The result keeps sampling
// order, not population order.
func (g *Generator) PickCountries(sorted []model.Country, size, radius int) []model.Country {
	if len(sorted) == 0 || size <= 0 {
		return nil
	}
	center := g.rnd.Intn(len(sorted) + 1)
	lower, upper := Window(center, len(sorted), radius)
	if upper-lower < size {
		lower, upper = widen(lower, upper, len(sorted), size)
	}
	span := upper - lower
	if size > span {
		size = span
	}
	perm := g.rnd.Perm(span)
	out := make([]model.Country, 0, size)
	for _, idx := range perm[:size] {
		out = append(out, sorted[lower+idx])
	}
	return out
}

// PickCountriesExcluding behaves like PickCountries but avoids returning
// exactly the same set as last when another set is possible.
func (g *Generator) PickCountriesExcluding(sorted []model.Country, size, radius int, last []model.Country) []model.Country {
	var picked []model.Country
	for attempt := 0; attempt < maxAttempts; attempt++ {
		picked = g.PickCountries(sorted, size, radius)
		if !sameSet(picked, last) {
			return picked
		}
	}
	return picked
}

// widen grows a window symmetrically until it holds size records or covers n.
func widen(lower, upper, n, size int) (int, int) {
	for upper-lower < size && (lower > 0 || upper < n) {
		if lower > 0 {
			lower--
		}
		if upper-lower < size && upper < n {
			upper++
		}
	}
	return lower, upper
}

func sameSet(a, b []model.Country) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, c := range a {
		seen[c.Name]++
	}
	for _, c := range b {
		if seen[c.Name] == 0 {
			return false
		}
		seen[c.Name]--
	}
	return true
}
