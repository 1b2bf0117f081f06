package session

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/verte-zerg/flashcards/internal/answer"
	"github.com/verte-zerg/flashcards/internal/corpus"
	"github.com/verte-zerg/flashcards/internal/generator"
	"github.com/verte-zerg/flashcards/internal/model"
	"github.com/verte-zerg/flashcards/internal/translit"
)

// Deck supplies questions and judges answers for one drill mode.
type Deck interface {
	Mode() model.Mode
	// Next selects the question following prev (nil on the first turn),
	// biased toward the recently missed keys.
	Next(prev *model.Question, misses []string) model.Question
	Check(q model.Question, input string) bool
	Feedback(q model.Question, input string, correct bool) string
}

// WordDeck drills term -> definition pairs.
type WordDeck struct {
	corpus *corpus.Corpus
	gen    *generator.Generator
	index  *translit.Index
}

// NewWordDeck builds a word deck and caches the pronunciation key of every term.
func NewWordDeck(c *corpus.Corpus, table *translit.Table, gen *generator.Generator) *WordDeck {
	return &WordDeck{
		corpus: c,
		gen:    gen,
		index:  translit.NewIndex(table, c.Keys()),
	}
}

// Mode implements Deck.
func (d *WordDeck) Mode() model.Mode {
	return model.ModeWords
}

// Next implements Deck.
func (d *WordDeck) Next(prev *model.Question, misses []string) model.Question {
	last := ""
	if prev != nil {
		last = prev.Key
	}
	key := d.gen.PickKey(d.corpus.Keys(), misses, last)
	ans, _ := d.corpus.Answer(key)
	return model.Question{Key: key, Prompt: key, Answer: ans}
}

// Check implements Deck.
func (d *WordDeck) Check(q model.Question, input string) bool {
	return answer.CheckWord(input, q.Answer)
}

// Feedback implements Deck.
func (d *WordDeck) Feedback(q model.Question, _ string, correct bool) string {
	if correct {
		return fmt.Sprintf("Correct, %s is %s", q.Key, q.Answer)
	}
	return fmt.Sprintf("Incorrect, %s is %s\n%s", q.Key, q.Answer, translit.Format(d.index.Key(q.Key)))
}

// CountryDeck drills ranking countries by population.
type CountryDeck struct {
	sorted []model.Country
	gen    *generator.Generator
	size   int
	radius int
}

// NewCountryDeck builds a ranking deck over countries sorted by descending population.
func NewCountryDeck(sorted []model.Country, gen *generator.Generator, size, radius int) *CountryDeck {
	return &CountryDeck{sorted: sorted, gen: gen, size: size, radius: radius}
}

// Mode implements Deck.
func (d *CountryDeck) Mode() model.Mode {
	return model.ModeCountries
}

// Next implements Deck. Misses are not used: ranking questions are sampled
// by population strata instead.
func (d *CountryDeck) Next(prev *model.Question, _ []string) model.Question {
	var last []model.Country
	if prev != nil {
		last = prev.Countries
	}
	picked := d.gen.PickCountriesExcluding(d.sorted, d.size, d.radius, last)
	names := make([]string, len(picked))
	for i, c := range picked {
		names[i] = c.Name
	}
	listed := strings.Join(names, ", ")
	return model.Question{
		Key:       listed,
		Prompt:    listed,
		Answer:    answer.RankingText(picked),
		Countries: picked,
	}
}

// Check implements Deck.
func (d *CountryDeck) Check(q model.Question, input string) bool {
	return answer.CheckRanking(input, q.Countries)
}

// Feedback implements Deck.
func (d *CountryDeck) Feedback(q model.Question, input string, correct bool) string {
	populations := formatPopulations(q.Countries)
	if correct {
		return fmt.Sprintf("Correct, %s\n%s", q.Answer, populations)
	}
	return fmt.Sprintf("Incorrect, not %q but %s\n%s", strings.TrimSpace(input), q.Answer, populations)
}

func formatPopulations(countries []model.Country) string {
	p := message.NewPrinter(language.English)
	ranked := answer.Ranked(countries)
	parts := make([]string, len(ranked))
	for i, c := range ranked {
		parts[i] = p.Sprintf("%s %d", c.Name, int64(c.Population))
	}
	return strings.Join(parts, " > ")
}
