package stats

import (
	"sort"

	"github.com/verte-zerg/flashcards/internal/model"
)

// TopMissed returns up to n keys with the most misses.
func TopMissed(misses map[string]int, n int) []model.KeyMisses {
	if n <= 0 || len(misses) == 0 {
		return nil
	}
	items := make([]model.KeyMisses, 0, len(misses))
	for k, v := range misses {
		if v <= 0 {
			continue
		}
		items = append(items, model.KeyMisses{Key: k, Misses: v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Misses == items[j].Misses {
			return items[i].Key < items[j].Key
		}
		return items[i].Misses > items[j].Misses
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
