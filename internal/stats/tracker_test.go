package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/flashcards/internal/model"
)

func TestTrackerCountersAndWindow(t *testing.T) {
	tr := NewTracker(DefaultHistorySize)
	for n := 0; n <= 40; n++ {
		correct, incorrect := tr.Totals()
		require.Equal(t, n, correct+incorrect)
		require.Len(t, tr.Recent(), min(n, DefaultHistorySize))
		tr.Record(fmt.Sprintf("k%d", n), n%3 == 0)
	}
}

func TestTrackerEvictsOldestFirst(t *testing.T) {
	tr := NewTracker(3)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		tr.Record(k, true)
	}
	recent := tr.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "c", recent[0].Key)
	assert.Equal(t, "d", recent[1].Key)
	assert.Equal(t, "e", recent[2].Key)
}

func TestTrackerRecentIncorrect(t *testing.T) {
	tr := NewTracker(DefaultHistorySize)
	tr.Record("a", false)
	tr.Record("b", true)
	tr.Record("c", false)

	assert.Equal(t, []string{"a", "c"}, tr.RecentIncorrect())
	rate, ok := tr.RecentRate()
	require.True(t, ok)
	assert.InDelta(t, 1.0/3.0, rate, 1e-9)
}

func TestTrackerRecentIncorrectKeepsDuplicatesAndEvicts(t *testing.T) {
	tr := NewTracker(4)
	tr.Record("a", false)
	tr.Record("a", false)
	tr.Record("b", true)
	tr.Record("a", false)
	assert.Equal(t, []string{"a", "a", "a"}, tr.RecentIncorrect())

	tr.Record("c", true)
	tr.Record("d", true)
	assert.Equal(t, []string{"a"}, tr.RecentIncorrect())

	misses := tr.Misses()
	assert.Equal(t, 3, misses["a"])
}

func TestTrackerEmptyRates(t *testing.T) {
	tr := NewTracker(DefaultHistorySize)
	_, ok := tr.RecentRate()
	assert.False(t, ok)
	_, ok = tr.TotalRate()
	assert.False(t, ok)
	assert.Empty(t, tr.RecentIncorrect())
}

func TestTrackerTotalRateSpansEvictions(t *testing.T) {
	tr := NewTracker(2)
	tr.Record("a", false)
	tr.Record("b", false)
	tr.Record("c", true)
	tr.Record("d", true)

	recent, ok := tr.RecentRate()
	require.True(t, ok)
	assert.Equal(t, 1.0, recent)
	total, ok := tr.TotalRate()
	require.True(t, ok)
	assert.Equal(t, 0.5, total)
}

func TestNewTrackerDefaultsCapacity(t *testing.T) {
	tr := NewTracker(0)
	for i := 0; i < 20; i++ {
		tr.Record("x", true)
	}
	assert.Len(t, tr.Recent(), DefaultHistorySize)
}

func TestMissesIsCopy(t *testing.T) {
	tr := NewTracker(2)
	tr.Record("a", false)
	m := tr.Misses()
	m["a"] = 99
	assert.Equal(t, 1, tr.Misses()["a"])
}

func TestTrendLength(t *testing.T) {
	outcomes := []model.Outcome{{Key: "a"}, {Key: "b", Correct: true}, {Key: "c", Correct: true}}
	assert.Len(t, Trend(outcomes, 2), 3)
	assert.Equal(t, "", Trend(nil, 2))
}
