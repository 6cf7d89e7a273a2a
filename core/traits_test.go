package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlabs/litterlog/schema"
)

// statsWithHours builds a Stats with visit counts dropped into specific hours.
func statsWithHours(counts map[int]int) *schema.Stats {
	stats := &schema.Stats{VisitsByDate: map[string]*schema.DateBucket{}}
	for hour, count := range counts {
		stats.VisitsByHour[hour] = count
	}
	return stats
}

// TestTimeOfDayTrait tests the dominant six-hour window label.
func TestTimeOfDayTrait(t *testing.T) {
	tests := []struct {
		name   string
		hours  map[int]int
		label  string
		wantOK bool
	}{
		{"night owl", map[int]int{2: 5, 14: 1}, schema.TraitNightOwl, true},
		{"early bird", map[int]int{7: 4, 20: 2}, schema.TraitEarlyBird, true},
		{"afternoon", map[int]int{13: 3}, schema.TraitAfternoonAristocat, true},
		{"evening", map[int]int{19: 2, 23: 2}, schema.TraitEveningEliminator, true},
		{"tie goes to earlier window", map[int]int{3: 2, 15: 2}, schema.TraitNightOwl, true},
		{"no visits", map[int]int{}, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			label, ok := timeOfDayTrait(statsWithHours(tc.hours))
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.label, label)
		})
	}
}

// TestRegularityTrait tests the gap standard-deviation thresholds.
func TestRegularityTrait(t *testing.T) {
	t.Run("no gaps", func(t *testing.T) {
		_, ok := regularityTrait(&schema.Stats{})
		assert.False(t, ok)
	})

	t.Run("tight spacing is habitual", func(t *testing.T) {
		// Identical gaps have zero deviation.
		stats := &schema.Stats{
			HasGaps: true,
			Gaps:    []time.Duration{4 * time.Hour, 4 * time.Hour, 4 * time.Hour},
		}
		label, ok := regularityTrait(stats)
		require.True(t, ok)
		assert.Equal(t, schema.TraitCreatureOfHabit, label)
	})

	t.Run("wild spacing is chaotic", func(t *testing.T) {
		// Gaps of 1h and 30h around a 15.5h mean deviate far beyond 6h.
		stats := &schema.Stats{
			HasGaps: true,
			Gaps:    []time.Duration{time.Hour, 30 * time.Hour},
		}
		label, ok := regularityTrait(stats)
		require.True(t, ok)
		assert.Equal(t, schema.TraitChaoticPooper, label)
	})

	t.Run("middling spacing has no label", func(t *testing.T) {
		// Gaps of 4h and 10h have a 3h deviation, between the thresholds.
		stats := &schema.Stats{
			HasGaps: true,
			Gaps:    []time.Duration{4 * time.Hour, 10 * time.Hour},
		}
		_, ok := regularityTrait(stats)
		assert.False(t, ok)
	})
}

// TestWeeklyRhythmTrait tests the weekend/weekday rate comparison.
func TestWeeklyRhythmTrait(t *testing.T) {
	bucket := func(weekday, count int) *schema.DateBucket {
		return &schema.DateBucket{Weekday: weekday, Count: count}
	}

	t.Run("no dated buckets", func(t *testing.T) {
		_, ok := weeklyRhythmTrait(&schema.Stats{VisitsByDate: map[string]*schema.DateBucket{}})
		assert.False(t, ok)
	})

	t.Run("weekend warrior", func(t *testing.T) {
		stats := &schema.Stats{VisitsByDate: map[string]*schema.DateBucket{
			"2025-06-02": bucket(0, 2),
			"2025-06-07": bucket(5, 8),
		}}
		label, ok := weeklyRhythmTrait(stats)
		require.True(t, ok)
		assert.Equal(t, schema.TraitWeekendWarrior, label)
	})

	t.Run("weekday regular", func(t *testing.T) {
		stats := &schema.Stats{VisitsByDate: map[string]*schema.DateBucket{
			"2025-06-02": bucket(0, 8),
			"2025-06-07": bucket(5, 2),
		}}
		label, ok := weeklyRhythmTrait(stats)
		require.True(t, ok)
		assert.Equal(t, schema.TraitWeekdayRegular, label)
	})

	t.Run("weekend only activity uses day floor", func(t *testing.T) {
		stats := &schema.Stats{VisitsByDate: map[string]*schema.DateBucket{
			"2025-06-07": bucket(5, 4),
			"2025-06-08": bucket(6, 4),
		}}
		label, ok := weeklyRhythmTrait(stats)
		require.True(t, ok)
		assert.Equal(t, schema.TraitWeekendWarrior, label)
	})

	t.Run("balanced rates have no label", func(t *testing.T) {
		stats := &schema.Stats{VisitsByDate: map[string]*schema.DateBucket{
			"2025-06-02": bucket(0, 4),
			"2025-06-07": bucket(5, 4),
		}}
		_, ok := weeklyRhythmTrait(stats)
		assert.False(t, ok)
	})
}

// TestPersonalityTraits tests rule ordering and the non-nil contract.
func TestPersonalityTraits(t *testing.T) {
	t.Run("empty stats", func(t *testing.T) {
		traits := PersonalityTraits(&schema.Stats{VisitsByDate: map[string]*schema.DateBucket{}})
		assert.NotNil(t, traits)
		assert.Empty(t, traits)
	})

	t.Run("labels follow rule order", func(t *testing.T) {
		stats := statsWithHours(map[int]int{7: 3})
		stats.HasGaps = true
		stats.Gaps = []time.Duration{4 * time.Hour, 4 * time.Hour}
		stats.VisitsByDate = map[string]*schema.DateBucket{
			"2025-06-02": {Weekday: 0, Count: 8},
			"2025-06-07": {Weekday: 5, Count: 1},
		}

		traits := PersonalityTraits(stats)
		assert.Equal(t, []string{
			schema.TraitEarlyBird,
			schema.TraitCreatureOfHabit,
			schema.TraitWeekdayRegular,
		}, traits)
	})
}
