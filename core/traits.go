package core

import (
	"math"

	"github.com/whiskerlabs/litterlog/schema"
)

// traitRule inspects the stats snapshot and optionally contributes a label.
// Rules are independent; adding a trait means appending a rule, never
// branching inside an existing one.
type traitRule func(*schema.Stats) (string, bool)

// traitRules is evaluated in order, so the resulting label list has a fixed,
// documented order regardless of input.
var traitRules = []traitRule{
	timeOfDayTrait,
	regularityTrait,
	weeklyRhythmTrait,
}

// PersonalityTraits evaluates every heuristic rule against the stats and
// collects the labels. The result is never nil; an empty slice means no rule
// had enough signal.
func PersonalityTraits(stats *schema.Stats) []string {
	traits := []string{}
	for _, rule := range traitRules {
		if label, ok := rule(stats); ok {
			traits = append(traits, label)
		}
	}
	return traits
}

// dayPeriods partitions the day into four six-hour windows. Listed order is
// the tie-break order: with equal counts the earlier period wins.
var dayPeriods = []struct {
	startHour int
	endHour   int // exclusive
	label     string
}{
	{0, 6, schema.TraitNightOwl},
	{6, 12, schema.TraitEarlyBird},
	{12, 18, schema.TraitAfternoonAristocat},
	{18, 24, schema.TraitEveningEliminator},
}

// timeOfDayTrait labels the dominant six-hour window, if any window has
// visits at all.
func timeOfDayTrait(stats *schema.Stats) (string, bool) {
	best := -1
	bestCount := 0
	for i, p := range dayPeriods {
		count := 0
		for h := p.startHour; h < p.endHour; h++ {
			count += stats.VisitsByHour[h]
		}
		if best < 0 || count > bestCount {
			best = i
			bestCount = count
		}
	}
	if bestCount == 0 {
		return "", false
	}
	return dayPeriods[best].label, true
}

// Regularity thresholds on the standard deviation of inter-visit gaps.
const (
	habitStdDevHours = 2.0
	chaosStdDevHours = 6.0
)

// regularityTrait measures how consistent the spacing between visits is,
// using the population standard deviation of gap lengths in hours.
func regularityTrait(stats *schema.Stats) (string, bool) {
	if !stats.HasGaps {
		return "", false
	}
	meanSecs := 0.0
	for _, gap := range stats.Gaps {
		meanSecs += gap.Seconds()
	}
	meanSecs /= float64(len(stats.Gaps))

	variance := 0.0
	for _, gap := range stats.Gaps {
		d := gap.Seconds() - meanSecs
		variance += d * d
	}
	variance /= float64(len(stats.Gaps))

	stdDevHours := math.Sqrt(variance) / 3600
	switch {
	case stdDevHours < habitStdDevHours:
		return schema.TraitCreatureOfHabit, true
	case stdDevHours > chaosStdDevHours:
		return schema.TraitChaoticPooper, true
	default:
		return "", false
	}
}

// weekendFactor is how much higher one rate must be than the other before
// the weekly rhythm rule fires.
const weekendFactor = 1.3

// weeklyRhythmTrait compares visits per weekend day against visits per
// weekday. Day counts come from the dated buckets, floored at 1 so a log
// with only weekend (or only weekday) activity cannot divide by zero.
func weeklyRhythmTrait(stats *schema.Stats) (string, bool) {
	if len(stats.VisitsByDate) == 0 {
		return "", false
	}
	weekendVisits, weekdayVisits := 0, 0
	weekendDays, weekdayDays := 0, 0
	for _, bucket := range stats.VisitsByDate {
		if bucket.Weekday >= 5 {
			weekendVisits += bucket.Count
			weekendDays++
		} else {
			weekdayVisits += bucket.Count
			weekdayDays++
		}
	}
	if weekendDays == 0 {
		weekendDays = 1
	}
	if weekdayDays == 0 {
		weekdayDays = 1
	}
	weekendRate := float64(weekendVisits) / float64(weekendDays)
	weekdayRate := float64(weekdayVisits) / float64(weekdayDays)
	switch {
	case weekendRate > weekdayRate*weekendFactor:
		return schema.TraitWeekendWarrior, true
	case weekdayRate > weekendRate*weekendFactor:
		return schema.TraitWeekdayRegular, true
	default:
		return "", false
	}
}
