// Package progression holds the pure rules of the monthly gamification
// layer: level bands, streaks, points, reward unlocking and challenges.
package progression

import (
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/shopspring/decimal"
)

// Level is one band of the level table.
type Level struct {
	Number     int
	MinSavings money.Amount
}

// Levels is ordered by MinSavings. The highest band whose minimum is met wins.
var Levels = []Level{
	{Number: 0, MinSavings: money.Zero},
	{Number: 1, MinSavings: money.FromInt(25)},
	{Number: 2, MinSavings: money.FromInt(50)},
	{Number: 3, MinSavings: money.FromInt(75)},
	{Number: 4, MinSavings: money.FromInt(100)},
	{Number: 5, MinSavings: money.FromInt(150)},
	{Number: 6, MinSavings: money.FromInt(200)},
	{Number: 7, MinSavings: money.FromInt(300)},
}

// MaxLevel is the top of the table.
func MaxLevel() int {
	return Levels[len(Levels)-1].Number
}

// LevelFor returns the level reached with the given savings this month.
func LevelFor(totalSavings money.Amount) int {
	level := Levels[0].Number
	for _, l := range Levels {
		if totalSavings.GreaterOrEqual(l.MinSavings) {
			level = l.Number
		}
	}
	return level
}

// NextLevel returns the next band above the current savings and how much
// is still needed to reach it. ok is false at the top of the table.
func NextLevel(totalSavings money.Amount) (next Level, needed money.Amount, ok bool) {
	for _, l := range Levels {
		if l.MinSavings.GreaterThan(totalSavings) {
			return l, l.MinSavings.Sub(totalSavings), true
		}
	}
	return Level{}, money.Zero, false
}

// ProgressPercentage is min(100, total / top threshold × 100), rounded to
// two decimals.
func ProgressPercentage(totalSavings money.Amount) float64 {
	top := Levels[len(Levels)-1].MinSavings.Decimal()
	if totalSavings.IsNegative() || top.IsZero() {
		return 0
	}
	pct := totalSavings.Decimal().Div(top).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.Round(2).InexactFloat64()
}
