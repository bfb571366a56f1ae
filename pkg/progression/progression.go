package progression

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
)

// DateLayout is the format of ProgressionPeriod.LastActivityDate.
const DateLayout = "2006-01-02"

// BonusStreak is the streak length from which savings earn bonus points.
const BonusStreak = 7

// Outcome is the result of applying one savings event to a period.
type Outcome struct {
	Period        models.ProgressionPeriod
	PreviousLevel int
	Points        int64
}

// LeveledUp reports whether the event raised the level.
func (o Outcome) LeveledUp() bool {
	return o.Period.CurrentLevel > o.PreviousLevel
}

// NewPeriod returns an empty progression record for the user's month.
func NewPeriod(userID string, period models.Period) models.ProgressionPeriod {
	return models.ProgressionPeriod{
		ID:     userID + "#" + period.FirstDay(),
		UserID: userID,
		Month:  period.FirstDay(),
	}
}

// Streak returns the streak after activity on today, given the previous
// activity date (empty when there was none).
func Streak(lastActivity string, current int, today time.Time) int {
	if lastActivity == "" {
		return 1
	}
	last, err := time.Parse(DateLayout, lastActivity)
	if err != nil {
		return 1
	}
	day := truncateDay(today)
	switch {
	case last.Equal(day):
		if current < 1 {
			return 1
		}
		return current
	case last.AddDate(0, 0, 1).Equal(day):
		return current + 1
	default:
		return 1
	}
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Points awards one point per whole unit saved, plus half that again once
// the streak reaches BonusStreak.
func Points(amount money.Amount, streak int) int64 {
	if !amount.IsPositive() {
		return 0
	}
	points := amount.Floor()
	if streak >= BonusStreak {
		points += amount.Half().Floor()
	}
	return points
}

// Advance applies a positive savings amount made on today.
func Advance(p models.ProgressionPeriod, amount money.Amount, today time.Time) Outcome {
	prev := p.CurrentLevel
	p.StreakDays = Streak(p.LastActivityDate, p.StreakDays, today)
	p.LastActivityDate = truncateDay(today).Format(DateLayout)
	points := Points(amount, p.StreakDays)
	p.TotalSavings = p.TotalSavings.Add(amount)
	p.TotalPoints += points
	p.CurrentLevel = LevelFor(p.TotalSavings)
	return Outcome{Period: p, PreviousLevel: prev, Points: points}
}

// Retract undoes a savings amount and the points it earned. The streak is
// left alone. Totals never drop below zero.
func Retract(p models.ProgressionPeriod, amount money.Amount, points int64) models.ProgressionPeriod {
	p.TotalSavings = money.Max(p.TotalSavings.Sub(amount), money.Zero)
	p.TotalPoints -= points
	if p.TotalPoints < 0 {
		p.TotalPoints = 0
	}
	p.CurrentLevel = LevelFor(p.TotalSavings)
	return p
}

// UnlockedRewards returns the active rewards whose level lies in (from, to].
func UnlockedRewards(from, to int, defs []models.RewardDefinition) []models.RewardDefinition {
	var out []models.RewardDefinition
	if to <= from {
		return out
	}
	for _, d := range defs {
		if d.Active && d.Level > from && d.Level <= to {
			out = append(out, d)
		}
	}
	return out
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a redemption code.
const CodeLength = 8

// NewRedemptionCode returns a random code from an alphabet without
// look-alike characters.
func NewRedemptionCode() (string, error) {
	buf := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate redemption code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
