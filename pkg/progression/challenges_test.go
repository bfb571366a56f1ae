package progression

import (
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceChallenge(t *testing.T) {
	now := time.Date(2026, 10, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Savings Amount Completes", func(t *testing.T) {
		def := models.ChallengeDefinition{ID: "century", Metric: models.MetricSavingsAmount, TargetValue: 100, Points: 50, Active: true}
		progress := models.UserChallengeProgress{UserID: "user1", ChallengeID: "century", Progress: 90}

		update, ok := AdvanceChallenge(def, progress, money.MustParse("10.75"), 1, now)

		require.True(t, ok)
		assert.True(t, update.JustCompleted)
		assert.Equal(t, int64(100), update.Progress.Progress)
		assert.Equal(t, int64(50), update.Points)
		require.NotNil(t, update.Progress.CompletedAt)
	})

	t.Run("Savings Count", func(t *testing.T) {
		def := models.ChallengeDefinition{ID: "first-steps", Metric: models.MetricSavingsCount, TargetValue: 3, Active: true}

		update, ok := AdvanceChallenge(def, models.UserChallengeProgress{UserID: "user1"}, money.FromInt(1), 1, now)

		require.True(t, ok)
		assert.False(t, update.JustCompleted)
		assert.Equal(t, int64(1), update.Progress.Progress)
		assert.Equal(t, "first-steps", update.Progress.ChallengeID)
	})

	t.Run("Streak Does Not Move Backwards", func(t *testing.T) {
		def := models.ChallengeDefinition{ID: "week-streak", Metric: models.MetricStreakDays, TargetValue: 7, Active: true}

		_, ok := AdvanceChallenge(def, models.UserChallengeProgress{Progress: 4}, money.FromInt(1), 2, now)

		assert.False(t, ok)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := now.Add(-time.Hour)
		def := models.ChallengeDefinition{ID: "old", Metric: models.MetricSavingsCount, TargetValue: 1, Active: true, ExpiresAt: &expired}

		_, ok := AdvanceChallenge(def, models.UserChallengeProgress{}, money.FromInt(1), 1, now)

		assert.False(t, ok)
	})

	t.Run("Already Completed", func(t *testing.T) {
		def := models.ChallengeDefinition{ID: "done", Metric: models.MetricSavingsCount, TargetValue: 1, Active: true}

		_, ok := AdvanceChallenge(def, models.UserChallengeProgress{Completed: true, Progress: 1}, money.FromInt(1), 1, now)

		assert.False(t, ok)
	})
}

func TestDefaultRewards(t *testing.T) {
	rewards := DefaultRewards()

	require.Len(t, rewards, MaxLevel())
	for i, r := range rewards {
		assert.Equal(t, i+1, r.Level)
		assert.True(t, r.MinSavings.Equal(Levels[i+1].MinSavings))
	}
	assert.Nil(t, rewards[len(rewards)-1].MaxSavings)
}
