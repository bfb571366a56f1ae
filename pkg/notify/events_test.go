package notify_test

import (
	"testing"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressEvents(t *testing.T) {
	at := time.Date(2026, 10, 5, 12, 0, 0, 0, time.UTC)

	t.Run("Withdrawal", func(t *testing.T) {
		res := &savings.SaveResult{Entry: models.LedgerEntry{Amount: money.FromInt(-10), CreatedAt: at}}
		assert.Empty(t, notify.ProgressEvents("user1", res))
	})

	t.Run("Save Without Milestones", func(t *testing.T) {
		res := &savings.SaveResult{
			Entry:    models.LedgerEntry{Amount: money.FromInt(5), CreatedAt: at},
			Progress: &savings.ProgressUpdate{Points: 5},
		}
		assert.Empty(t, notify.ProgressEvents("user1", res))
	})

	t.Run("Level Up And Challenge", func(t *testing.T) {
		res := &savings.SaveResult{
			Entry: models.LedgerEntry{Amount: money.FromInt(60), CreatedAt: at},
			Progress: &savings.ProgressUpdate{
				Period:              models.ProgressionPeriod{CurrentLevel: 2},
				PreviousLevel:       0,
				LeveledUp:           true,
				UnlockedRewards:     []models.RewardDefinition{{ID: "coffee"}},
				CompletedChallenges: []models.ChallengeDefinition{{ID: "first-save", Points: 50}},
			},
		}

		events := notify.ProgressEvents("user1", res)

		require.Len(t, events, 2)
		assert.Equal(t, notify.EventLevelUp, events[0].Type)
		assert.Equal(t, at, events[0].OccurredAt)
		assert.Equal(t, notify.LevelUpPayload{PreviousLevel: 0, Level: 2, UnlockedRewardIDs: []string{"coffee"}}, events[0].Payload)
		assert.Equal(t, notify.EventChallengeCompleted, events[1].Type)
		assert.Equal(t, notify.ChallengePayload{ChallengeID: "first-save", Points: 50}, events[1].Payload)
	})
}
