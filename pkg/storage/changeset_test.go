package storage_test

import (
	"testing"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagGoal(t *testing.T) {
	t.Run("Writes The Goal Once", func(t *testing.T) {
		cs := storage.NewChangeSet()
		goal := models.Goal{ID: "g1", EntryCount: 4, Version: 3}

		cs.TagGoal(goal, 1)
		cs.TagGoal(goal, 1)

		require.Len(t, cs.Goals, 1)
		assert.Equal(t, int64(6), cs.Goals[0].EntryCount)
		assert.Equal(t, int64(4), cs.Goals[0].Version)
		assert.Equal(t, 1, cs.Len())
	})

	t.Run("Adds To A Pending Write", func(t *testing.T) {
		cs := storage.NewChangeSet()
		goal := models.Goal{ID: "g1", Status: models.GoalActive, EntryCount: 2, Version: 1}
		completed := goal
		completed.Status = models.GoalCompleted
		cs.PutGoal(completed)

		cs.TagGoal(goal, 1)

		require.Len(t, cs.Goals, 1)
		assert.Equal(t, models.GoalCompleted, cs.Goals[0].Status)
		assert.Equal(t, int64(3), cs.Goals[0].EntryCount)
	})
}
