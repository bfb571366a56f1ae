package notify_test

import (
	"context"
	"testing"

	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	ctx := context.Background()
	event := notify.Event{Type: notify.EventLevelUp, UserID: "user1"}

	t.Run("Every Publisher Sees The Event", func(t *testing.T) {
		first, second := mocks.NewPublisher(t), mocks.NewPublisher(t)
		first.On("Publish", ctx, event).Return(nil).Once()
		second.On("Publish", ctx, event).Return(nil).Once()

		assert.NoError(t, notify.Fanout{first, second}.Publish(ctx, event))
	})

	t.Run("Failure Does Not Stop Delivery", func(t *testing.T) {
		first, second := mocks.NewPublisher(t), mocks.NewPublisher(t)
		first.On("Publish", ctx, event).Return(assert.AnError).Once()
		second.On("Publish", ctx, event).Return(nil).Once()

		err := notify.Fanout{first, second}.Publish(ctx, event)

		assert.ErrorIs(t, err, assert.AnError)
	})
}
