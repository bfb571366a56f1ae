package bootstrap_test

import (
	"context"
	"testing"

	"github.com/chris/pooled-savings/pkg/bootstrap"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/chris/pooled-savings/pkg/money"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Memory Backend Without Events", func(t *testing.T) {
		// Arrange
		v := viper.New()
		config.Defaults(v)
		cfg, err := config.FromViper(v)
		require.NoError(t, err)

		// Act
		app, err := bootstrap.New(context.Background(), cfg)

		// Assert
		require.NoError(t, err)
		assert.IsType(t, &notify.NoOpPublisher{}, app.Publisher)
		res, err := app.Service.RecordSavings(context.Background(), "user1", money.FromInt(20))
		require.NoError(t, err)
		assert.Equal(t, "20.00", res.Aggregate.String())
	})
}
