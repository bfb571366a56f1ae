// Package bootstrap builds the savings service and its collaborators from
// a config.Config. Every binary starts here.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/chris/pooled-savings/pkg/storage"
	storagedynamodb "github.com/chris/pooled-savings/pkg/storage/dynamodb"
	"github.com/chris/pooled-savings/pkg/storage/memory"
)

// App is a fully wired service.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	Service   *savings.Service
	Publisher notify.Publisher
}

// NewLogger returns a JSON logger at the configured level and installs it
// as the default.
func NewLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

// New wires storage, the event publisher and the service. AWS credentials
// are only loaded when the DynamoDB backend or an events queue is configured.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg)

	var awsCfg *aws.Config
	loadAWS := func() (aws.Config, error) {
		if awsCfg == nil {
			c, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
			}
			awsCfg = &c
		}
		return *awsCfg, nil
	}

	var store storage.Storage
	switch cfg.StorageBackend {
	case config.BackendDynamoDB:
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		store = storagedynamodb.New(dynamodb.NewFromConfig(c), storagedynamodb.DefaultTables(cfg.TablePrefix))
	default:
		logger.Warn("using in-memory storage, data will not survive a restart")
		store = memory.New()
	}

	var publisher notify.Publisher = &notify.NoOpPublisher{}
	if cfg.EventsQueueURL != "" {
		c, err := loadAWS()
		if err != nil {
			return nil, err
		}
		publisher = notify.NewSQSPublisher(sqs.NewFromConfig(c), cfg.EventsQueueURL)
	}

	svc := savings.New(store,
		savings.WithLogger(logger),
		savings.WithMaxRetries(cfg.MaxRetries),
	)

	logger.Info("service wired",
		slog.String("storage_backend", cfg.StorageBackend),
		slog.Bool("events_enabled", cfg.EventsQueueURL != ""),
	)
	return &App{Config: cfg, Logger: logger, Service: svc, Publisher: publisher}, nil
}
