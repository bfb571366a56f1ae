package main

import (
	"github.com/chris/pooled-savings/pkg/bootstrap"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd returns the savingsctl command tree. Flags override the
// environment, which overrides the defaults in pkg/config.
func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:          "savingsctl",
		Short:        "Operational commands for the pooled savings service",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("storage-backend", config.BackendMemory, "storage backend: memory or dynamodb")
	flags.String("table-prefix", "pooled-savings-", "prefix of the DynamoDB table names")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	for key, flag := range map[string]string{
		"storage_backend": "storage-backend",
		"table_prefix":    "table-prefix",
		"log_level":       "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newReconcileCmd(v),
		newSeedCmd(v),
	)
	return root
}

// wire builds the service from the merged settings.
func wire(cmd *cobra.Command, v *viper.Viper) (*bootstrap.App, error) {
	cfg, err := config.FromViper(v)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cmd.Context(), cfg)
}
