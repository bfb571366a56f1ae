package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/chris/pooled-savings/pkg/models"
	"github.com/chris/pooled-savings/pkg/savings"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newReconcileCmd(v *viper.Viper) *cobra.Command {
	var year, month int
	var repair bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check cached monthly totals and pool requests against the ledger",
		Long: `Sum every user's ledger entries for a month and compare them with the
cached monthly totals, then check every active and completed pool request
against its contributions and distribution entries.

Example:
  $ savingsctl reconcile --year 2026 --month 9 --repair`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period := models.PeriodOf(time.Now())
			if cmd.Flags().Changed("year") {
				period.Year = year
			}
			if cmd.Flags().Changed("month") {
				period.Month = month
			}

			app, err := wire(cmd, v)
			if err != nil {
				return err
			}
			return runReconcile(cmd.Context(), app.Service, period, repair, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "year to check (defaults to the current year)")
	cmd.Flags().IntVar(&month, "month", 0, "month to check, 1-12 (defaults to the current month)")
	cmd.Flags().BoolVar(&repair, "repair", false, "reset drifting monthly totals to their ledger sums")
	return cmd
}

func runReconcile(ctx context.Context, svc *savings.Service, period models.Period, repair bool, out io.Writer) error {
	report, err := svc.ReconcileAll(ctx, period)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %d aggregates and %d requests checked\n", period, report.AggregatesChecked, report.RequestsChecked)
	if report.Clean() {
		fmt.Fprintln(out, "no drift found")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if len(report.Aggregates) > 0 {
		fmt.Fprintln(tw, "USER\tLEDGER\tCACHED\tDIFFERENCE\tREPAIRED")
		for _, drift := range report.Aggregates {
			repaired := "no"
			if repair {
				if err := svc.RepairAggregate(ctx, drift); err != nil {
					repaired = "failed: " + err.Error()
				} else {
					repaired = "yes"
				}
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", drift.UserID, drift.Ledger, drift.Cached, drift.Difference(), repaired)
		}
	}
	if len(report.Requests) > 0 {
		fmt.Fprintln(tw, "REQUEST\tSTATUS\tCURRENT\tCONTRIBUTED\tPROBLEM")
		for _, drift := range report.Requests {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", drift.RequestID, drift.Status, drift.CurrentAmount, drift.Contributions, drift.Problem)
		}
	}
	return tw.Flush()
}
