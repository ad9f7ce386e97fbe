package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leadline-crm/leadline/internal/charts"
	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/model"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show performance statistics",
		RunE:  runStats,
	}

	cmd.Flags().String("range", "daily", "time bucket for the performance series (daily, weekly, monthly)")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	bucket, _ := cmd.Flags().GetString("range")
	timeRange := charts.TimeRange(bucket)

	client, _, err := newClient(true)
	if err != nil {
		return err
	}

	var (
		employees []model.EmployeePerformance
		series    []model.PerformancePoint
		bySource  []model.SourcePerformance
		byBranch  []model.BranchPerformance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var gerr error
		employees, gerr = client.EmployeePerformance(gctx)
		return gerr
	})
	g.Go(func() error {
		var gerr error
		series, gerr = client.PerformanceSeries(gctx, string(timeRange))
		return gerr
	})
	g.Go(func() error {
		var gerr error
		bySource, gerr = client.SourceWisePerformance(gctx)
		return gerr
	})
	g.Go(func() error {
		var gerr error
		byBranch, gerr = client.BranchWisePerformance(gctx)
		return gerr
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Lead performance (%s)", timeRange.Label())))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  DATE\tLEADS\tCONVERTED")
	for _, p := range series {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", p.Date, p.Leads, p.Converted)
	}
	_ = w.Flush()
	fmt.Println()

	fmt.Println(cli.FormatTitle("Employee workload"))
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  EMPLOYEE\tLEADS\tFOLLOW-UPS")
	for _, e := range employees {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", e.Name, e.LeadsCount, e.FollowUpsCount)
	}
	_ = w.Flush()
	fmt.Println()

	fmt.Println(cli.FormatTitle("Source performance"))
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  SOURCE\tLEADS\tCONVERTED")
	for _, s := range bySource {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", s.Source, s.Leads, s.Converted)
	}
	_ = w.Flush()
	fmt.Println()

	fmt.Println(cli.FormatTitle("Branch performance"))
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  BRANCH\tLEADS\tCONVERTED")
	for _, b := range byBranch {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", b.Branch, b.Leads, b.Converted)
	}
	_ = w.Flush()

	return nil
}
