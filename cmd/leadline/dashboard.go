package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leadline-crm/leadline/internal/api"
	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/model"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the pipeline overview",
		RunE:  runDashboard,
	}
}

// dashboardData joins the dashboard reads; one failure aborts the whole
// batch so the summary is never partially populated.
type dashboardData struct {
	stats        model.DashboardStats
	bySource     []model.SourcePerformance
	byBranch     []model.BranchPerformance
	followUpPerf model.FollowUpPerformance
	conversion   model.ConversionRatio
	recentLeads  []model.Lead
	upcoming     []model.FollowUp
}

func loadDashboardData(ctx context.Context, client *api.Client) (dashboardData, error) {
	var data dashboardData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.stats, err = client.DashboardStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.bySource, err = client.LeadsBySource(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.byBranch, err = client.LeadsByBranch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.followUpPerf, err = client.FollowUpPerformance(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.conversion, err = client.ConversionRatio(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.recentLeads, err = client.RecentLeads(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.upcoming, err = client.UpcomingFollowUps(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboardData{}, err
	}
	return data, nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	client, _, err := newClient(true)
	if err != nil {
		return err
	}

	data, err := loadDashboardData(cmd.Context(), client)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Pipeline"))
	fmt.Printf("  Total: %d   Converted: %s   Pending: %s   Dropped: %s\n",
		data.stats.TotalLeads,
		cli.SuccessStyle.Render(fmt.Sprintf("%d", data.stats.ConvertedLeads)),
		cli.WarningStyle.Render(fmt.Sprintf("%d", data.stats.PendingLeads)),
		cli.ErrorStyle.Render(fmt.Sprintf("%d", data.stats.DroppedLeads)))
	fmt.Printf("  Conversion: %d of %d (%.1f%%)\n",
		data.conversion.Converted, data.conversion.Total, data.conversion.Ratio*100)
	fmt.Printf("  Follow-ups: %d done, %d pending\n\n",
		data.followUpPerf.Completed, data.followUpPerf.Pending)

	fmt.Println(cli.FormatTitle("Leads by source"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  SOURCE\tLEADS\tCONVERTED")
	for _, s := range data.bySource {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", s.Source, s.Leads, s.Converted)
	}
	_ = w.Flush()
	fmt.Println()

	fmt.Println(cli.FormatTitle("Leads by branch"))
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  BRANCH\tLEADS\tCONVERTED")
	for _, b := range data.byBranch {
		fmt.Fprintf(w, "  %s\t%d\t%d\n", b.Branch, b.Leads, b.Converted)
	}
	_ = w.Flush()
	fmt.Println()

	if len(data.recentLeads) > 0 {
		fmt.Println(cli.FormatTitle("Recent leads"))
		for _, l := range data.recentLeads {
			fmt.Printf("  %s (%s)\n", l.Name, cli.FormatStatus(l.Status))
		}
		fmt.Println()
	}

	if len(data.upcoming) > 0 {
		fmt.Println(cli.FormatTitle("Upcoming follow-ups"))
		for _, f := range data.upcoming {
			when := f.NextFollowUpDate
			if f.NextFollowUpTime != "" {
				when += " " + f.NextFollowUpTime
			}
			fmt.Printf("  %s - %s\n", f.Lead.Name, when)
		}
	}

	return nil
}
