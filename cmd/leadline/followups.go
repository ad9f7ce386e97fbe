package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/common"
	"github.com/leadline-crm/leadline/internal/filter"
	"github.com/leadline-crm/leadline/internal/model"
)

func followupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followups",
		Short: "Manage follow-ups",
		Long:  `List, log, and update follow-ups on leads.`,
	}

	cmd.AddCommand(followupsListCmd())
	cmd.AddCommand(followupsUpcomingCmd())
	cmd.AddCommand(followupsAddCmd())
	cmd.AddCommand(followupsEditCmd())
	cmd.AddCommand(followupsDeleteCmd())

	return cmd
}

func followupsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List follow-ups",
		RunE:  runFollowupsList,
	}

	cmd.Flags().String("search", "", "match lead, feedback, or employee")
	cmd.Flags().String("status", "", "filter by exact status")
	cmd.Flags().String("employee", "", "filter by the employee who followed up")
	cmd.Flags().Bool("cached", false, "list the last cached snapshot without contacting the backend")

	return cmd
}

func runFollowupsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	criteria := filter.Criteria{}
	criteria.Search, _ = cmd.Flags().GetString("search")
	criteria.Status, _ = cmd.Flags().GetString("status")
	criteria.Employee, _ = cmd.Flags().GetString("employee")

	if criteria.Status != "" {
		if _, err := model.ParseStatus(criteria.Status); err != nil {
			return common.NewUserError("unknown status - see 'leadline followups list --help'", err)
		}
	}

	cached, _ := cmd.Flags().GetBool("cached")
	followUps, stale, err := fetchFollowUps(ctx, cached)
	if err != nil {
		return err
	}

	visible := filter.FollowUps(followUps, criteria)
	if len(visible) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No follow-ups match."))
		return nil
	}

	printFollowUpTable(visible)
	if stale {
		fmt.Println(cli.FormatWarning("showing cached data"))
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d of %d follow-ups", len(visible), len(followUps))))
	return nil
}

// fetchFollowUps mirrors fetchLeads for the follow-up collection.
func fetchFollowUps(ctx context.Context, cachedOnly bool) (followUps []model.FollowUp, stale bool, err error) {
	store, cacheErr := openCache(ctx)
	if cacheErr != nil {
		slog.Warn("snapshot cache unavailable", "error", cacheErr)
		store = nil
	} else {
		defer func() {
			_ = store.Close()
		}()
	}

	if cachedOnly {
		if store == nil {
			return nil, false, cacheErr
		}
		followUps, fetchedAt, loadErr := store.LoadFollowUps(ctx)
		if loadErr != nil {
			return nil, false, common.NewUserError("no cached follow-ups - run 'leadline followups list' online first", loadErr)
		}
		fmt.Println(cli.SubtleStyle.Render("cached at " + fetchedAt.Format("2006-01-02 15:04")))
		return followUps, true, nil
	}

	client, _, err := newClient(true)
	if err != nil {
		return nil, false, err
	}

	followUps, err = client.FollowUps(ctx)
	if err != nil {
		if store != nil {
			if cachedFUs, fetchedAt, loadErr := store.LoadFollowUps(ctx); loadErr == nil {
				slog.Warn("follow-up fetch failed, using snapshot", "fetched_at", fetchedAt, "error", err)
				return cachedFUs, true, nil
			}
		}
		return nil, false, err
	}

	if store != nil {
		if saveErr := store.SaveFollowUps(ctx, followUps); saveErr != nil {
			slog.Warn("failed to snapshot follow-ups", "error", saveErr)
		}
	}
	return followUps, false, nil
}

func printFollowUpTable(followUps []model.FollowUp) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEAD\tMOBILE\tDATE\tSTATUS\tFOLLOWED BY\tNEXT\tFEEDBACK")
	for _, f := range followUps {
		next := f.NextFollowUpDate
		if f.NextFollowUpTime != "" {
			next += " " + f.NextFollowUpTime
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Lead.Name, f.Lead.Mobile, f.Date, cli.FormatStatus(f.Status), f.FollowedBy, next, f.Feedback)
	}
	_ = w.Flush()
}

func followupsUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List follow-ups scheduled next",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			followUps, err := client.UpcomingFollowUps(cmd.Context())
			if err != nil {
				return err
			}
			if len(followUps) == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing scheduled."))
				return nil
			}

			printFollowUpTable(followUps)
			return nil
		},
	}
}

// addFollowUpFlags registers the follow-up field flags shared by add and
// edit.
func addFollowUpFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "follow-up date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "follow-up time (HH:MM)")
	cmd.Flags().String("followed-by", "", "employee who followed up")
	cmd.Flags().String("status", "", "resulting pipeline status")
	cmd.Flags().String("feedback", "", "notes from the interaction")
	cmd.Flags().String("next-date", "", "next follow-up date (cleared for Converted/Dropped)")
	cmd.Flags().String("next-time", "", "next follow-up time")
}

// followUpFromFlags overlays the set flags on base and normalizes the
// terminal-status invariant.
func followUpFromFlags(cmd *cobra.Command, base model.FollowUp) model.FollowUp {
	overlay := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}

	overlay("date", &base.Date)
	overlay("time", &base.Time)
	overlay("followed-by", &base.FollowedBy)
	overlay("feedback", &base.Feedback)
	overlay("next-date", &base.NextFollowUpDate)
	overlay("next-time", &base.NextFollowUpTime)
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		base.Status = model.Status(status)
	}

	base.Normalize()
	return base
}

func followupsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <lead-id>",
		Short: "Log a follow-up on a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			fu := followUpFromFlags(cmd, model.FollowUp{
				LeadID: args[0],
				Status: model.StatusNextFollowUp,
			})
			created, err := client.CreateFollowUp(cmd.Context(), fu)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged follow-up %s on lead %s", created.ID, created.LeadID)))
			return nil
		},
	}

	addFollowUpFlags(cmd)

	return cmd
}

func followupsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a follow-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			// The list endpoint is the only read; find the record there.
			followUps, err := client.FollowUps(cmd.Context())
			if err != nil {
				return err
			}
			var current *model.FollowUp
			for i := range followUps {
				if followUps[i].ID == args[0] {
					current = &followUps[i]
					break
				}
			}
			if current == nil {
				return common.NewUserError("follow-up not found", common.ErrNotFound)
			}

			updated, err := client.UpdateFollowUp(cmd.Context(), followUpFromFlags(cmd, *current))
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated follow-up on %s", updated.Lead.Name)))
			return nil
		},
	}

	addFollowUpFlags(cmd)

	return cmd
}

func followupsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a follow-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if skip, _ := cmd.Flags().GetBool("yes"); !skip {
				ok, err := cli.Confirm(os.Stdin, os.Stdout, "Delete this follow-up?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.SubtleStyle.Render("Aborted."))
					return nil
				}
			}

			client, _, err := newClient(true)
			if err != nil {
				return err
			}
			if err := client.DeleteFollowUp(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Deleted follow-up"))
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	return cmd
}
