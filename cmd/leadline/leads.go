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

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage leads",
		Long:  `List, search, add, edit, and delete leads in the pipeline.`,
	}

	cmd.AddCommand(leadsListCmd())
	cmd.AddCommand(leadsSearchCmd())
	cmd.AddCommand(leadsAddCmd())
	cmd.AddCommand(leadsEditCmd())
	cmd.AddCommand(leadsDeleteCmd())
	cmd.AddCommand(leadsImportCmd())
	cmd.AddCommand(leadsExportCmd())

	return cmd
}

func leadsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		RunE:  runLeadsList,
	}

	cmd.Flags().String("search", "", "match name, mobile, or email")
	cmd.Flags().String("status", "", "filter by exact status")
	cmd.Flags().String("branch", "", "filter by branch")
	cmd.Flags().String("source", "", "filter by lead source")
	cmd.Flags().Bool("cached", false, "list the last cached snapshot without contacting the backend")

	return cmd
}

func runLeadsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	criteria := filter.Criteria{}
	criteria.Search, _ = cmd.Flags().GetString("search")
	criteria.Status, _ = cmd.Flags().GetString("status")
	criteria.Branch, _ = cmd.Flags().GetString("branch")
	criteria.Source, _ = cmd.Flags().GetString("source")

	if criteria.Status != "" {
		if _, err := model.ParseStatus(criteria.Status); err != nil {
			return common.NewUserError("unknown status - see 'leadline leads list --help'", err)
		}
	}

	cached, _ := cmd.Flags().GetBool("cached")
	leads, stale, err := fetchLeads(ctx, cached)
	if err != nil {
		return err
	}

	visible := filter.Leads(leads, criteria)
	if len(visible) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No leads match."))
		return nil
	}

	printLeadTable(visible)
	if stale {
		fmt.Println(cli.FormatWarning("showing cached data"))
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d of %d leads", len(visible), len(leads))))
	return nil
}

// fetchLeads returns the lead collection, from the backend or from the
// snapshot cache. A live fetch refreshes the snapshot; a failed one
// falls back to it.
func fetchLeads(ctx context.Context, cachedOnly bool) (leads []model.Lead, stale bool, err error) {
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
		leads, fetchedAt, loadErr := store.LoadLeads(ctx)
		if loadErr != nil {
			return nil, false, common.NewUserError("no cached leads - run 'leadline leads list' online first", loadErr)
		}
		fmt.Println(cli.SubtleStyle.Render("cached at " + fetchedAt.Format("2006-01-02 15:04")))
		return leads, true, nil
	}

	client, _, err := newClient(true)
	if err != nil {
		return nil, false, err
	}

	leads, err = client.Leads(ctx)
	if err != nil {
		if store != nil {
			if cachedLeads, fetchedAt, loadErr := store.LoadLeads(ctx); loadErr == nil {
				slog.Warn("lead fetch failed, using snapshot", "fetched_at", fetchedAt, "error", err)
				return cachedLeads, true, nil
			}
		}
		return nil, false, err
	}

	if store != nil {
		if saveErr := store.SaveLeads(ctx, leads); saveErr != nil {
			slog.Warn("failed to snapshot leads", "error", saveErr)
		}
	}
	return leads, false, nil
}

func printLeadTable(leads []model.Lead) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMOBILE\tEMAIL\tSTATUS\tBRANCH\tSOURCE\tHANDLED BY")
	for _, l := range leads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Name, l.Mobile, l.Email, cli.FormatStatus(l.Status), l.Branch, l.LeadSource, l.HandledBy)
	}
	_ = w.Flush()
}

func leadsSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search leads by mobile number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mobile, _ := cmd.Flags().GetString("mobile")
			if mobile == "" {
				return fmt.Errorf("--mobile is required")
			}

			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			leads, err := client.SearchLeadsByMobile(cmd.Context(), mobile)
			if err != nil {
				return err
			}
			if len(leads) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No leads match."))
				return nil
			}

			printLeadTable(leads)
			return nil
		},
	}

	cmd.Flags().String("mobile", "", "mobile number or fragment")

	return cmd
}

// addLeadFlags registers the lead field flags shared by add and edit.
func addLeadFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "lead name")
	cmd.Flags().String("mobile", "", "mobile number")
	cmd.Flags().String("email", "", "email address")
	cmd.Flags().String("status", "", "pipeline status")
	cmd.Flags().String("branch", "", "branch")
	cmd.Flags().String("source", "", "lead source")
	cmd.Flags().String("course", "", "course of interest")
	cmd.Flags().String("specialization", "", "course specialization")
	cmd.Flags().String("handled-by", "", "employee handling the lead")
}

// leadFromFlags overlays the set flags on base.
func leadFromFlags(cmd *cobra.Command, base model.Lead) model.Lead {
	overlay := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}

	overlay("name", &base.Name)
	overlay("mobile", &base.Mobile)
	overlay("email", &base.Email)
	overlay("branch", &base.Branch)
	overlay("source", &base.LeadSource)
	overlay("course", &base.Course)
	overlay("specialization", &base.Specialization)
	overlay("handled-by", &base.HandledBy)
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		base.Status = model.Status(status)
	}
	return base
}

func leadsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lead",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			lead := leadFromFlags(cmd, model.Lead{Status: model.StatusNextFollowUp})
			created, err := client.CreateLead(cmd.Context(), lead)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added lead %s (%s)", created.Name, created.ID)))
			return nil
		},
	}

	addLeadFlags(cmd)

	return cmd
}

func leadsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newClient(true)
			if err != nil {
				return err
			}

			current, err := client.Lead(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			updated, err := client.UpdateLead(cmd.Context(), leadFromFlags(cmd, current))
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated lead %s", updated.Name)))
			return nil
		},
	}

	addLeadFlags(cmd)

	return cmd
}

func leadsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a lead",
		RunE:  runLeadsDelete,
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")

	return cmd
}

func runLeadsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, _, err := newClient(true)
	if err != nil {
		return err
	}

	lead, err := client.Lead(ctx, args[0])
	if err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("yes"); !skip {
		ok, confirmErr := cli.Confirm(os.Stdin, os.Stdout,
			fmt.Sprintf("Delete lead %q (%s)?", lead.Name, lead.Mobile))
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			fmt.Println(cli.SubtleStyle.Render("Aborted."))
			return nil
		}
	}

	if err := client.DeleteLead(ctx, lead.ID); err != nil {
		return err
	}

	// Keep the snapshot consistent with the backend.
	if store, cacheErr := openCache(ctx); cacheErr == nil {
		if err := store.DeleteLead(ctx, lead.ID); err != nil {
			slog.Warn("failed to drop cached lead", "lead_id", lead.ID, "error", err)
		}
		_ = store.Close()
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted lead %s", lead.Name)))
	return nil
}
