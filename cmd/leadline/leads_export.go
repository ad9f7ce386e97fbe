package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/model"
)

func leadsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export leads to CSV",
		RunE:  runLeadsExport,
	}

	cmd.Flags().String("output", "", "output file (default: stdout)")
	cmd.Flags().Bool("cached", false, "export the cached snapshot without contacting the backend")

	return cmd
}

func runLeadsExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cached, _ := cmd.Flags().GetBool("cached")
	leads, _, err := fetchLeads(ctx, cached)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	outPath, _ := cmd.Flags().GetString("output")
	if outPath != "" {
		file, createErr := os.Create(outPath)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			_ = file.Close()
		}()
		out = file
	}

	if err := writeLeadCSV(out, leads); err != nil {
		return err
	}

	if outPath != "" {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d leads to %s", len(leads), outPath)))
	}
	return nil
}

func writeLeadCSV(w io.Writer, leads []model.Lead) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(leadCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, l := range leads {
		record := []string{
			l.Name, l.Mobile, l.Email, string(l.Status),
			l.Branch, l.LeadSource, l.Course, l.Specialization, l.HandledBy,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
