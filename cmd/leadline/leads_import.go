package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/leadline-crm/leadline/internal/cli"
	"github.com/leadline-crm/leadline/internal/model"
)

func leadsImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import leads from a CSV file",
		Long: `Import leads from a CSV file with a header row. Recognized columns:
name, mobile, email, status, branch, source, course, specialization,
handled_by. Missing status defaults to "Next Follow-up".`,
		Args: cobra.ExactArgs(1),
		RunE: runLeadsImport,
	}

	cmd.Flags().Bool("dry-run", false, "validate the file without creating leads")

	return cmd
}

func runLeadsImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	leads, err := parseLeadCSV(file)
	if err != nil {
		return err
	}
	if len(leads) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing to import."))
		return nil
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d leads parsed, all valid", len(leads))))
		return nil
	}

	client, _, err := newClient(true)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(leads),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Importing leads...[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)

	var failed int
	for _, lead := range leads {
		if _, err := client.CreateLead(ctx, lead); err != nil {
			failed++
			slog.Warn("failed to import lead", "name", lead.Name, "error", err)
		}
		if err := bar.Add(1); err != nil {
			slog.Warn("failed to update progress bar", "error", err)
		}
	}

	imported := len(leads) - failed
	if failed > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Imported %d leads, %d failed", imported, failed)))
		return nil
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d leads", imported)))
	return nil
}

// leadCSVHeader is the canonical column order for export; import accepts
// any column order.
var leadCSVHeader = []string{
	"name", "mobile", "email", "status", "branch", "source", "course", "specialization", "handled_by",
}

// parseLeadCSV reads and validates all rows before anything is sent to
// the backend, so a bad file aborts cleanly instead of half-importing.
func parseLeadCSV(r io.Reader) ([]model.Lead, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("CSV is missing the required 'name' column")
	}
	if _, ok := cols["mobile"]; !ok {
		return nil, fmt.Errorf("CSV is missing the required 'mobile' column")
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var leads []model.Lead
	line := 1
	for {
		record, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", readErr)
		}
		line++

		lead := model.Lead{
			Name:           field(record, "name"),
			Mobile:         field(record, "mobile"),
			Email:          field(record, "email"),
			Branch:         field(record, "branch"),
			LeadSource:     field(record, "source"),
			Course:         field(record, "course"),
			Specialization: field(record, "specialization"),
			HandledBy:      field(record, "handled_by"),
		}

		status := field(record, "status")
		if status == "" {
			lead.Status = model.StatusNextFollowUp
		} else {
			parsed, parseErr := model.ParseStatus(status)
			if parseErr != nil {
				return nil, fmt.Errorf("line %d: %w", line, parseErr)
			}
			lead.Status = parsed
		}

		if err := lead.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		leads = append(leads, lead)
	}

	return leads, nil
}
