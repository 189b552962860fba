package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/insuretext/policyscan/internal/common"
	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/schema"
	"github.com/insuretext/policyscan/pkg/storage"
)

func ValidateAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	inputs, invalid := common.CollectInputs(c.Args().Slice())
	for _, arg := range invalid {
		logger.Error("invalid input", "arg", arg)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No record files provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  policyscan validate records/schedule.json`)
		fmt.Fprintln(os.Stderr, `  policyscan validate --summary "records/*.json"`)
		os.Exit(1)
	}

	s := &storage.Storage{}
	failed := 0
	for _, path := range inputs {
		if !s.HasFile(path) {
			logger.Error("record file not found", "path", path)
			failed++
			continue
		}
		data, err := s.ReadFile(path)
		if err != nil {
			logger.Error("failed to read record", "path", path, "error", err)
			failed++
			continue
		}

		warnings, err := schema.Validate(data)
		if err != nil {
			fmt.Printf("INVALID  %s\n", path)
			fmt.Printf("         %s\n", err)
			failed++
			continue
		}

		fmt.Printf("VALID    %s", path)
		if len(warnings) > 0 {
			fmt.Printf("  (%d warnings)", len(warnings))
		}
		fmt.Println()
		for _, w := range warnings {
			fmt.Printf("         warning: %s\n", w)
		}

		if c.Bool("summary") {
			var record models.PolicyRecord
			if err := json.Unmarshal(data, &record); err == nil {
				printSummary(&record)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed validation", failed, len(inputs))
	}
	return nil
}

// printSummary renders the reviewer-facing digest of one record.
func printSummary(record *models.PolicyRecord) {
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Policyholder:  %s\n", orDash(record.Policyholder.Name))
	fmt.Printf("Policy number: %s\n", orDash(record.PolicyDetails.PolicyNumber))
	fmt.Printf("Insurer:       %s\n", orDash(record.PolicyDetails.InsurerName))
	if score := record.ExtractionMetadata.ConfidenceScore; score != nil {
		fmt.Printf("Confidence:    %.2f\n", *score)
	}

	fmt.Printf("Sections (%d):\n", len(record.Sections))
	for _, section := range record.Sections {
		detail := fmt.Sprintf("%d items", len(section.Items))
		if len(section.Vehicles) > 0 {
			detail = fmt.Sprintf("%d vehicles", len(section.Vehicles))
		}
		premium := "-"
		if section.TotalSectionPremium != nil {
			premium = fmt.Sprintf("R %.2f", *section.TotalSectionPremium)
		}
		fmt.Printf("  %-24s %-14s premium %s\n", section.SectionName, detail, premium)
	}

	if total := record.PremiumSummary.TotalPremium; total != nil {
		fmt.Printf("Total premium: R %.2f\n", *total)
	}
	fmt.Println(strings.Repeat("-", 60))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
