package runs

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/insuretext/policyscan/pkg/db"
)

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	limit := c.Int("limit")
	runs, err := database.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	// Print table header
	fmt.Printf("%-38s %-20s %-6s %-8s %-8s %-20s\n",
		"Run ID", "Created", "Docs", "Success", "Failed", "Output Dir")
	fmt.Println(strings.Repeat("-", 104))

	for _, r := range runs {
		fmt.Printf("%-38s %-20s %-6d %-8d %-8d %-20s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.DocumentCount,
			r.SuccessCount,
			r.FailedCount,
			r.OutputDir,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'policyscan runs show <run-id>' to see details\n")

	return nil
}

// RunAction shows details for a specific run
func RunAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	run, err := getRunOrLatest(c, database)
	if err != nil {
		return err
	}

	docs, err := database.GetRunDocuments(run.RunID)
	if err != nil {
		return fmt.Errorf("failed to get run documents: %w", err)
	}

	fmt.Printf("Run %s\n", run.RunID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Created:     %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Output Dir:  %s\n", run.OutputDir)
	fmt.Printf("Engine:      %s\n", run.EngineVersion)
	fmt.Printf("Documents:   %d total (%d success, %d failed)\n",
		run.DocumentCount, run.SuccessCount, run.FailedCount)

	if len(docs) > 0 {
		fmt.Printf("\nDocuments (%d):\n", len(docs))
		fmt.Println(strings.Repeat("-", 60))
		for i, d := range docs {
			fmt.Printf("%2d. [%s] %s\n", i+1, d.Status, d.SourceDocument)
			if d.Status == "failed" {
				fmt.Printf("    Error: %s\n", d.ErrorMessage)
				continue
			}
			confidence := "-"
			if d.ConfidenceScore != nil {
				confidence = fmt.Sprintf("%.2f", *d.ConfidenceScore)
			}
			fmt.Printf("    Confidence: %s | Warnings: %d | Output: %s\n",
				confidence, d.WarningCount, d.OutputPath)
		}
	}

	return nil
}

// getRunOrLatest returns the run named in args, or the latest run if none.
func getRunOrLatest(c *cli.Context, database *dbpkg.DB) (*dbpkg.Run, error) {
	if c.NArg() == 0 {
		run, err := database.LatestRun()
		if err != nil {
			return nil, fmt.Errorf("no runs found. Run 'policyscan extract <files>' first")
		}
		return run, nil
	}
	return database.GetRunByID(c.Args().First())
}
