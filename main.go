package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/insuretext/policyscan/internal/extract"
	"github.com/insuretext/policyscan/internal/runs"
	"github.com/insuretext/policyscan/internal/validate"
)

func main() {
	app := &cli.App{
		Name:  "policyscan",
		Usage: "extract structured policy records from insurance schedule documents",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "Extract policy records from schedule documents (PDF, HTML, or text)",
				ArgsUsage: "<file|dir|glob> [...]",
				Action:    extract.ExtractAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "output-dir",
						Value: "records",
						Usage: "directory for extracted JSON records",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "pretty",
						Usage: "JSON output format: pretty or compact",
					},
					&cli.StringFlag{
						Name:  "rules",
						Usage: "YAML file with insurer-specific heading rules",
					},
					&cli.IntFlag{
						Name:  "workers",
						Value: 4,
						Usage: "number of concurrent extraction workers",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate extracted records against the record schema",
				ArgsUsage: "<file|dir|glob> [...]",
				Action:    validate.ValidateAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "summary",
						Usage: "print a reviewer summary for each valid record",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
			},
			{
				Name:  "runs",
				Usage: "Inspect extraction run history",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List recorded runs, most recent first",
						Action: runs.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "limit",
								Value: 20,
								Usage: "maximum number of runs to list",
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Show one run's per-document results (defaults to the latest run)",
						ArgsUsage: "[run-id]",
						Action:    runs.RunAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
