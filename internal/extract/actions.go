package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/insuretext/policyscan/internal/common"
	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/assemble"
	"github.com/insuretext/policyscan/pkg/db"
	"github.com/insuretext/policyscan/pkg/segment"
	"github.com/insuretext/policyscan/pkg/storage"
)

// runIndex is the YAML summary written next to the extracted records.
type runIndex struct {
	RunID         string          `yaml:"run_id"`
	CreatedAt     string          `yaml:"created_at"`
	EngineVersion string          `yaml:"engine_version"`
	DocumentCount int             `yaml:"document_count"`
	SuccessCount  int             `yaml:"success_count"`
	FailedCount   int             `yaml:"failed_count"`
	Documents     []runIndexEntry `yaml:"documents"`
}

type runIndexEntry struct {
	Source      string   `yaml:"source"`
	ContentHash string   `yaml:"content_sha256,omitempty"`
	Status      string   `yaml:"status"`
	OutputPath  string   `yaml:"output_path,omitempty"`
	Confidence  *float64 `yaml:"confidence,omitempty"`
	Warnings    []string `yaml:"warnings,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))
	startTime := time.Now()

	inputs, invalid := common.CollectInputs(c.Args().Slice())
	for _, arg := range invalid {
		logger.Error("invalid input", "arg", arg)
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input documents provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  policyscan extract schedule.pdf`)
		fmt.Fprintln(os.Stderr, `  policyscan extract --output-dir records "schedules/*.txt"`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: policyscan extract --help")
		os.Exit(1)
	}

	config := &models.ExtractConfig{
		Inputs:      inputs,
		OutputDir:   c.String("output-dir"),
		Format:      c.String("format"),
		RulesFile:   c.String("rules"),
		WorkerCount: c.Int("workers"),
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
	if config.Format != "compact" {
		config.Format = "pretty"
	}

	rules := segment.DefaultRules()
	if config.RulesFile != "" {
		var err error
		rules, err = segment.LoadRules(config.RulesFile)
		if err != nil {
			logger.Error("failed to load heading rules", "error", err)
			os.Exit(2)
		}
		logger.Info("Loaded heading rules", "path", config.RulesFile, "rule_count", len(rules))
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runID := uuid.NewString()
	if err := database.CreateRun(runID, config.OutputDir, assemble.Version, len(config.Inputs)); err != nil {
		logger.Error("failed to record run", "error", err)
		os.Exit(2)
	}

	results, runErr := run(logger, config, rules)

	successCount := 0
	failedCount := 0
	index := runIndex{
		RunID:         runID,
		CreatedAt:     startTime.UTC().Format(time.RFC3339),
		EngineVersion: assemble.Version,
		DocumentCount: len(results),
	}
	for _, result := range results {
		entry := runIndexEntry{Source: result.Source, ContentHash: result.ContentHash, Warnings: result.Warnings}
		doc := db.RunDocument{
			SourceDocument: result.Source,
			WarningCount:   len(result.Warnings),
			OutputPath:     result.OutputPath,
		}
		if result.Error != nil {
			failedCount++
			entry.Status = "failed"
			entry.Error = result.Error.Error()
			doc.Status = "failed"
			doc.ErrorMessage = result.Error.Error()
		} else {
			successCount++
			entry.Status = "success"
			entry.OutputPath = result.OutputPath
			entry.Confidence = result.Record.ExtractionMetadata.ConfidenceScore
			doc.Status = "success"
			doc.ConfidenceScore = result.Record.ExtractionMetadata.ConfidenceScore
		}
		index.Documents = append(index.Documents, entry)

		if err := database.InsertRunDocument(runID, doc); err != nil {
			logger.Error("failed to record document result", "source", result.Source, "error", err)
		}
	}
	index.SuccessCount = successCount
	index.FailedCount = failedCount

	if err := database.UpdateRunStats(runID, successCount, failedCount); err != nil {
		logger.Error("failed to update run stats", "error", err)
	}
	if err := writeRunIndex(config.OutputDir, index); err != nil {
		logger.Error("failed to write run index", "error", err)
	}

	logger.Info("Run complete", "run_id", runID, "success", successCount, "failed", failedCount,
		"duration", time.Since(startTime).Round(time.Millisecond).String())
	fmt.Printf("Run %s: %d succeeded, %d failed (output: %s)\n", runID, successCount, failedCount, config.OutputDir)

	return runErr
}

// writeRunIndex saves the YAML run summary into the output directory.
func writeRunIndex(outputDir string, index runIndex) error {
	s := &storage.Storage{}
	if err := s.EnsureDir(outputDir); err != nil {
		return err
	}
	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("marshal run index: %w", err)
	}
	return s.SaveFile(filepath.Join(outputDir, "run.yaml"), data)
}
