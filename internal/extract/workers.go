package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/insuretext/policyscan/internal/common"
	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/assemble"
	"github.com/insuretext/policyscan/pkg/pagetext"
	"github.com/insuretext/policyscan/pkg/schema"
	"github.com/insuretext/policyscan/pkg/segment"
	"github.com/insuretext/policyscan/pkg/storage"
)

// Job defines a task for a worker to perform.
type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Path          string
	Source        string
	Record        *models.PolicyRecord
	OutputPath    string
	ContentHash   string
	Warnings      []string
	Error         error
	ErrorType     string
	FileSizeBytes int64
}

// worker is a goroutine that processes jobs from the jobs channel and sends
// results to the results channel.
func worker(id int, logger *slog.Logger, config *models.ExtractConfig, rules []segment.Rule, s *storage.Storage, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "path", job.Path)
		result := Result{Path: job.Path, Source: filepath.Base(job.Path)}

		doc, quality, err := pagetext.FromFile(job.Path)
		if err != nil {
			logger.Error("Error reading document", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "read_error"
			results <- result
			continue
		}
		if quality.LowQuality() {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"low extraction quality: %.0f chars/page, %.0f%% printable", quality.CharsPerPage, quality.PrintableRatio*100))
			logger.Warn("Low extraction quality", "worker_id", id, "path", job.Path,
				"chars_per_page", quality.CharsPerPage, "printable_ratio", quality.PrintableRatio)
		}

		text := doc.Text()
		result.ContentHash = common.ContentHash([]byte(text))
		regions := segment.Segment(text, rules)
		record, err := assemble.Assemble(doc, regions)
		if err != nil {
			logger.Error("Error assembling record", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "assemble_error"
			results <- result
			continue
		}
		record.ExtractionMetadata.Language = pagetext.DetectLanguage(text)
		result.Record = record
		result.Warnings = append(result.Warnings, schema.Warnings(record)...)

		outputName := strings.TrimSuffix(result.Source, filepath.Ext(result.Source)) + ".json"
		outputPath, err := s.SaveJSON(config.OutputDir, outputName, record, config.Format != "compact")
		if err != nil {
			logger.Error("Error saving record", "worker_id", id, "path", job.Path, "error", err)
			result.Error = err
			result.ErrorType = "save_error"
			results <- result
			continue
		}
		result.OutputPath = outputPath
		if stats, err := s.GetFileStats(outputPath); err == nil {
			result.FileSizeBytes = stats.SizeBytes
		}

		results <- result
		logger.Info("Worker finished job", "worker_id", id, "path", job.Path,
			"confidence", confidenceValue(record), "warnings", len(result.Warnings))
	}
}

func confidenceValue(record *models.PolicyRecord) float64 {
	if record.ExtractionMetadata.ConfidenceScore == nil {
		return 0
	}
	return *record.ExtractionMetadata.ConfidenceScore
}

// run fans the input files out over the worker pool and collects results in
// input order.
func run(logger *slog.Logger, config *models.ExtractConfig, rules []segment.Rule) ([]Result, error) {
	s := &storage.Storage{}

	logger.Info("Starting concurrent extract phase", "document_count", len(config.Inputs), "workers", config.WorkerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(config.Inputs))
	results := make(chan Result, len(config.Inputs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go worker(w, logger, config, rules, s, &wg, jobs, results)
	}

	for _, path := range config.Inputs {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All extract workers finished")

	byPath := make(map[string]Result, len(config.Inputs))
	var runErr error
	for result := range results {
		byPath[result.Path] = result
		if result.Error != nil {
			runErr = fmt.Errorf("one or more documents failed")
		}
	}

	ordered := make([]Result, 0, len(config.Inputs))
	for _, path := range config.Inputs {
		ordered = append(ordered, byPath[path])
	}
	return ordered, runErr
}
