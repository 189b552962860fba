package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Run represents one extract invocation
type Run struct {
	RunID         string
	CreatedAt     time.Time
	DocumentCount int
	SuccessCount  int
	FailedCount   int
	OutputDir     string
	EngineVersion string
}

// RunDocument represents one document's result within a run
type RunDocument struct {
	SourceDocument  string
	Status          string
	ConfidenceScore *float64
	WarningCount    int
	OutputPath      string
	ErrorMessage    string
}

// CreateRun inserts a new run record
func (db *DB) CreateRun(runID, outputDir, engineVersion string, documentCount int) error {
	_, err := db.Exec(`
		INSERT INTO runs (run_id, document_count, output_dir, engine_version)
		VALUES (?, ?, ?, ?)
	`, runID, documentCount, outputDir, engineVersion)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// InsertRunDocument records one document's result for a run
func (db *DB) InsertRunDocument(runID string, doc RunDocument) error {
	var outputPath, errorMessage interface{}
	if doc.OutputPath != "" {
		outputPath = doc.OutputPath
	}
	if doc.ErrorMessage != "" {
		errorMessage = doc.ErrorMessage
	}

	_, err := db.Exec(`
		INSERT INTO run_documents (run_id, source_document, status, confidence_score, warning_count, output_path, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, doc.SourceDocument, doc.Status, doc.ConfidenceScore, doc.WarningCount, outputPath, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert run document: %w", err)
	}
	return nil
}

// UpdateRunStats updates the success and failed counts for a run
func (db *DB) UpdateRunStats(runID string, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs
		SET success_count = ?, failed_count = ?
		WHERE run_id = ?
	`, successCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to update run stats: %w", err)
	}
	return nil
}

// GetRunByID retrieves a run by its ID
func (db *DB) GetRunByID(runID string) (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, created_at, document_count, success_count, failed_count, output_dir, engine_version
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.DocumentCount,
		&run.SuccessCount,
		&run.FailedCount,
		&run.OutputDir,
		&run.EngineVersion,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// LatestRun retrieves the most recent run
func (db *DB) LatestRun() (*Run, error) {
	var run Run
	err := db.QueryRow(`
		SELECT run_id, created_at, document_count, success_count, failed_count, output_dir, engine_version
		FROM runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`).Scan(
		&run.RunID,
		&run.CreatedAt,
		&run.DocumentCount,
		&run.SuccessCount,
		&run.FailedCount,
		&run.OutputDir,
		&run.EngineVersion,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no runs recorded")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return &run, nil
}

// GetRunDocuments retrieves all document results for a run
func (db *DB) GetRunDocuments(runID string) ([]RunDocument, error) {
	rows, err := db.Query(`
		SELECT source_document, status, confidence_score, warning_count, output_path, error_message
		FROM run_documents
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run documents: %w", err)
	}
	defer rows.Close()

	var docs []RunDocument
	for rows.Next() {
		var d RunDocument
		var outputPath, errorMessage sql.NullString
		if err := rows.Scan(&d.SourceDocument, &d.Status, &d.ConfidenceScore, &d.WarningCount, &outputPath, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan run document: %w", err)
		}
		if outputPath.Valid {
			d.OutputPath = outputPath.String
		}
		if errorMessage.Valid {
			d.ErrorMessage = errorMessage.String
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

// ListRuns retrieves all runs ordered by most recent first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, document_count, success_count, failed_count, output_dir, engine_version
		FROM runs
		ORDER BY created_at DESC, rowid DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.DocumentCount, &r.SuccessCount,
			&r.FailedCount, &r.OutputDir, &r.EngineVersion); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
