// Package models defines data structures for configuration and extraction.
package models

// ExtractConfig holds runtime configuration for extract operations.
// All values come from CLI flags, not external config files.
type ExtractConfig struct {
	Inputs      []string
	OutputDir   string
	Format      string // "pretty" or "compact"
	RulesFile   string // optional YAML heading-rule overrides
	WorkerCount int
}
