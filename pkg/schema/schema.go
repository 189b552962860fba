// Package schema validates marshaled policy records against the canonical
// record schema and produces the human-readable consistency warnings the
// validate command prints.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/insuretext/policyscan/models"
)

//go:embed policy_record.schema.json
var schemaJSON []byte

var compiled = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("policy_record.schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("policy_record.schema.json")
})

// Validate checks raw JSON against the record schema. A schema violation is
// returned as an error; consistency findings that do not violate the schema
// come back as warnings.
func Validate(data []byte) ([]string, error) {
	schema, err := compiled()
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("record does not match schema: %w", err)
	}

	var record models.PolicyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return Warnings(&record), nil
}

// Warnings walks a record for gaps that are legal under the schema but worth
// a reviewer's attention.
func Warnings(record *models.PolicyRecord) []string {
	warnings := []string{}

	if record.PolicyDetails.PolicyNumber == nil {
		warnings = append(warnings, "policy_details.policy_number is null")
	}
	if record.Policyholder.Name == nil {
		warnings = append(warnings, "policyholder.name is null")
	}
	if len(record.Sections) == 0 {
		warnings = append(warnings, "no sections extracted")
	}
	if record.PremiumSummary.TotalPremium == nil {
		warnings = append(warnings, "premium_summary.total_premium is null")
	}
	if score := record.ExtractionMetadata.ConfidenceScore; score != nil && *score < 0.5 {
		warnings = append(warnings, fmt.Sprintf("confidence score %.2f is below 0.50", *score))
	}

	for i, section := range record.Sections {
		if len(section.Items) == 0 && len(section.Vehicles) == 0 && section.FallbackNotes == nil {
			warnings = append(warnings, fmt.Sprintf("sections[%d] (%s) has no items, vehicles, or fallback notes", i, section.SectionName))
		}
		for j, item := range section.Items {
			if item.SumInsured != nil && item.SumInsuredText != nil {
				warnings = append(warnings, fmt.Sprintf("sections[%d].items[%d] has both numeric and text sum insured", i, j))
			}
			if item.SumInsuredIsTextBased && item.SumInsuredText == nil {
				warnings = append(warnings, fmt.Sprintf("sections[%d].items[%d] flagged text-based without text", i, j))
			}
		}
	}
	return warnings
}
