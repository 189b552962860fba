// Package assemble drives one extraction: it validates the document, walks
// the segmented regions in order, dispatches each to its extractor, and folds
// the fragments into a single policy record.
package assemble

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/extractors"
)

// Version identifies the record format produced by this engine build.
const Version = "1.0.0"

// Assemble builds the policy record for a segmented document. The only error
// it returns is models.ErrEmptyDocument; every extraction gap inside a usable
// document becomes a null field instead.
func Assemble(doc models.Document, regions []models.Region) (*models.PolicyRecord, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("assemble %s: %w", doc.Source, err)
	}

	record := models.NewPolicyRecord(models.ExtractionMetadata{
		RunID:             uuid.NewString(),
		ExtractedAt:       time.Now().UTC().Format(time.RFC3339),
		SourceDocument:    doc.Source,
		ExtractionVersion: Version,
	})

	for _, region := range regions {
		switch region.Kind {
		case models.RegionPolicyDetails:
			record.PolicyDetails = extractors.ExtractPolicyDetails(region)
		case models.RegionPolicyholder:
			record.Policyholder = extractors.ExtractPolicyholder(region)
		case models.RegionBroker:
			record.Broker = extractors.ExtractBroker(region)
		case models.RegionPremiumSummary:
			record.PremiumSummary = extractors.ExtractPremiumSummary(region)
		case models.RegionSection:
			record.Sections = append(record.Sections, extractors.ExtractSection(region))
		case models.RegionGeneralEndorsements:
			merged := extractors.ExtractEndorsements(region)
			record.GeneralEndorsements = append(record.GeneralEndorsements, merged.Endorsements...)
			record.GeneralExclusions = append(record.GeneralExclusions, merged.Exclusions...)
			record.Warranties = append(record.Warranties, merged.Warranties...)
			record.SpecialConditions = append(record.SpecialConditions, merged.SpecialConditions...)
		case models.RegionFirstAmountsPayable:
			for name, entries := range extractors.ExtractFirstAmounts(region) {
				record.FirstAmountsPayable[name] = append(record.FirstAmountsPayable[name], entries...)
			}
		}
	}

	record.RiskAddresses = collectRiskAddresses(record.Sections)
	record.MotorSection = collectMotorSection(record.Sections)
	record.ExtractionMetadata.ConfidenceScore = models.Ptr(Confidence(record))
	return record, nil
}

// collectRiskAddresses builds the deduplicated address registry. Addresses
// are keyed on their verbatim text and assigned stable addr_N identifiers in
// first-seen order.
func collectRiskAddresses(sections []models.Section) []models.RiskAddress {
	registry := []models.RiskAddress{}
	index := map[string]int{}
	for _, section := range sections {
		if section.RiskAddress == nil {
			continue
		}
		addr := *section.RiskAddress
		i, seen := index[addr]
		if !seen {
			i = len(registry)
			index[addr] = i
			registry = append(registry, models.RiskAddress{
				AddressID:          fmt.Sprintf("addr_%d", i+1),
				FullAddress:        addr,
				ApplicableSections: []string{},
			})
		}
		registry[i].ApplicableSections = append(registry[i].ApplicableSections, section.SectionName)
	}
	return registry
}

// collectMotorSection mirrors all extracted vehicles under the top-level
// motor_section field. Nil when the document has no vehicles.
func collectMotorSection(sections []models.Section) *models.MotorSection {
	vehicles := []models.Vehicle{}
	for _, section := range sections {
		vehicles = append(vehicles, section.Vehicles...)
	}
	if len(vehicles) == 0 {
		return nil
	}
	return &models.MotorSection{Vehicles: vehicles}
}
