package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/insuretext/policyscan/models"
)

func validRecord() *models.PolicyRecord {
	record := models.NewPolicyRecord(models.ExtractionMetadata{
		RunID:             "4f9c6f9e-0000-0000-0000-000000000000",
		ExtractedAt:       "2024-03-01T10:00:00Z",
		SourceDocument:    "sample.txt",
		ExtractionVersion: "1.0.0",
		ConfidenceScore:   models.Ptr(0.8),
	})
	record.PolicyDetails.PolicyNumber = models.Ptr("ABC123")
	record.Policyholder.Name = models.Ptr("Jane Farmer")
	record.PremiumSummary.TotalPremium = models.Ptr(1943.22)

	section := models.NewSection(models.SectionFire, "Fire")
	section.Items = append(section.Items, models.Item{
		Description: models.Ptr("Buildings"),
		SumInsured:  models.Ptr(500000.0),
	})
	record.Sections = append(record.Sections, section)
	return record
}

func marshal(t *testing.T, record *models.PolicyRecord) []byte {
	t.Helper()
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestValidate(t *testing.T) {
	warnings, err := Validate(marshal(t, validRecord()))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Validate() warnings = %v, want none", warnings)
	}
}

func TestValidateRejectsBadDate(t *testing.T) {
	record := validRecord()
	record.PolicyDetails.InceptionDate = models.Ptr("01/03/2024")

	if _, err := Validate(marshal(t, record)); err == nil {
		t.Error("Validate() accepted a non-ISO date")
	}
}

func TestValidateRejectsBadSectionType(t *testing.T) {
	data := marshal(t, validRecord())
	broken := strings.Replace(string(data), `"section_type":"FIRE"`, `"section_type":"UNHEARD_OF"`, 1)

	if _, err := Validate([]byte(broken)); err == nil {
		t.Error("Validate() accepted an unknown section type")
	}
}

func TestValidateRejectsNotJSON(t *testing.T) {
	if _, err := Validate([]byte("not json")); err == nil {
		t.Error("Validate() accepted malformed JSON")
	}
}

func TestWarnings(t *testing.T) {
	record := models.NewPolicyRecord(models.ExtractionMetadata{
		RunID:           "run",
		ConfidenceScore: models.Ptr(0.2),
	})

	warnings := Warnings(record)
	joined := strings.Join(warnings, "\n")
	for _, want := range []string{"policy_number", "policyholder.name", "no sections", "total_premium", "confidence"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Warnings() missing %q finding: %v", want, warnings)
		}
	}
}

func TestWarningsConflictingSum(t *testing.T) {
	record := validRecord()
	record.Sections[0].Items[0].SumInsuredText = models.Ptr("Agreed Value")

	warnings := Warnings(record)
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "both numeric and text") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings() = %v, want conflicting-sum finding", warnings)
	}
}
