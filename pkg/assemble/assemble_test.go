package assemble

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/segment"
)

const sampleSchedule = `POLICY DETAILS
Insurer name: Example Insurance Limited
Policy number: ABC123
Period of insurance From 01/03/2024 to 28/02/2025

POLICYHOLDER DETAILS
Policyholder: Jane Farmer
Vat number: 4012345678

BROKER DETAILS
Company name: Farmers Brokers (Pty) Ltd

FIRE SECTION
Effective Date 01/03/2024
Physical Location Farm Rietfontein, Bethlehem Total
Buildings — Sum Insured: R 500 000.00
Total Section Premium R 1 200.00

MOTOR SPECIFIED SECTION
Details of vehicle: 2021 MERCEDES-BENZ ACTROS 2645LS/33
Registration number: ABC123GP
Type of cover: Comprehensive
Sum Insured: Retail Value

PREMIUM SUMMARY
Fire Yes R 1 200.00
TOTAL R 1 943.22
`

func assembleSample(t *testing.T) *models.PolicyRecord {
	t.Helper()
	doc := models.NewDocument("sample.txt", []string{sampleSchedule})
	record, err := Assemble(doc, segment.Segment(doc.Text(), segment.DefaultRules()))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return record
}

func TestAssemble(t *testing.T) {
	record := assembleSample(t)

	if record.PolicyDetails.PolicyNumber == nil || *record.PolicyDetails.PolicyNumber != "ABC123" {
		t.Errorf("PolicyNumber = %v, want ABC123", record.PolicyDetails.PolicyNumber)
	}
	if record.Policyholder.Name == nil || *record.Policyholder.Name != "Jane Farmer" {
		t.Errorf("Policyholder.Name = %v, want Jane Farmer", record.Policyholder.Name)
	}
	if record.Broker == nil || record.Broker.CompanyName == nil {
		t.Fatal("Broker not extracted")
	}

	if len(record.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(record.Sections))
	}
	fire := record.Sections[0]
	if fire.SectionType != models.SectionFire {
		t.Errorf("sections[0].SectionType = %s, want FIRE", fire.SectionType)
	}
	if len(fire.Items) != 1 {
		t.Fatalf("fire section has %d items, want 1", len(fire.Items))
	}
	item := fire.Items[0]
	if item.Description == nil || *item.Description != "Buildings" {
		t.Errorf("item.Description = %v, want Buildings", item.Description)
	}
	if item.SumInsured == nil || *item.SumInsured != 500000 {
		t.Errorf("item.SumInsured = %v, want 500000", item.SumInsured)
	}
	if item.SumInsuredIsTextBased {
		t.Error("item.SumInsuredIsTextBased = true, want false")
	}

	if record.PremiumSummary.TotalPremium == nil || *record.PremiumSummary.TotalPremium != 1943.22 {
		t.Errorf("TotalPremium = %v, want 1943.22", record.PremiumSummary.TotalPremium)
	}

	meta := record.ExtractionMetadata
	if meta.RunID == "" {
		t.Error("RunID is empty")
	}
	if meta.SourceDocument != "sample.txt" {
		t.Errorf("SourceDocument = %q, want sample.txt", meta.SourceDocument)
	}
	if meta.ConfidenceScore == nil || *meta.ConfidenceScore <= 0 || *meta.ConfidenceScore > 1 {
		t.Errorf("ConfidenceScore = %v, want within (0, 1]", meta.ConfidenceScore)
	}
}

func TestAssembleMotorMirror(t *testing.T) {
	record := assembleSample(t)

	if record.MotorSection == nil {
		t.Fatal("MotorSection = nil, want mirror of extracted vehicles")
	}
	if len(record.MotorSection.Vehicles) != 1 {
		t.Fatalf("MotorSection has %d vehicles, want 1", len(record.MotorSection.Vehicles))
	}
	v := record.MotorSection.Vehicles[0]
	if v.Make == nil || *v.Make != "MERCEDES-BENZ" {
		t.Errorf("vehicle.Make = %v, want MERCEDES-BENZ", v.Make)
	}
}

func TestAssembleRiskAddressRegistry(t *testing.T) {
	record := assembleSample(t)

	if len(record.RiskAddresses) != 1 {
		t.Fatalf("got %d risk addresses, want 1: %+v", len(record.RiskAddresses), record.RiskAddresses)
	}
	addr := record.RiskAddresses[0]
	if addr.AddressID != "addr_1" {
		t.Errorf("AddressID = %q, want addr_1", addr.AddressID)
	}
	if !strings.Contains(addr.FullAddress, "Rietfontein") {
		t.Errorf("FullAddress = %q", addr.FullAddress)
	}
	if len(addr.ApplicableSections) != 1 || addr.ApplicableSections[0] != "Fire" {
		t.Errorf("ApplicableSections = %v, want [Fire]", addr.ApplicableSections)
	}
}

func TestAssembleEmptyDocument(t *testing.T) {
	doc := models.NewDocument("empty.txt", []string{"   \n  "})
	_, err := Assemble(doc, nil)
	if !errors.Is(err, models.ErrEmptyDocument) {
		t.Errorf("Assemble() error = %v, want ErrEmptyDocument", err)
	}
}

// Garbage input that still contains text must produce a structurally complete
// record, not an error.
func TestAssembleTotality(t *testing.T) {
	doc := models.NewDocument("noise.txt", []string{"lorem ipsum dolor sit amet\nnothing here resembles a schedule\n"})
	record, err := Assemble(doc, segment.Segment(doc.Text(), segment.DefaultRules()))
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if record.PolicyDetails.PolicyNumber != nil {
		t.Errorf("PolicyNumber = %v, want nil", record.PolicyDetails.PolicyNumber)
	}
	if record.Sections == nil || record.RiskAddresses == nil || record.FirstAmountsPayable == nil {
		t.Error("collections must be initialized, not nil")
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"policy_number":null`, `"sections":[]`, `"first_amounts_payable":{}`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshaled record missing %s", field)
		}
	}
}

func TestConfidence(t *testing.T) {
	full := assembleSample(t)
	empty := models.NewPolicyRecord(models.ExtractionMetadata{})

	fullScore := Confidence(full)
	emptyScore := Confidence(empty)
	if fullScore <= emptyScore {
		t.Errorf("Confidence(full) = %v, Confidence(empty) = %v; want full > empty", fullScore, emptyScore)
	}

	// Pure function: same record, same score.
	if again := Confidence(full); again != fullScore {
		t.Errorf("Confidence() = %v on re-score, want %v", again, fullScore)
	}
}
