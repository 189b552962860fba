package segment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/insuretext/policyscan/models"
)

const sampleSchedule = `Some preamble the insurer prints on page one

POLICY DETAILS
Insurer name: Example Insurance
Policy number: ABC123

POLICYHOLDER DETAILS
Policyholder: Jane Farmer

FIRE SECTION
Buildings - Sum Insured: R 500 000.00

FIRE SECTION
Physical Location Second premises
Contents - Sum Insured: R 100 000.00

MOTOR SPECIFIED SECTION
Registration number: ABC123GP

PREMIUM SUMMARY
TOTAL R 1 943.22
`

func TestSegment(t *testing.T) {
	regions := Segment(sampleSchedule, DefaultRules())

	wantKinds := []models.RegionKind{
		models.RegionPolicyDetails,
		models.RegionPolicyholder,
		models.RegionSection,
		models.RegionSection,
		models.RegionSection,
		models.RegionPremiumSummary,
	}
	if len(regions) != len(wantKinds) {
		t.Fatalf("Segment() produced %d regions, want %d", len(regions), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if regions[i].Kind != kind {
			t.Errorf("regions[%d].Kind = %s, want %s", i, regions[i].Kind, kind)
		}
	}
}

// A section type appearing twice must yield two distinct regions.
func TestSegmentRepeatedSectionType(t *testing.T) {
	regions := Segment(sampleSchedule, DefaultRules())

	var fire []models.Region
	for _, r := range regions {
		if r.SectionType == models.SectionFire {
			fire = append(fire, r)
		}
	}
	if len(fire) != 2 {
		t.Fatalf("got %d fire regions, want 2", len(fire))
	}
	if !strings.Contains(fire[0].Text, "Buildings") {
		t.Error("first fire region is missing its body text")
	}
	if !strings.Contains(fire[1].Text, "Second premises") {
		t.Error("second fire region is missing its body text")
	}
}

func TestSegmentRegionIncludesHeadingLine(t *testing.T) {
	regions := Segment("FIRE SECTION\nBuildings\n", DefaultRules())
	if len(regions) == 0 {
		t.Fatal("no regions")
	}
	if !strings.HasPrefix(regions[0].Text, "FIRE SECTION") {
		t.Errorf("region text %q does not start with its heading", regions[0].Text)
	}
}

// Text before the first heading is dropped, not attached to a region.
func TestSegmentDropsPreamble(t *testing.T) {
	regions := Segment(sampleSchedule, DefaultRules())
	for _, r := range regions {
		if strings.Contains(r.Text, "preamble") {
			t.Errorf("preamble leaked into region %s", r.Kind)
		}
	}
}

// A document with no recognizable heading becomes one OTHER region covering
// all of it.
func TestSegmentNoHeadings(t *testing.T) {
	text := "just a paragraph\nof loose text\n"
	regions := Segment(text, DefaultRules())
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Kind != models.RegionOther {
		t.Errorf("Kind = %s, want OTHER", regions[0].Kind)
	}
	if regions[0].Text != text {
		t.Errorf("OTHER region must cover the whole document")
	}
}

// Section-qualified headings must win over the generic SECTION catch-all,
// and POLICYHOLDER DETAILS over POLICY DETAILS.
func TestSegmentRulePriority(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		wantKind    models.RegionKind
		wantSection models.SectionType
	}{
		{"fire", "FIRE SECTION", models.RegionSection, models.SectionFire},
		{"motor summary variant", "MOTOR SPECIFIED SUMMARY", models.RegionSection, models.SectionMotorSpecified},
		{"unknown section", "ELECTRONIC EQUIPMENT SECTION", models.RegionSection, models.SectionOther},
		{"policyholder", "POLICYHOLDER DETAILS", models.RegionPolicyholder, ""},
		{"policy", "POLICY DETAILS", models.RegionPolicyDetails, ""},
		{"first amounts long form", "SCHEDULE OF STANDARD FIRST AMOUNTS PAYABLE", models.RegionFirstAmountsPayable, ""},
		{"decorated heading", "--- FIRE SECTION ---", models.RegionSection, models.SectionFire},
		{"lowercase heading", "fire section", models.RegionSection, models.SectionFire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := Segment(tt.line+"\nbody\n", DefaultRules())
			if len(regions) != 1 {
				t.Fatalf("got %d regions, want 1", len(regions))
			}
			if regions[0].Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", regions[0].Kind, tt.wantKind)
			}
			if regions[0].SectionType != tt.wantSection {
				t.Errorf("SectionType = %s, want %s", regions[0].SectionType, tt.wantSection)
			}
		})
	}
}

func TestLoadRulesPrependsCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - pattern: 'HOUSEHOLD CONTENTS'\n    kind: SECTION\n    section_type: OTHER\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}
	if len(rules) != len(DefaultRules())+1 {
		t.Fatalf("got %d rules, want %d", len(rules), len(DefaultRules())+1)
	}

	regions := Segment("HOUSEHOLD CONTENTS\nbody\n", rules)
	if len(regions) != 1 || regions[0].Kind != models.RegionSection {
		t.Errorf("custom rule did not match: %+v", regions)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("does-not-exist.yaml"); err == nil {
		t.Error("LoadRules() expected error for missing file")
	}
}
