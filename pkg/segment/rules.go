package segment

import (
	"fmt"
	"os"
	"regexp"

	"github.com/insuretext/policyscan/models"
	"gopkg.in/yaml.v3"
)

// Rule maps a heading pattern to the region it opens. Rules are evaluated in
// order; the most specific patterns sit first so a section-qualified heading
// wins over a generic one.
type Rule struct {
	Pattern     string
	Kind        models.RegionKind
	SectionType models.SectionType
	re          *regexp.Regexp
}

// defaultRules covers the heading variants seen across insurer schedule
// layouts. Section-type-qualified patterns precede the generic catch-all so
// "MOTOR SPECIFIED SECTION" never falls through to the bare SECTION rule.
var defaultRules = []Rule{
	{Pattern: `FIRE\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionFire},
	{Pattern: `GOODS\s+IN\s+TRANSIT\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionGoodsInTransit},
	{Pattern: `BUSINESS\s+ALL\s+RISKS\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionBusinessAllRisks},
	{Pattern: `ACCIDENTAL\s+DAMAGE\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionAccidentalDamage},
	{Pattern: `COMBINED\s+LIABILITY\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionCombinedLiability},
	{Pattern: `MOTOR\s+SPECIFIED\s+(?:SECTION|SUMMARY)`, Kind: models.RegionSection, SectionType: models.SectionMotorSpecified},
	{Pattern: `THEFT\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionTheft},
	{Pattern: `MONEY\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionMoney},
	{Pattern: `GLASS\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionGlass},
	{Pattern: `POLICYHOLDER\s+DETAILS`, Kind: models.RegionPolicyholder},
	{Pattern: `POLICY\s+DETAILS`, Kind: models.RegionPolicyDetails},
	{Pattern: `BROKER\s+DETAILS`, Kind: models.RegionBroker},
	{Pattern: `PREMIUM\s+SUMMARY`, Kind: models.RegionPremiumSummary},
	{Pattern: `GENERAL\s+ENDORSEMENTS`, Kind: models.RegionGeneralEndorsements},
	{Pattern: `(?:SCHEDULE\s+OF\s+(?:STANDARD\s+)?)?FIRST\s+AMOUNTS?\s+PAYABLE`, Kind: models.RegionFirstAmountsPayable},
	// Generic catch-all: any other "<NAME> SECTION" heading becomes an OTHER
	// section with the literal heading preserved.
	{Pattern: `[A-Z][A-Z &/\-]+\s+SECTION`, Kind: models.RegionSection, SectionType: models.SectionOther},
}

// rulesFile is the YAML shape of a heading-rule override file. Custom rules
// are evaluated before the defaults.
type rulesFile struct {
	Rules []struct {
		Pattern     string `yaml:"pattern"`
		Kind        string `yaml:"kind"`
		SectionType string `yaml:"section_type"`
	} `yaml:"rules"`
}

// LoadRules reads insurer-specific heading rules from a YAML file and
// prepends them to the default table.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	rules := make([]Rule, 0, len(rf.Rules)+len(defaultRules))
	for _, r := range rf.Rules {
		rule := Rule{
			Pattern:     r.Pattern,
			Kind:        models.RegionKind(r.Kind),
			SectionType: models.SectionType(r.SectionType),
		}
		if rule.Kind == "" {
			rule.Kind = models.RegionSection
		}
		if rule.Kind == models.RegionSection && rule.SectionType == "" {
			rule.SectionType = models.SectionOther
		}
		if err := rule.compile(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Pattern, err)
		}
		rules = append(rules, rule)
	}
	rules = append(rules, DefaultRules()...)
	return rules, nil
}

// DefaultRules returns the compiled built-in rule table.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	for i := range rules {
		// Built-in patterns are tested at init by the package tests.
		_ = rules[i].compile()
	}
	return rules
}

// compile anchors the pattern to a full heading line, case-insensitively,
// tolerating surrounding whitespace and light punctuation.
func (r *Rule) compile() error {
	re, err := regexp.Compile(`(?i)^[\s\-*_=]*(` + r.Pattern + `)[\s\-*_=:.]*$`)
	if err != nil {
		return err
	}
	r.re = re
	return nil
}

// match tests a document line against the rule and returns the literal
// heading text on success.
func (r *Rule) match(line string) (string, bool) {
	m := r.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
