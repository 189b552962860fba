package models

// RegionKind labels a contiguous span of document text with the semantic area
// it belongs to.
type RegionKind string

const (
	RegionPolicyDetails       RegionKind = "POLICY_DETAILS"
	RegionPolicyholder        RegionKind = "POLICYHOLDER"
	RegionBroker              RegionKind = "BROKER"
	RegionPremiumSummary      RegionKind = "PREMIUM_SUMMARY"
	RegionSection             RegionKind = "SECTION"
	RegionGeneralEndorsements RegionKind = "GENERAL_ENDORSEMENTS"
	RegionFirstAmountsPayable RegionKind = "FIRST_AMOUNTS_PAYABLE"
	RegionOther               RegionKind = "OTHER"
)

// SectionType is the closed enumeration of insured section types. Headings
// outside this set map to SectionOther with the literal heading preserved in
// the section name.
type SectionType string

const (
	SectionFire              SectionType = "FIRE"
	SectionGoodsInTransit    SectionType = "GOODS_IN_TRANSIT"
	SectionBusinessAllRisks  SectionType = "BUSINESS_ALL_RISKS"
	SectionAccidentalDamage  SectionType = "ACCIDENTAL_DAMAGE"
	SectionCombinedLiability SectionType = "COMBINED_LIABILITY"
	SectionMotorSpecified    SectionType = "MOTOR_SPECIFIED"
	SectionTheft             SectionType = "THEFT"
	SectionMoney             SectionType = "MONEY"
	SectionGlass             SectionType = "GLASS"
	SectionOther             SectionType = "OTHER"
)

// Region is a labeled span of document text. Regions are produced in document
// order and never overlap; text between regions is dropped.
type Region struct {
	Kind        RegionKind
	SectionType SectionType // set when Kind == RegionSection
	Heading     string      // the literal heading line that opened the region
	Text        string
	StartLine   int
	EndLine     int // inclusive
}
