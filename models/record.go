package models

// PolicyRecord is the root of the canonical extraction output. Every field
// defined by the schema is present in the marshaled JSON with either a real
// value or null; fields are never omitted.
type PolicyRecord struct {
	ExtractionMetadata  ExtractionMetadata       `json:"extraction_metadata"`
	PolicyDetails       PolicyDetails            `json:"policy_details"`
	Policyholder        Policyholder             `json:"policyholder"`
	Broker              *Broker                  `json:"broker"`
	PremiumSummary      PremiumSummary           `json:"premium_summary"`
	RiskAddresses       []RiskAddress            `json:"risk_addresses"`
	Sections            []Section                `json:"sections"`
	MotorSection        *MotorSection            `json:"motor_section"`
	GeneralEndorsements []Endorsement            `json:"general_endorsements"`
	GeneralExclusions   []Endorsement            `json:"general_exclusions"`
	FirstAmountsPayable map[string][]ExcessEntry `json:"first_amounts_payable"`
	SpecialConditions   []string                 `json:"special_conditions"`
	Warranties          []Warranty               `json:"warranties"`
}

// NewPolicyRecord returns a structurally complete record: all slices and maps
// initialized so the JSON shape is stable even for an empty extraction.
func NewPolicyRecord(meta ExtractionMetadata) *PolicyRecord {
	return &PolicyRecord{
		ExtractionMetadata:  meta,
		PremiumSummary:      PremiumSummary{Currency: "ZAR", SectionPremiums: []SectionPremium{}},
		RiskAddresses:       []RiskAddress{},
		Sections:            []Section{},
		GeneralEndorsements: []Endorsement{},
		GeneralExclusions:   []Endorsement{},
		FirstAmountsPayable: map[string][]ExcessEntry{},
		SpecialConditions:   []string{},
		Warranties:          []Warranty{},
	}
}

// ExtractionMetadata describes one extraction run.
type ExtractionMetadata struct {
	RunID             string   `json:"run_id"`
	ExtractedAt       string   `json:"extracted_at"`
	SourceDocument    string   `json:"source_document"`
	ExtractionVersion string   `json:"extraction_version"`
	ConfidenceScore   *float64 `json:"confidence_score"`
	Language          *string  `json:"language"`
}

type PolicyDetails struct {
	InsurerName              *string            `json:"insurer_name"`
	PolicyNumber             *string            `json:"policy_number"`
	PolicyType               *string            `json:"policy_type"`
	InceptionDate            *string            `json:"inception_date"`
	RenewalDate              *string            `json:"renewal_date"`
	PeriodOfInsurance        *PeriodOfInsurance `json:"period_of_insurance"`
	TransactionEffectiveDate *string            `json:"transaction_effective_date"`
	TransactionReason        *string            `json:"transaction_reason"`
	EndorsementDescription   *string            `json:"endorsement_description"`
	TerritorialLimits        *string            `json:"territorial_limits"`
	PrintDate                *string            `json:"print_date"`
}

type PeriodOfInsurance struct {
	FromDate *string `json:"from_date"`
	ToDate   *string `json:"to_date"`
}

type Policyholder struct {
	Name                      *string        `json:"name"`
	BusinessDescription       *string        `json:"business_description"`
	VATNumber                 *string        `json:"vat_number"`
	CompanyRegistrationNumber *string        `json:"company_registration_number"`
	PhysicalAddress           *Address       `json:"physical_address"`
	PostalAddress             *Address       `json:"postal_address"`
	ContactDetails            ContactDetails `json:"contact_details"`
}

type ContactDetails struct {
	WorkPhone *string `json:"work_phone"`
	HomePhone *string `json:"home_phone"`
	CellPhone *string `json:"cell_phone"`
	Fax       *string `json:"fax"`
	Email     *string `json:"email"`
}

// Address is a structured postal or physical address. FullAddress always
// preserves the untouched source string regardless of parse success.
type Address struct {
	Line1         *string `json:"line1"`
	Line2         *string `json:"line2"`
	Line3         *string `json:"line3"`
	City          *string `json:"city"`
	ProvinceState *string `json:"province_state"`
	PostalCode    *string `json:"postal_code"`
	Country       string  `json:"country"`
	FullAddress   *string `json:"full_address"`
}

type Broker struct {
	CompanyName               *string `json:"company_name"`
	Branch                    *string `json:"branch"`
	BrokerName                *string `json:"broker_name"`
	CompanyRegistrationNumber *string `json:"company_registration_number"`
	VATNumber                 *string `json:"vat_number"`
	FSPNumber                 *string `json:"fsp_number"`
	ContactPhone              *string `json:"contact_phone"`
	Fax                       *string `json:"fax"`
	Email                     *string `json:"email"`
}

type PremiumSummary struct {
	Currency         string           `json:"currency"`
	PremiumFrequency *string          `json:"premium_frequency"`
	SectionPremiums  []SectionPremium `json:"section_premiums"`
	Subtotal         *float64         `json:"subtotal"`
	SasriaTotal      *float64         `json:"sasria_total"`
	BrokerFee        *float64         `json:"broker_fee"`
	TotalPremium     *float64         `json:"total_premium"`
	VATInclusive     bool             `json:"vat_inclusive"`
	BrokerCommission BrokerCommission `json:"broker_commission"`
}

type SectionPremium struct {
	SectionName   string   `json:"section_name"`
	IsSelected    bool     `json:"is_selected"`
	PremiumAmount *float64 `json:"premium_amount"`
}

type BrokerCommission struct {
	TotalAmount         *float64 `json:"total_amount"`
	MotorRatePercent    *float64 `json:"motor_rate_percent"`
	NonMotorRatePercent *float64 `json:"non_motor_rate_percent"`
}

type RiskAddress struct {
	AddressID          string   `json:"address_id"`
	FullAddress        string   `json:"full_address"`
	ApplicableSections []string `json:"applicable_sections"`
}

// Section is one insured section of the policy. A section type appearing
// twice in the document (two risk addresses) yields two Section entries.
type Section struct {
	SectionType         SectionType          `json:"section_type"`
	SectionName         string               `json:"section_name"`
	EffectiveDate       *string              `json:"effective_date"`
	RiskAddress         *string              `json:"risk_address"`
	TotalSectionPremium *float64             `json:"total_section_premium"`
	Items               []Item               `json:"items"`
	Vehicles            []Vehicle            `json:"vehicles"`
	AdditionalPerils    []Peril              `json:"additional_perils"`
	SectionEndorsements []Endorsement        `json:"section_endorsements"`
	SectionSpecificData *SectionSpecificData `json:"section_specific_data"`
	FallbackNotes       *string              `json:"fallback_notes"`
}

// NewSection returns a Section with slices initialized so an unparsable
// region still marshals with the full field set.
func NewSection(typ SectionType, name string) Section {
	return Section{
		SectionType:         typ,
		SectionName:         name,
		Items:               []Item{},
		Vehicles:            []Vehicle{},
		AdditionalPerils:    []Peril{},
		SectionEndorsements: []Endorsement{},
	}
}

// SectionSpecificData holds per-section-type fields that fall outside the
// universal schema. Exactly one variant is populated, keyed by section type.
type SectionSpecificData struct {
	Fire      *FireData      `json:"fire,omitempty"`
	Transit   *TransitData   `json:"transit,omitempty"`
	Liability *LiabilityData `json:"liability,omitempty"`
}

type FireData struct {
	ColumnReferences []string `json:"column_references"`
}

type TransitData struct {
	ConveyanceMeans   *string `json:"conveyance_means"`
	IncludesLivestock bool    `json:"includes_livestock"`
}

type LiabilityData struct {
	RetroactiveDate *string `json:"retroactive_date"`
	BasisOfCover    *string `json:"basis_of_cover"`
}

// Item is one insured row within a section. The sum-insured fields follow the
// classifier contract: numeric or text-based, never raw unclassified text.
type Item struct {
	Category              *string  `json:"category"`
	Description           *string  `json:"description"`
	ColumnReference       *string  `json:"column_reference"`
	SerialNumber          *string  `json:"serial_number"`
	SumInsured            *float64 `json:"sum_insured"`
	SumInsuredText        *string  `json:"sum_insured_text"`
	SumInsuredIsTextBased bool     `json:"sum_insured_is_text_based"`
	BasisOfValuation      *string  `json:"basis_of_valuation"`
	Premium               *float64 `json:"premium"`
	AdditionalNotes       *string  `json:"additional_notes"`
}

type Peril struct {
	PerilName        string   `json:"peril_name"`
	IsIncluded       bool     `json:"is_included"`
	LimitOfIndemnity *float64 `json:"limit_of_indemnity"`
}

// Endorsement captures the verbatim text block following an endorsement or
// exclusion heading.
type Endorsement struct {
	EndorsementName string  `json:"endorsement_name"`
	EndorsementText string  `json:"endorsement_text"`
	Reference       *string `json:"reference"`
	EffectiveDate   *string `json:"effective_date"`
}

type Warranty struct {
	Description   string  `json:"description"`
	EffectiveDate *string `json:"effective_date"`
}

type MotorSection struct {
	Vehicles []Vehicle `json:"vehicles"`
}

type Vehicle struct {
	Description           *string        `json:"description"`
	Year                  *int           `json:"year"`
	Make                  *string        `json:"make"`
	Model                 *string        `json:"model"`
	RegistrationNumber    *string        `json:"registration_number"`
	VINNumber             *string        `json:"vin_number"`
	EngineNumber          *string        `json:"engine_number"`
	DescriptionOfUse      *string        `json:"description_of_use"`
	TypeOfCover           *string        `json:"type_of_cover"`
	SumInsured            *float64       `json:"sum_insured"`
	SumInsuredText        *string        `json:"sum_insured_text"`
	SumInsuredIsTextBased bool           `json:"sum_insured_is_text_based"`
	BasisOfValuation      *string        `json:"basis_of_valuation"`
	Premium               *float64       `json:"premium"`
	SasriaPremium         *float64       `json:"sasria_premium"`
	Extras                []VehicleExtra `json:"extras"`
}

type VehicleExtra struct {
	Description string   `json:"description"`
	Value       *float64 `json:"value"`
}

// ExcessEntry is one row of the first-amounts-payable (excess) schedule.
type ExcessEntry struct {
	Description       string   `json:"description"`
	PercentageOfClaim *float64 `json:"percentage_of_claim"`
	MinimumAmount     *float64 `json:"minimum_amount"`
	MaximumAmount     *float64 `json:"maximum_amount"`
	FixedAmount       *float64 `json:"fixed_amount"`
}

// Cover type enumeration for motor vehicles.
const (
	CoverComprehensive       = "COMPREHENSIVE"
	CoverThirdPartyFireTheft = "THIRD_PARTY_FIRE_THEFT"
	CoverThirdPartyOnly      = "THIRD_PARTY_ONLY"
)

// Ptr returns a pointer to v; used when building records with optional fields.
func Ptr[T any](v T) *T { return &v }
