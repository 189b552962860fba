// Package suminsured classifies raw sum-insured field text as either a
// numeric amount or a textual basis of valuation ("Agreed Value", "Retail
// Value"), resolving the latter to a canonical basis enumeration.
package suminsured

import (
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

// Basis-of-valuation enumeration.
const (
	BasisAgreedValue      = "AGREED_VALUE"
	BasisRetailValue      = "RETAIL_VALUE"
	BasisMarketValue      = "MARKET_VALUE"
	BasisReplacementValue = "REPLACEMENT_VALUE"
)

// Value is the classifier output. Exactly one of Amount or Text is populated
// when the source field is non-empty; both nil means an extraction gap.
type Value struct {
	Amount      *float64
	Text        *string
	IsTextBased bool
	Basis       *string
}

// basisKeywords map textual sums to a canonical valuation basis.
// Evaluated in order; first containment match wins.
var basisKeywords = []struct {
	keyword string
	basis   string
}{
	{"agreed value", BasisAgreedValue},
	{"retail value", BasisRetailValue},
	{"market value", BasisMarketValue},
	{"replacement value", BasisReplacementValue},
	{"new replacement", BasisReplacementValue},
}

// textMarkers are recognized textual sums with no valuation basis attached.
var textMarkers = []string{
	"trade value",
	"book value",
	"invoice value",
	"as per valuation",
	"as valued",
	"to be advised",
	"tba",
	"n/a",
}

// Classify resolves a raw sum-insured string. Numeric normalization is
// attempted first; on failure the string is tested against the basis-keyword
// and text-marker tables. A string matching neither yields the all-null
// Value (gap, not failure).
func Classify(raw string) Value {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return Value{}
	}

	if amount := normalize.Currency(clean); amount != nil {
		return Value{Amount: amount}
	}

	lower := strings.ToLower(clean)
	for _, bk := range basisKeywords {
		if strings.Contains(lower, bk.keyword) {
			return Value{
				Text:        models.Ptr(clean),
				IsTextBased: true,
				Basis:       models.Ptr(bk.basis),
			}
		}
	}
	for _, marker := range textMarkers {
		if strings.Contains(lower, marker) {
			return Value{Text: models.Ptr(clean), IsTextBased: true}
		}
	}
	return Value{}
}

// ApplyToItem copies a classified value onto an item's flattened fields.
func (v Value) ApplyToItem(item *models.Item) {
	item.SumInsured = v.Amount
	item.SumInsuredText = v.Text
	item.SumInsuredIsTextBased = v.IsTextBased
	item.BasisOfValuation = v.Basis
}

// ApplyToVehicle copies a classified value onto a vehicle's flattened fields.
func (v Value) ApplyToVehicle(vehicle *models.Vehicle) {
	vehicle.SumInsured = v.Amount
	vehicle.SumInsuredText = v.Text
	vehicle.SumInsuredIsTextBased = v.IsTextBased
	vehicle.BasisOfValuation = v.Basis
}
