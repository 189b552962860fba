package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

var periodRe = regexp.MustCompile(`(?i)Period\s+of\s+insurance\s*(?:From\s*)?(\d{2}/\d{2}/\d{4})\s*to\s*(\d{2}/\d{2}/\d{4})`)

// ExtractPolicyDetails pulls the policy-level fields from a POLICY_DETAILS
// region.
func ExtractPolicyDetails(region models.Region) models.PolicyDetails {
	text := region.Text
	details := models.PolicyDetails{
		InsurerName:            normalize.FieldFirst(text, "Insurer name", "Insurer"),
		PolicyNumber:           normalize.FieldValue(text, "Policy number"),
		PolicyType:             normalize.FieldFirst(text, "Type of policy", "Policy type"),
		TransactionReason:      normalize.FieldValue(text, "Transaction reason"),
		EndorsementDescription: normalize.FieldValue(text, "Endorsement Description"),
		TerritorialLimits:      normalize.FieldValue(text, "Territorial Limits"),
	}

	details.InceptionDate = dateField(text, "Inception date")
	details.RenewalDate = dateField(text, "Renewal date")
	details.TransactionEffectiveDate = dateField(text, "Transaction effective date")
	details.PrintDate = dateField(text, "Print date")

	if m := periodRe.FindStringSubmatch(text); m != nil {
		details.PeriodOfInsurance = &models.PeriodOfInsurance{
			FromDate: normalize.Date(m[1]),
			ToDate:   normalize.Date(m[2]),
		}
	}
	return details
}

// dateField extracts a labeled field and normalizes it to ISO form.
func dateField(text, label string) *string {
	v := normalize.FieldValue(text, label)
	if v == nil {
		return nil
	}
	return normalize.Date(*v)
}
