package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

var (
	physicalAddressRe = regexp.MustCompile(`(?is)Physical\s+address\s*(.+?)(?:Postal\s+address|Contact\s+details|$)`)
	postalAddressRe   = regexp.MustCompile(`(?is)Postal\s+address\s*(.+?)(?:Contact\s+details|Work|$)`)
)

// ExtractPolicyholder pulls the insured party's details, addresses, and
// contact information from a POLICYHOLDER region.
func ExtractPolicyholder(region models.Region) models.Policyholder {
	text := region.Text
	holder := models.Policyholder{
		Name:                      normalize.FieldValue(text, "Policyholder"),
		BusinessDescription:       normalize.FieldValue(text, "Business description"),
		VATNumber:                 normalize.FieldFirst(text, "Vat number", "VAT number"),
		CompanyRegistrationNumber: normalize.FieldValue(text, "Company registration number"),
		ContactDetails: models.ContactDetails{
			WorkPhone: normalize.FieldValue(text, "Work"),
			HomePhone: normalize.FieldValue(text, "Home"),
			CellPhone: normalize.FieldValue(text, "Cell"),
			Fax:       normalize.FieldValue(text, "Fax"),
			Email:     normalize.FieldValue(text, "Email"),
		},
	}

	if m := physicalAddressRe.FindStringSubmatch(text); m != nil {
		holder.PhysicalAddress = normalize.Address(m[1])
	}
	if m := postalAddressRe.FindStringSubmatch(text); m != nil {
		holder.PostalAddress = normalize.Address(m[1])
	}
	return holder
}
