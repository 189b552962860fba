package extractors

import (
	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

// ExtractBroker pulls the intermediary's details from a BROKER region.
func ExtractBroker(region models.Region) *models.Broker {
	text := region.Text
	return &models.Broker{
		CompanyName:               normalize.FieldFirst(text, "Company name", "Company"),
		Branch:                    normalize.FieldValue(text, "Branch"),
		BrokerName:                normalize.FieldValue(text, "Broker"),
		CompanyRegistrationNumber: normalize.FieldValue(text, "Company registration number"),
		VATNumber:                 normalize.FieldValue(text, "VAT number"),
		FSPNumber:                 normalize.FieldFirst(text, "Licence Number", "FSB/FSP number", "FSP number"),
		ContactPhone:              normalize.FieldFirst(text, "Business", "Telephone"),
		Fax:                       normalize.FieldValue(text, "Fax"),
		Email:                     normalize.FieldValue(text, "Email"),
	}
}
