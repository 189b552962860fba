package assemble

import "github.com/insuretext/policyscan/models"

// Confidence scores a record in [0, 1] as the fraction of satisfied checks.
// The score is a pure function of the record, so re-scoring a stored record
// always reproduces it. Checks cover the fields downstream consumers key on:
// the policy number, the policyholder name, section presence, and a
// description on every extracted item.
func Confidence(record *models.PolicyRecord) float64 {
	checks := []bool{
		record.PolicyDetails.PolicyNumber != nil,
		record.PolicyDetails.InsurerName != nil,
		record.Policyholder.Name != nil,
		len(record.Sections) > 0,
		record.PremiumSummary.TotalPremium != nil,
	}

	for _, section := range record.Sections {
		for _, item := range section.Items {
			checks = append(checks, item.Description != nil)
			checks = append(checks, item.SumInsured != nil || item.SumInsuredText != nil)
		}
		for _, vehicle := range section.Vehicles {
			checks = append(checks, vehicle.Description != nil || vehicle.RegistrationNumber != nil)
		}
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return float64(passed) / float64(len(checks))
}
