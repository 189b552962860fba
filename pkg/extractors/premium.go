package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

// summaryRows are the section names looked up in the premium summary table,
// in the order insurers print them.
var summaryRows = []string{
	"Fire",
	"Goods in Transit",
	"Business All Risks",
	"Accidental damage",
	"Combined liability",
	"Motor specified",
	"Theft",
	"Money",
	"Glass",
}

var (
	subtotalRe     = regexp.MustCompile(`(?i)Sub\s*Total\s+R?\s*([\d][\d\s,]*(?:\.\d+)?)`)
	sasriaTotalRe  = regexp.MustCompile(`(?i)Sasria\s+R?\s*([\d][\d\s,]*(?:\.\d+)?)`)
	brokerFeeRe    = regexp.MustCompile(`(?i)Broker\s+Fee\s+R?\s*([\d][\d\s,]*(?:\.\d+)?)`)
	grandTotalRe   = regexp.MustCompile(`TOTAL\s+R?\s*([\d][\d\s,]*(?:\.\d+)?)`)
	commissionRe   = regexp.MustCompile(`(?i)broker\s+commission\s+of\s+R\s*([\d][\d\s,]*(?:\.\d+)?)`)
	motorRateRe    = regexp.MustCompile(`(?i)motor\s+classes\s+is\s+(\d+(?:\.\d+)?)\s*%`)
	nonMotorRateRe = regexp.MustCompile(`(?i)non-motor\s+classes\s+is\s+(\d+(?:\.\d+)?)\s*%`)
)

// ExtractPremiumSummary reads the per-section premium table and the
// policy-level totals from a PREMIUM_SUMMARY region. The currency is fixed to
// ZAR for the source jurisdiction.
func ExtractPremiumSummary(region models.Region) models.PremiumSummary {
	text := region.Text
	summary := models.PremiumSummary{
		Currency:        "ZAR",
		SectionPremiums: []models.SectionPremium{},
		VATInclusive:    true,
	}

	for _, name := range summaryRows {
		// The amount column may hold "R -" for unselected sections, so the
		// raw remainder is captured and left to the currency normalizer.
		re := regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(name) + `[ \t]+(Yes|No)[ \t]+(.+?)[ \t]*$`)
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		selected := normalize.Boolean(m[1])
		summary.SectionPremiums = append(summary.SectionPremiums, models.SectionPremium{
			SectionName:   name,
			IsSelected:    selected != nil && *selected,
			PremiumAmount: normalize.Currency(m[2]),
		})
	}

	if m := subtotalRe.FindStringSubmatch(text); m != nil {
		summary.Subtotal = normalize.Currency(m[1])
	}
	if m := sasriaTotalRe.FindStringSubmatch(text); m != nil {
		summary.SasriaTotal = normalize.Currency(m[1])
	}
	if m := brokerFeeRe.FindStringSubmatch(text); m != nil {
		summary.BrokerFee = normalize.Currency(m[1])
	}
	if m := grandTotalRe.FindStringSubmatch(text); m != nil {
		summary.TotalPremium = normalize.Currency(m[1])
	}
	if m := commissionRe.FindStringSubmatch(text); m != nil {
		summary.BrokerCommission.TotalAmount = normalize.Currency(m[1])
	}
	if m := motorRateRe.FindStringSubmatch(text); m != nil {
		summary.BrokerCommission.MotorRatePercent = normalize.Currency(m[1])
	}
	if m := nonMotorRateRe.FindStringSubmatch(text); m != nil {
		summary.BrokerCommission.NonMotorRatePercent = normalize.Currency(m[1])
	}
	return summary
}
