package extractors

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

var (
	// excessSectionRe recognizes the section-name lines that group excess
	// rows. The matched heading is kept verbatim as the map key.
	excessSectionRe = regexp.MustCompile(`(?i)^[ \t]*((?:Fire|Motor|Theft|Glass|Money|Goods|Business|Combined|Accidental|Electronic)[A-Za-z &/\-]*?)[ \t]*:?[ \t]*$`)

	excessPercentRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s*of\s+claim`)
	excessMinRe     = regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?` + amountPattern)
	excessMaxRe     = regexp.MustCompile(`(?i)maximum\s+(?:of\s+)?` + amountPattern)
	excessAmountRe  = regexp.MustCompile(amountPattern)
)

// ExtractFirstAmounts reads the first-amounts-payable (excess) schedule: a
// line-wise walk where section-name lines open a group and subsequent rows
// describe the excess terms. Section names are kept verbatim as map keys.
func ExtractFirstAmounts(region models.Region) map[string][]models.ExcessEntry {
	out := map[string][]models.ExcessEntry{}
	current := ""
	for _, line := range strings.Split(stripHeadingLine(region.Text), "\n") {
		if m := excessSectionRe.FindStringSubmatch(line); m != nil {
			current = normalize.CleanText(m[1])
			if _, ok := out[current]; !ok {
				out[current] = []models.ExcessEntry{}
			}
			continue
		}
		if current == "" {
			continue
		}
		if entry := parseExcessRow(line); entry != nil {
			out[current] = append(out[current], *entry)
		}
	}
	return out
}

// parseExcessRow reads one excess row. Rows express either a percentage of
// claim with minimum/maximum bounds or a single fixed amount.
func parseExcessRow(line string) *models.ExcessEntry {
	clean := normalize.CleanText(line)
	if clean == "" {
		return nil
	}
	entry := models.ExcessEntry{Description: clean}
	found := false

	if m := excessPercentRe.FindStringSubmatch(line); m != nil {
		entry.PercentageOfClaim = normalize.Currency(m[1])
		found = true
	}
	if m := excessMinRe.FindStringSubmatch(line); m != nil {
		entry.MinimumAmount = normalize.Currency(m[1])
		found = true
	}
	if m := excessMaxRe.FindStringSubmatch(line); m != nil {
		entry.MaximumAmount = normalize.Currency(m[1])
		found = true
	}
	if !found {
		if m := excessAmountRe.FindStringSubmatch(line); m != nil {
			entry.FixedAmount = normalize.Currency(m[1])
			found = true
		}
	}
	if !found {
		return nil
	}
	return &entry
}
