// Package extractors holds one field extractor per region kind. Each
// extractor is a pure function from a region's text to a partial record
// fragment: ordered label rules pull scalar fields, row detection pulls
// tabular data, and anything that cannot be located is left null. An
// extractor never aborts over a single missing field.
package extractors

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

// amount is the recurring currency-amount capture: "R 1 943.22" and friends.
const amountPattern = `R\s*([\d][\d\s,]*(?:\.\d+)?)`

var (
	effectiveDateRe = regexp.MustCompile(`(?i)Effective\s+Date\s+(\d{1,2}\s+\w+\s+\d{4}|\d{2}/\d{2}/\d{4})`)
	riskAddressRe   = regexp.MustCompile(`(?is)Physical\s+Location\s+(.+?)(?:Total|Construction|Details|$)`)
	totalPremiumRe  = regexp.MustCompile(`(?i)Total\s+Section\s+Premium\s+` + amountPattern)
	perilRowRe      = regexp.MustCompile(`(?i)^\s*([A-Za-z][A-Za-z \-()&/]+?)\s+(Yes|No)\s*(?:` + amountPattern + `)?\s*$`)
)

// perilNoise are table header words that the peril row pattern would
// otherwise pick up.
var perilNoise = map[string]struct{}{
	"description": {}, "limit of indemnity": {}, "premium": {}, "sum insured": {},
}

// extractCommon fills the fields shared by every section type: effective
// date, risk address, total premium, and the additional-perils table.
func extractCommon(section *models.Section, text string) {
	if m := effectiveDateRe.FindStringSubmatch(text); m != nil {
		section.EffectiveDate = normalize.Date(m[1])
	}
	if m := riskAddressRe.FindStringSubmatch(text); m != nil {
		if addr := normalize.CleanText(m[1]); addr != "" {
			section.RiskAddress = &addr
		}
	}
	if m := totalPremiumRe.FindStringSubmatch(text); m != nil {
		section.TotalSectionPremium = normalize.Currency(m[1])
	}
	section.AdditionalPerils = extractPerils(text)
}

// extractPerils reads the Yes/No peril table rows found under most sections.
func extractPerils(text string) []models.Peril {
	perils := []models.Peril{}
	for _, line := range strings.Split(text, "\n") {
		m := perilRowRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := normalize.CleanText(m[1])
		if len(name) <= 5 {
			continue
		}
		if _, noise := perilNoise[strings.ToLower(name)]; noise {
			continue
		}
		peril := models.Peril{
			PerilName:  name,
			IsIncluded: strings.EqualFold(m[2], "yes"),
		}
		if m[3] != "" {
			peril.LimitOfIndemnity = normalize.Currency(m[3])
		}
		perils = append(perils, peril)
	}
	return perils
}

// splitBefore slices text into blocks, each starting at a match of re.
// Text before the first match is returned as a leading block. Go's regexp
// has no lookahead, so block starts are located explicitly.
func splitBefore(re *regexp.Regexp, text string) []string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}
	var blocks []string
	if locs[0][0] > 0 {
		blocks = append(blocks, text[:locs[0][0]])
	}
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}

// fallbackToNotes implements the ambiguous-table fallback: when no row
// structure was recognized in a region that clearly has content, the raw
// text is preserved instead of guessing a split.
func fallbackToNotes(section *models.Section, text string) {
	if len(section.Items) > 0 || len(section.Vehicles) > 0 {
		return
	}
	body := strings.TrimSpace(stripHeadingLine(text))
	if body == "" {
		return
	}
	notes := normalize.CleanText(body)
	section.FallbackNotes = &notes
}

// stripHeadingLine drops the first line of a region (its heading).
func stripHeadingLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[i+1:]
	}
	return ""
}
