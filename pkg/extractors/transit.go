package extractors

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

var (
	transitLimitRe = regexp.MustCompile(`(?i)Limit\s+of\s+indemnity\s*:?\s*([^\n]+)`)
	conveyanceRe   = regexp.MustCompile(`(?i)Means\s+of\s+conveyance\s*:?\s*([^\n]+)`)
	livestockRe    = regexp.MustCompile(`(?i)includ\w*\s+(?:of\s+)?livestock`)
)

// extractTransit reads a goods-in-transit section. The section carries a
// single insured limit rather than an item table, plus the conveyance means
// and an optional livestock inclusion note.
func extractTransit(section *models.Section, text string) {
	section.Items = labeledItems(text)

	if len(section.Items) == 0 {
		if m := transitLimitRe.FindStringSubmatch(text); m != nil {
			desc := "Goods in transit"
			item := models.Item{Description: &desc}
			suminsured.Classify(m[1]).ApplyToItem(&item)
			section.Items = append(section.Items, item)
		}
	}

	data := models.TransitData{}
	found := false
	if m := conveyanceRe.FindStringSubmatch(text); m != nil {
		data.ConveyanceMeans = models.Ptr(normalize.CleanText(m[1]))
		found = true
	}
	if livestockRe.MatchString(text) {
		data.IncludesLivestock = true
		found = true
		if len(section.Items) > 0 && section.Items[0].AdditionalNotes == nil {
			note := "Includes livestock"
			if line := livestockLine(text); line != "" {
				note = line
			}
			section.Items[0].AdditionalNotes = &note
		}
	}
	if found {
		section.SectionSpecificData = &models.SectionSpecificData{Transit: &data}
	}
}

// livestockLine returns the full sentence mentioning livestock, verbatim.
func livestockLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if livestockRe.MatchString(line) {
			return normalize.CleanText(line)
		}
	}
	return ""
}
