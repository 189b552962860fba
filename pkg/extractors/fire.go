package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

var (
	// fireTableRowRe matches tabular fire rows: description, column
	// reference digit, sum insured, premium.
	fireTableRowRe = regexp.MustCompile(`(?m)^[ \t]*([A-Z][A-Za-z &/()'\-]{4,}?)[ \t]+(\d)[ \t]+` + amountPattern + `[ \t]+` + amountPattern + `[ \t]*$`)

	columnRefRe = regexp.MustCompile(`(?i)Column\s+(\d)\s*[:\-]?\s*([^\n]+)`)
)

// extractFire reads the fire section's insured-property rows. Schedules print
// these either as one labeled row per property or as a table keyed by column
// reference; both layouts are tried, labeled rows first.
func extractFire(section *models.Section, text string) {
	section.Items = labeledItems(text)

	for _, m := range fireTableRowRe.FindAllStringSubmatch(text, -1) {
		desc := normalize.CleanText(m[1])
		item := models.Item{
			Description:     &desc,
			ColumnReference: models.Ptr(m[2]),
			Premium:         normalize.Currency(m[4]),
		}
		suminsured.Classify(m[3]).ApplyToItem(&item)
		section.Items = append(section.Items, item)
	}

	var refs []string
	for _, m := range columnRefRe.FindAllStringSubmatch(text, -1) {
		refs = append(refs, m[1]+": "+normalize.CleanText(m[2]))
	}
	if len(refs) > 0 {
		section.SectionSpecificData = &models.SectionSpecificData{
			Fire: &models.FireData{ColumnReferences: refs},
		}
	}
}
