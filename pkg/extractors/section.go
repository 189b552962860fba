package extractors

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

// labeledRowRe matches one-line insured rows of the form
// "Buildings — Sum Insured: R 500 000.00" with an optional trailing premium.
var labeledRowRe = regexp.MustCompile(
	`(?im)^[ \t]*([A-Za-z][^\n]*?)[ \t]*(?:—|–|-{1,2})?[ \t]*Sum[ \t]+Insured[ \t]*:?[ \t]*(.+?)(?:[ \t]+Premium[ \t]*:?[ \t]*` + amountPattern + `)?[ \t]*$`)

// ExtractSection dispatches a SECTION region to its type-specific item
// extraction. A region no sub-pattern can parse still produces a section
// fragment with the heading and type captured and the raw text preserved in
// the fallback notes.
func ExtractSection(region models.Region) models.Section {
	section := models.NewSection(region.SectionType, sectionName(region))
	text := region.Text
	extractCommon(&section, text)
	section.SectionEndorsements = ExtractSectionEndorsements(text)

	switch region.SectionType {
	case models.SectionFire:
		extractFire(&section, text)
	case models.SectionGoodsInTransit:
		extractTransit(&section, text)
	case models.SectionBusinessAllRisks:
		extractAllRisks(&section, text)
	case models.SectionCombinedLiability:
		extractLiability(&section, text)
	case models.SectionMotorSpecified:
		extractMotor(&section, text)
	default:
		section.Items = labeledItems(text)
	}

	fallbackToNotes(&section, text)
	return section
}

// sectionName derives the display name from the heading: "FIRE SECTION"
// becomes "Fire". Unrecognized section types keep the literal heading.
func sectionName(region models.Region) string {
	heading := normalize.CleanText(region.Heading)
	if region.SectionType == models.SectionOther {
		return heading
	}
	name := regexp.MustCompile(`(?i)\s+(SECTION|SUMMARY)$`).ReplaceAllString(heading, "")
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// labeledItems extracts one item per labeled sum-insured row. Used directly
// by section types without a specialized table layout.
func labeledItems(text string) []models.Item {
	items := []models.Item{}
	for _, m := range labeledRowRe.FindAllStringSubmatch(text, -1) {
		desc := normalize.CleanText(m[1])
		if desc == "" {
			continue
		}
		item := models.Item{Description: &desc}
		suminsured.Classify(m[2]).ApplyToItem(&item)
		if m[3] != "" {
			item.Premium = normalize.Currency(m[3])
		}
		items = append(items, item)
	}
	return items
}
