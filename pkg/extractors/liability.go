package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

var (
	liabilitySubRe    = regexp.MustCompile(`(?im)^[ \t]*((?:Public|Products|Employers|Pollution|Wrongful\s+arrest)[A-Za-z '\-]*liability)\s*:?\s*([^\n]*)$`)
	retroactiveRe     = regexp.MustCompile(`(?i)Retroactive\s+date\s*:?\s*([^\n]+)`)
	claimsMadeRe      = regexp.MustCompile(`(?i)claims[\s\-]made`)
	lossesOccurringRe = regexp.MustCompile(`(?i)losses[\s\-]occurring`)
)

// extractLiability reads a combined-liability section: one item per
// sub-cover row with its limit of indemnity, plus the retroactive date and
// basis of cover.
func extractLiability(section *models.Section, text string) {
	for _, m := range liabilitySubRe.FindAllStringSubmatch(text, -1) {
		desc := normalize.CleanText(m[1])
		item := models.Item{Description: &desc}
		suminsured.Classify(m[2]).ApplyToItem(&item)
		section.Items = append(section.Items, item)
	}
	if len(section.Items) == 0 {
		section.Items = labeledItems(text)
	}

	data := models.LiabilityData{}
	found := false
	if m := retroactiveRe.FindStringSubmatch(text); m != nil {
		data.RetroactiveDate = normalize.Date(m[1])
		found = data.RetroactiveDate != nil
	}
	if claimsMadeRe.MatchString(text) {
		data.BasisOfCover = models.Ptr("Claims Made")
		found = true
	} else if lossesOccurringRe.MatchString(text) {
		data.BasisOfCover = models.Ptr("Losses Occurring")
		found = true
	}
	if found {
		section.SectionSpecificData = &models.SectionSpecificData{Liability: &data}
	}
}
