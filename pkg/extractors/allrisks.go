package extractors

import (
	"regexp"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
	"github.com/insuretext/policyscan/pkg/suminsured"
)

var (
	allRisksBlockRe = regexp.MustCompile(`(?im)^[ \t]*(?:Item|Description\s+of\s+(?:item|property))\b`)
	itemDescRe      = regexp.MustCompile(`(?i)Description\s+of\s+(?:item|property)\s*:?\s*([^\n]+)`)
	serialNumberRe  = regexp.MustCompile(`(?i)Serial\s+(?:number|no\.?)\s*:?\s*([A-Za-z0-9\-/]+)`)
	categoryRe      = regexp.MustCompile(`(?i)Category\s*:?\s*([^\n]+)`)
	itemSumRe       = regexp.MustCompile(`(?im)^[ \t]*Sum\s+Insured\s*:?\s*([^\n]+?)[ \t]*$`)
	itemPremiumRe   = regexp.MustCompile(`(?im)^[ \t]*Premium\s*:?\s*` + amountPattern)
	proRataRe       = regexp.MustCompile(`(?im)^[ \t]*Pro-?rata\s+Premium\s*:?\s*` + amountPattern)
)

// blockPremium reads an item block's premium. The plain Premium label is
// preferred; an endorsement schedule that prints only a Pro-rata Premium
// falls back to that value.
func blockPremium(block string) *float64 {
	if m := itemPremiumRe.FindStringSubmatch(block); m != nil {
		return normalize.Currency(m[1])
	}
	if m := proRataRe.FindStringSubmatch(block); m != nil {
		return normalize.Currency(m[1])
	}
	return nil
}

// extractAllRisks reads a business-all-risks section. Items are printed as
// labeled blocks, one per insured article, each opening with a description
// line.
func extractAllRisks(section *models.Section, text string) {
	for _, block := range splitBefore(allRisksBlockRe, text) {
		m := itemDescRe.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		desc := normalize.CleanText(m[1])
		item := models.Item{Description: &desc}
		if c := categoryRe.FindStringSubmatch(block); c != nil {
			item.Category = models.Ptr(normalize.CleanText(c[1]))
		}
		if s := serialNumberRe.FindStringSubmatch(block); s != nil {
			item.SerialNumber = models.Ptr(s[1])
		}
		if v := itemSumRe.FindStringSubmatch(block); v != nil {
			suminsured.Classify(v[1]).ApplyToItem(&item)
		}
		item.Premium = blockPremium(block)
		section.Items = append(section.Items, item)
	}

	if len(section.Items) == 0 {
		section.Items = labeledItems(text)
	}
}
