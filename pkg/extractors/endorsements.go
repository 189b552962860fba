package extractors

import (
	"regexp"
	"strings"

	"github.com/insuretext/policyscan/models"
	"github.com/insuretext/policyscan/pkg/normalize"
)

var (
	clauseHeadRe  = regexp.MustCompile(`(?m)^[ \t]*(?:[A-Z][A-Z0-9 ,'&/\-()]*(?:EXCEPTION|EXCLUSION)S?\b[^\n]*|[A-Z][A-Z0-9 ,'&/\-()]+?[ \t]+ENDORSEMENT\b[^\n]*|ENDORSEMENT[ \t]+FORMING[ \t]+PART\b[^\n]*)$`)
	referenceRe   = regexp.MustCompile(`(?i)Reference\s*:?\s*([A-Z0-9/\-]+)`)
	warrantyRe    = regexp.MustCompile(`(?im)^[ \t]*(?:It\s+is\s+warranted|Warranty|Warranted)\b[^\n]*(?:\n[ \t]+[^\n]+)*`)
	specialCondRe = regexp.MustCompile(`(?i)Special\s+conditions?\s*:?\s*([^\n]+)`)
)

// Endorsements is the output of a GENERAL_ENDORSEMENTS region: endorsements
// and exclusions are routed to separate record fields, warranties and special
// conditions are pulled from the same text.
type Endorsements struct {
	Endorsements      []models.Endorsement
	Exclusions        []models.Endorsement
	Warranties        []models.Warranty
	SpecialConditions []string
}

// ExtractEndorsements splits a general-endorsements region into its named
// clause blocks. Clause text is preserved verbatim; only the surrounding
// whitespace is trimmed. Blocks whose heading names an exception or exclusion
// are routed to the exclusions list.
func ExtractEndorsements(region models.Region) Endorsements {
	out := Endorsements{
		Endorsements:      []models.Endorsement{},
		Exclusions:        []models.Endorsement{},
		Warranties:        []models.Warranty{},
		SpecialConditions: []string{},
	}

	body := stripHeadingLine(region.Text)
	for _, block := range clauseBlocks(body) {
		e := parseEndorsementBlock(block)
		if e == nil {
			continue
		}
		if isExclusion(e.EndorsementName) {
			out.Exclusions = append(out.Exclusions, *e)
		} else {
			out.Endorsements = append(out.Endorsements, *e)
		}
	}

	for _, m := range warrantyRe.FindAllString(region.Text, -1) {
		w := models.Warranty{Description: normalize.CleanText(m)}
		if d := effectiveDateRe.FindStringSubmatch(m); d != nil {
			w.EffectiveDate = normalize.Date(d[1])
		}
		out.Warranties = append(out.Warranties, w)
	}
	for _, m := range specialCondRe.FindAllStringSubmatch(region.Text, -1) {
		out.SpecialConditions = append(out.SpecialConditions, normalize.CleanText(m[1]))
	}
	return out
}

// parseEndorsementBlock reads one clause: the heading line is the name, the
// remaining lines the verbatim text.
func parseEndorsementBlock(block string) *models.Endorsement {
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}
	heading := block
	text := ""
	if i := strings.IndexByte(block, '\n'); i >= 0 {
		heading = block[:i]
		text = strings.TrimSpace(block[i+1:])
	}
	heading = normalize.CleanText(heading)
	if heading == "" || text == "" {
		return nil
	}

	e := models.Endorsement{EndorsementName: heading, EndorsementText: text}
	if m := referenceRe.FindStringSubmatch(block); m != nil {
		e.Reference = models.Ptr(m[1])
	}
	if m := effectiveDateRe.FindStringSubmatch(block); m != nil {
		e.EffectiveDate = normalize.Date(m[1])
	}
	return &e
}

func isExclusion(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "exception") || strings.Contains(lower, "exclusion")
}

// clauseBlocks slices text into blocks starting at a clause heading, dropping
// any leading text before the first heading.
func clauseBlocks(text string) []string {
	locs := clauseHeadRe.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}

// ExtractSectionEndorsements pulls clause blocks that appear inside a section
// region rather than the general endorsements area.
func ExtractSectionEndorsements(text string) []models.Endorsement {
	endorsements := []models.Endorsement{}
	for _, block := range clauseBlocks(text) {
		if e := parseEndorsementBlock(block); e != nil {
			endorsements = append(endorsements, *e)
		}
	}
	return endorsements
}
