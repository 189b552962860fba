// Package segment partitions linearized policy-schedule text into labeled
// regions by scanning for section headings against an ordered rule table.
package segment

import (
	"strings"

	"github.com/insuretext/policyscan/models"
)

// Segment scans the document text line by line and produces the ordered,
// non-overlapping regions recognized by the rule set. Text before the first
// heading and between regions is dropped. When no heading matches at all the
// whole document becomes a single OTHER region, which downstream reporting
// treats as a low-confidence extraction rather than an error.
func Segment(text string, rules []Rule) []models.Region {
	lines := strings.Split(text, "\n")

	var regions []models.Region
	open := -1 // index into regions of the currently open region, -1 if none

	for i, line := range lines {
		rule, heading, ok := matchLine(line, rules)
		if !ok {
			continue
		}
		if open >= 0 {
			closeRegion(&regions[open], lines, i-1)
		}
		regions = append(regions, models.Region{
			Kind:        rule.Kind,
			SectionType: rule.SectionType,
			Heading:     heading,
			StartLine:   i,
		})
		open = len(regions) - 1
	}

	if open >= 0 {
		closeRegion(&regions[open], lines, len(lines)-1)
	}

	if len(regions) == 0 {
		return []models.Region{{
			Kind:      models.RegionOther,
			Text:      text,
			StartLine: 0,
			EndLine:   len(lines) - 1,
		}}
	}
	return regions
}

// matchLine tests a line against the rules in priority order.
func matchLine(line string, rules []Rule) (Rule, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Rule{}, "", false
	}
	for _, rule := range rules {
		if heading, ok := rule.match(trimmed); ok {
			return rule, heading, true
		}
	}
	return Rule{}, "", false
}

func closeRegion(r *models.Region, lines []string, end int) {
	if end < r.StartLine {
		end = r.StartLine
	}
	r.EndLine = end
	r.Text = strings.Join(lines[r.StartLine:end+1], "\n")
}
