package normalize

import (
	"bufio"
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace to single spaces and trims the ends.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// CollapseLines trims each line and drops empties, joining the remainder with
// single spaces.
func CollapseLines(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// FieldValue extracts a labeled value: "Label: value" up to end of line.
// Labels match case-insensitively and tolerate trailing colons/whitespace.
// Returns nil when the label is absent or carries no value.
func FieldValue(text, label string) *string {
	re := regexp.MustCompile(`(?im)^[ \t]*` + regexp.QuoteMeta(label) + `[ \t]*(?::[ \t]*|[ \t]{2,})(.+?)[ \t]*$`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return nil
	}
	return &v
}

// FieldFirst tries labels in order and returns the first match; rule lists
// encode their preference order through it (e.g. "Premium" before
// "Pro-rata Premium").
func FieldFirst(text string, labels ...string) *string {
	for _, label := range labels {
		if v := FieldValue(text, label); v != nil {
			return v
		}
	}
	return nil
}
