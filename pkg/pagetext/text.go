package pagetext

import (
	"os"
	"strings"
)

// extractText reads a plain-text schedule. Form-feed characters mark page
// boundaries; a file without them is a single page.
func extractText(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	return strings.Split(text, "\f"), nil
}
