package pagetext

import (
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// extractHTML extracts the text content of an HTML schedule export. The
// readability pass strips navigation chrome; goquery then walks the distilled
// content block by block so table rows come out one per line. A document
// readability cannot distill falls back to a plain goquery text walk.
func extractHTML(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	html := string(raw)

	base, _ := url.Parse("file://" + path)
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), base)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		html = article.Content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,tr,pre,div").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Filter("h1,h2,h3,h4,p,li,tr,pre,div,table,ul,ol").Length() > 0 {
			return
		}
		text := blockText(s)
		if text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		if text := strings.TrimSpace(doc.Text()); text != "" {
			lines = append(lines, text)
		}
	}
	return []string{strings.Join(lines, "\n")}, nil
}

// blockText renders one block element as a single line, joining table cells
// with double spaces so labeled rows keep a recognizable delimiter.
func blockText(s *goquery.Selection) string {
	if goquery.NodeName(s) == "tr" {
		var cells []string
		s.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			if t := strings.TrimSpace(cell.Text()); t != "" {
				cells = append(cells, strings.Join(strings.Fields(t), " "))
			}
		})
		return strings.Join(cells, "  ")
	}
	return strings.Join(strings.Fields(s.Text()), " ")
}
