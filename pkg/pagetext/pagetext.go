// Package pagetext turns input files into page-ordered plain text. It is the
// collaborator in front of the extraction engine: PDF, HTML, and plain-text
// inputs all reduce to a models.Document plus quality metrics, and everything
// downstream is format-agnostic.
package pagetext

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/insuretext/policyscan/models"
)

// Quality describes how trustworthy the extracted text is. Records built
// from low-quality text still assemble; the caller surfaces a warning.
type Quality struct {
	PageCount      int
	CharsPerPage   float64
	PrintableRatio float64
}

// LowQuality reports whether the text is likely a failed conversion (image
// scan, broken encoding) rather than real schedule text.
func (q Quality) LowQuality() bool {
	return q.PrintableRatio < 0.8 || q.CharsPerPage < 100
}

// FromFile reads path and extracts page texts by file type. Unrecognized
// extensions are treated as plain text.
func FromFile(path string) (models.Document, Quality, error) {
	var pages []string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		pages, err = extractPDF(path)
	case ".html", ".htm":
		pages, err = extractHTML(path)
	default:
		pages, err = extractText(path)
	}
	if err != nil {
		return models.Document{}, Quality{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc := models.NewDocument(filepath.Base(path), pages)
	return doc, measure(pages), nil
}

func measure(pages []string) Quality {
	q := Quality{PageCount: len(pages)}
	total := 0
	printable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if unicode.IsPrint(r) || r == '\n' || r == '\t' {
				printable++
			}
		}
	}
	if q.PageCount > 0 {
		q.CharsPerPage = float64(total) / float64(q.PageCount)
	}
	if total > 0 {
		q.PrintableRatio = float64(printable) / float64(total)
	}
	return q
}
