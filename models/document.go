package models

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyDocument is the single fatal extraction error: the input carries no
// usable text at all. Every other failure degrades to null fields and a
// reduced confidence score.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// Document is the engine's only input: the ordered page texts of one policy
// schedule. Page boundaries are informational; the engine treats the pages as
// a single linear text stream.
type Document struct {
	Source string
	Pages  []string
}

// NewDocument builds a Document from ordered page texts.
func NewDocument(source string, pages []string) Document {
	return Document{Source: source, Pages: pages}
}

// Text joins all pages into the linearized text stream the segmenter scans.
func (d Document) Text() string {
	return strings.Join(d.Pages, "\n")
}

// Validate reports ErrEmptyDocument when the document is empty or its content
// is not text (binary noise from a failed upstream conversion).
func (d Document) Validate() error {
	text := strings.TrimSpace(d.Text())
	if text == "" {
		return ErrEmptyDocument
	}
	printable := 0
	total := 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	if total > 0 && float64(printable)/float64(total) < 0.5 {
		return ErrEmptyDocument
	}
	return nil
}
