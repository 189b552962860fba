package pagetext

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var detectorOnce = sync.OnceValue(func() lingua.LanguageDetector {
	// Schedules in the source jurisdiction are printed in English or
	// Afrikaans; restricting the candidate set keeps detection fast.
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Afrikaans).
		Build()
})

// DetectLanguage returns the ISO 639-1 code of the document's language, or
// nil when the text carries too little signal to decide.
func DetectLanguage(text string) *string {
	text = strings.TrimSpace(text)
	if len(text) < 20 {
		return nil
	}
	lang, ok := detectorOnce().DetectLanguageOf(text)
	if !ok {
		return nil
	}
	code := strings.ToLower(lang.IsoCode639_1().String())
	return &code
}
