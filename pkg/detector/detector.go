package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// candidateLanguages is kept small: lingua loads one model per language.
var candidateLanguages = map[string]lingua.Language{
	"pt": lingua.Portuguese,
	"en": lingua.English,
	"es": lingua.Spanish,
	"fr": lingua.French,
	"de": lingua.German,
	"it": lingua.Italian,
}

// LanguageDetector guesses the language of extracted article text.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLanguageDetector builds a detector over the candidate languages plus
// the wiki's own locale, when lingua knows it.
func NewLanguageDetector(locale string) *LanguageDetector {
	languages := make([]lingua.Language, 0, len(candidateLanguages)+1)
	for _, lang := range candidateLanguages {
		languages = append(languages, lang)
	}
	if _, ok := candidateLanguages[locale]; !ok {
		for _, lang := range lingua.AllLanguages() {
			if strings.EqualFold(lang.IsoCode639_1().String(), locale) {
				languages = append(languages, lang)
				break
			}
		}
	}

	return &LanguageDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build(),
	}
}

// Detect returns the ISO 639-1 code of text, or "" when undecided.
func (d *LanguageDetector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
