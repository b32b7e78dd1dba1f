package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleBytes bounds how much of each document is fed to the detector.
const sampleBytes = 8 * 1024

// Detector guesses the natural language of source documents for the run
// report. It never influences counting.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over all languages. Language models load
// lazily on first use.
func NewDetector() *Detector {
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			WithLowAccuracyMode().
			Build(),
	}
}

// Language returns the ISO 639-1 code (e.g. "en") of text, or "" when the
// detector is not confident.
func (d *Detector) Language(text string) string {
	language, ok := d.detector.DetectLanguageOf(sample(text))
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

// sample returns a valid UTF-8 prefix of at most sampleBytes.
func sample(text string) string {
	if len(text) <= sampleBytes {
		return strings.ToValidUTF8(text, " ")
	}
	cut := sampleBytes
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.ToValidUTF8(text[:cut], " ")
}
