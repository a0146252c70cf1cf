// Package runic transliterates English text into the futhorc runic script.
// Words are mapped to IPA transcriptions through a bundled pronunciation
// lexicon, rewritten by a fixed set of phonological rules, and rendered as
// rune glyphs. Out-of-lexicon words pass through untranslated.
package runic

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed lexicon.txt
var lexiconData string

// Dictionary maps lowercase English words (including apostrophe
// contractions) to IPA transcriptions.
type Dictionary map[string]string

// overrides layers irregular and dialect-specific pronunciations over the
// bundled lexicon. Several entries hand-pick voicing (v/z instead of f/s) so
// common function words render with the single rune.
var overrides = map[string]string{
	"know":      "noʊw",
	"futhorc":   "vʌθɑɹk",
	"the":       "ðɛ",
	"'tis":      "'tɪz",
	"and":       "ænd",
	"of":        "ɔv",
	"a":         "ᚢ",
	"from":      "fɹɔm",
	"aren't":    "ɑɹnt",
	"isn't":     "ɪznt",
	"didn't":    "dɪdnt",
	"doesn't":   "dʌznt",
	"shouldn't": "ʃʊdənt",
	"couldn't":  "kʊdnt",
	"wouldn't":  "wʊdnt",
	"i'm":       "aɪ'm",
	"for":       "vɔɹ",
	"so":        "zow",
	"use":       "juz",
	"first":     "vɚst",
	"vase":      "vaz",
	"worse":     "wɚz",
	"either":    "aɪðɚ",
	"neither":   "naɪðɚ",
	"else":      "ɛlz",
	"since":     "zɪns",
}

// LoadDictionary parses the bundled lexicon and applies the override table.
// A malformed entry aborts loading: downstream stages assume every
// transcription has at least one symbol.
func LoadDictionary() (Dictionary, error) {
	dict, err := ParseLexicon(lexiconData)
	if err != nil {
		return nil, err
	}
	for word, ipa := range overrides {
		dict[word] = ipa
	}
	return dict, nil
}

// ParseLexicon reads "word, transcription" lines. Lines whose word column is
// the XXXXX sentinel are skipped.
func ParseLexicon(data string) (Dictionary, error) {
	dict := make(Dictionary)
	for i, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("lexicon line %d: want \"word, transcription\", got %q", i+1, line)
		}
		if fields[0] == "XXXXX" {
			continue
		}
		// The word column carries a trailing comma.
		word := strings.TrimSuffix(fields[0], ",")
		ipa := fields[1]
		if word == "" || ipa == "" {
			return nil, fmt.Errorf("lexicon line %d: empty entry %q", i+1, line)
		}
		dict[word] = ipa
	}
	return dict, nil
}
