package runic

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Translator holds the immutable lookup structures the pipeline needs:
// the pronunciation dictionary and the ambiguity table derived from it.
// Both are built once and never mutated, so a single Translator is safe to
// share across goroutines.
type Translator struct {
	dict        Dictionary
	ambiguities AmbiguityMap
}

// New builds a Translator over the bundled lexicon.
func New() (*Translator, error) {
	dict, err := LoadDictionary()
	if err != nil {
		return nil, err
	}
	return FromDictionary(dict)
}

// FromDictionary builds a Translator over a caller-supplied dictionary,
// computing the ambiguity table in one pass. Every transcription must have
// at least one symbol; a violation is a construction error, never a silent
// per-word corruption later.
func FromDictionary(dict Dictionary) (*Translator, error) {
	for word, ipa := range dict {
		if word == "" || ipa == "" {
			return nil, &DictError{Word: word, IPA: ipa}
		}
	}
	return &Translator{dict: dict, ambiguities: DetectAmbiguities(dict)}, nil
}

// DictError reports a malformed dictionary entry.
type DictError struct {
	Word string
	IPA  string
}

func (e *DictError) Error() string {
	return "runic: malformed dictionary entry \"" + e.Word + "\" -> \"" + e.IPA + "\""
}

// Translate renders text in runes. It is total and deterministic: words
// absent from the dictionary pass through as-is, the original whitespace
// structure is preserved exactly (runs of spaces become ᛫ separators), and
// punctuation survives verbatim.
func (t *Translator) Translate(text string) string {
	text = strings.ToLower(text)

	spaces := parseWhitespace(text)
	var units []wordUnit
	extra := 0 // whitespace slots inserted for hyphen segments

	for i, token := range strings.Fields(text) {
		word, punct := stripPunct(token)

		if ipa, ok := t.dict[word]; ok {
			units = append(units, phoneticUnit(word, ipa))
		} else if strings.Contains(word, "-") {
			// Resolve hyphen segments one by one, keeping literal
			// hyphens between them in the whitespace list.
			for k, segment := range strings.Split(word, "-") {
				if k > 0 {
					spaces = slices.Insert(spaces, i+extra+1, "-")
					extra++
				}
				if ipa, ok := t.dict[segment]; ok {
					units = append(units, phoneticUnit(word, ipa))
				} else {
					units = append(units, wordUnit{text: segment})
				}
			}
		} else {
			units = append(units, wordUnit{text: word})
		}

		if punct != 0 {
			attachPunct(punct, units, spaces, i+extra+1)
		}
	}

	var b strings.Builder
	b.WriteString(toGlyphs(spaces[0]))
	for i, u := range units {
		if u.translated {
			b.WriteString(t.encodeWord(u.text))
		} else {
			b.WriteString(u.text)
		}
		b.WriteString(toGlyphs(spaces[i+1]))
	}
	return b.String()
}

// encodeWord runs one disambiguated word through both encoder passes.
func (t *Translator) encodeWord(ipa string) string {
	return toGlyphs(foldPairs(Disambiguate(ipa, t.ambiguities)))
}

// stripPunct removes at most one trailing sentence-punctuation character,
// returning it for later reattachment (0 when none).
func stripPunct(word string) (string, rune) {
	c, size := utf8.DecodeLastRuneInString(word)
	switch c {
	case ',', ':', ';', '.', '!', '?':
		return word[:len(word)-size], c
	}
	return word, 0
}

// attachPunct reattaches a stripped punctuation mark to the last unit and
// marks the first space of the following whitespace run with the X
// substitution marker, so punctuation touching the next word does not gain
// an extra ᛫ separator.
func attachPunct(punct rune, units []wordUnit, spaces []string, index int) {
	u := &units[len(units)-1]
	u.text += string(punct)

	if strings.HasPrefix(spaces[index], " ") {
		spaces[index] = "X" + spaces[index][1:]
	}
}

// parseWhitespace records every whitespace run of the input, including the
// (possibly empty) leading and trailing runs. For N tokens it returns N+1
// runs, so run i precedes token i.
func parseWhitespace(text string) []string {
	var runs []string
	var run strings.Builder
	onSpace := true

	for _, c := range text {
		if onSpace {
			if unicode.IsSpace(c) {
				run.WriteRune(c)
			} else {
				onSpace = false
				runs = append(runs, run.String())
				run.Reset()
			}
		} else if unicode.IsSpace(c) {
			onSpace = true
			run.WriteRune(c)
		}
	}

	if onSpace {
		runs = append(runs, run.String())
	} else {
		runs = append(runs, "")
	}
	return runs
}
