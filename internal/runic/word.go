package runic

import (
	"strings"
	"unicode/utf8"
)

// wordUnit is one output unit of the assembler: either a phonetic string
// ready for encoding or literal text to emit untouched.
type wordUnit struct {
	text       string
	translated bool
}

// phoneticUnit applies the per-word irregularity fixups the rune tables
// cannot express: the a/i-only single-letter rule, word-final vowel
// rewrites, apostrophe-suffix edits, and x marking. surface is the
// punctuation-stripped spelling; the suffix edits key on it, not on the
// transcription. The step order is load-bearing: suffixes see the rewritten
// final vowels, and x marking sees the suffix-shifted consonants.
func phoneticUnit(surface, ipa string) wordUnit {
	// Single letters other than "a" and "i" are labels or initials, not
	// words, even when the lexicon has an entry for them.
	if utf8.RuneCountInString(surface) == 1 {
		c, _ := utf8.DecodeRuneInString(surface)
		if c != 'a' && c != 'i' {
			return wordUnit{text: surface}
		}
	}

	chars := []rune(stripStress(ipa))

	// Word-final reduced vowel is written with the ᚪ rune ("comma", not
	// "commu"). "the" keeps ᛖ through its dictionary override.
	if n := len(chars); n > 0 {
		switch chars[n-1] {
		case 'ə', 'ʌ', 'ɜ':
			chars[n-1] = 'a'
		}
	}

	// Word-final /i/ is the short ᛁ, not the long ᛁᛁ: "any" ends short,
	// "wheel" keeps the long vowel mid-word.
	if n := len(chars); n > 0 && chars[n-1] == 'i' {
		chars[n-1] = 'I'
	}

	chars = applySuffix(surface, chars)
	chars = markLetterX(surface, chars)
	return wordUnit{text: string(chars), translated: true}
}

// applySuffix rewrites the transcription tail for the apostrophe suffix the
// surface spelling carries, if any. Branches are tried in fixed order and at
// most one applies.
func applySuffix(surface string, chars []rune) []rune {
	last := func() (rune, bool) {
		if len(chars) == 0 {
			return 0, false
		}
		return chars[len(chars)-1], true
	}

	switch {
	case strings.HasSuffix(surface, "'t"):
		if c, ok := last(); ok {
			chars = append(chars[:len(chars)-1], '\'', c)
		}

	case strings.HasSuffix(surface, "'d"):
		c, ok := last()
		if !ok {
			break
		}
		chars = chars[:len(chars)-1]
		if prev, ok := last(); ok && (prev == 'ʌ' || prev == 'ɪ') {
			// "it'd": the reduced vowel before the /d/ is elided.
			chars = append(chars[:len(chars)-1], '\'', 'd')
		} else {
			chars = append(chars, '\'', c)
		}

	case strings.HasSuffix(surface, "'s"):
		c, ok := last()
		if !ok {
			break
		}
		chars = chars[:len(chars)-1]
		if prev, ok := last(); ok && prev == 'i' {
			// "lady's": the i before the apostrophe goes short.
			chars[len(chars)-1] = 'I'
		}
		chars = append(chars, '\'', c)

	case strings.HasSuffix(surface, "'ll"):
		if c, ok := last(); ok && c == 'l' {
			chars = chars[:len(chars)-1]
			if prev, ok := last(); ok && (prev == 'ə' || prev == 'ʌ' || prev == 'ɜ' || prev == 'a') {
				chars = chars[:len(chars)-1]
			}
			if prev, ok := last(); ok && prev == 'i' {
				chars[len(chars)-1] = 'I'
			}
		}
		chars = append(chars, '\'', 'l')

	case strings.HasSuffix(surface, "'"):
		chars = append(chars, '\'')

	case strings.HasSuffix(surface, "'re"):
		if _, ok := last(); ok {
			chars = chars[:len(chars)-1]
		}
		chars = append(chars, '\'', 'ɹ')

	case strings.HasSuffix(surface, "'ve"):
		c, ok := last()
		if !ok {
			chars = append(chars, '\'', 'v')
			break
		}
		chars = chars[:len(chars)-1]
		if prev, ok := last(); ok && (prev == 'ə' || prev == 'ʌ' || prev == 'ɜ' || prev == 'a') {
			chars = chars[:len(chars)-1]
		}
		if prev, ok := last(); ok && prev == 'i' {
			chars[len(chars)-1] = 'I'
		}
		chars = append(chars, '\'', c)
	}

	return chars
}

// markLetterX collapses, for each letter x in the surface spelling left to
// right, the next unconsumed /k/+/s/ pair of the transcription into the ˣ
// marker so "tax" renders ᛉ while "racks" keeps ᚳᛋ. The search resumes one
// position past each match.
func markLetterX(surface string, chars []rune) []rune {
	if !strings.ContainsAny(surface, "xX") {
		return chars
	}

	searchStart := 0
	for _, c := range surface {
		if c != 'x' && c != 'X' {
			continue
		}
		for idx := searchStart; idx+1 < len(chars); idx++ {
			if chars[idx] == 'k' && chars[idx+1] == 's' {
				chars[idx] = 'ˣ'
				chars = append(chars[:idx+1], chars[idx+2:]...)
				searchStart = idx + 1
				break
			}
		}
	}
	return chars
}
