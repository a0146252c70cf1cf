package runic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New()
	require.NoError(t, err)
	return tr
}

func TestTranslateKnowVersusNo(t *testing.T) {
	tr := newTestTranslator(t)

	// "know" carries a dictionary override ending in the glide rune;
	// the distinction is not derivable from spelling.
	assert.Equal(t, "ᚾᚩ", tr.Translate("no"))
	assert.Equal(t, "ᚾᚩᚹ", tr.Translate("know"))
}

func TestTranslatePreservesNewlines(t *testing.T) {
	tr := newTestTranslator(t)

	got := tr.Translate("apple banana\ncarrot\n\n")
	assert.Equal(t, "ᚫᛈᚢᛚ᛫ᛒᚢᚾᚫᚾᚪ\nᚳᚫᚱᚢᛏ\n\n", got)
}

func TestTranslateApostropheSuffixes(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		input string
		want  string
	}{
		{"abram's", "ᛠᛒᚱᚢᛗ'ᛋ"},
		{"absolut's", "ᚫᛒᛋᚢᛚᚣᛏ'ᛋ"},
		{"company'll", "ᚳᚢᛗᛈᚢᚾᛁ'ᛚ"},
		{"he'll", "ᚻᛁ'ᛚ"},
		{"we'll", "ᚹᛁ'ᛚ"},
		{"lady's", "ᛚᛠᛞᛁ'ᛋ"},
		{"immigrants'", "ᛁᛗᛁᚷᚱᚢᚾᛏᛋ'"},
		{"who'd", "ᚻᚣ'ᛞ"},
		{"it'd", "ᛁᛏ'ᛞ"},
		{"that'd", "ᚦᚫᛏ'ᛞ"},
		{"who'll", "ᚻᚣ'ᛚ"},
		{"who're", "ᚻᚣ'ᚱ"},
		{"who's", "ᚻᚣ'ᛋ"},
		{"who've", "ᚻᚣ'ᚠ"},
		{"should've", "ᛋᚻᚣᛞ'ᚠ"},
		{"i'm", "ᛡ'ᛗ"},
		{"don't", "ᛞᚩᚾ'ᛏ"},
	}
	for _, tt := range tests {
		got := tr.Translate(tt.input)
		if got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTranslateFinalVowels(t *testing.T) {
	tr := newTestTranslator(t)

	// Word-final schwa renders ᚪ; "the" is excluded by its override.
	assert.Equal(t, "ᚳᛟᛗᚪ", tr.Translate("comma"))
	assert.Equal(t, "ᚦᛖ", tr.Translate("the"))

	// Word-final /i/ goes short; the same vowel mid-word stays long.
	assert.Equal(t, "ᛖᚾᛁ", tr.Translate("any"))
	assert.Equal(t, "ᚹᛁᛁᛚ", tr.Translate("wheel"))
	assert.Equal(t, "ᚹᛁᛚ", tr.Translate("will"))
}

func TestTranslateSyllabicConsonants(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, "ᛒᛟᛏᚢᛚ", tr.Translate("bottle"))
}

func TestTranslateVoicingAmbiguity(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		input string
		want  string
	}{
		// leaf and leave share a shape, so the final consonant position
		// is ambiguous: unvoiced doubles, voiced stays single.
		{"leaf", "ᛚᛁᛁᚠᚠ"},
		{"leave", "ᛚᛁᛁᚠ"},
		{"leaves", "ᛚᛁᛁᚠᛋ"},
		{"lose", "ᛚᚣᛋ"},
		{"loose", "ᛚᚣᛋᛋ"},
		{"once", "ᚹᚢᚾᛋᛋ"},
		{"ones", "ᚹᚢᚾᛋ"},
	}
	for _, tt := range tests {
		got := tr.Translate(tt.input)
		if got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTranslateUnambiguousVoicingDefaultsVoiced(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "ᚫᚠᛏᚢᚱ", tr.Translate("after"))
	assert.Equal(t, "ᚫᛋᚳ", tr.Translate("ask"))
}

func TestTranslateLetterX(t *testing.T) {
	tr := newTestTranslator(t)

	// Words spelled with "x" collapse /ks/ to ᛉ; /ks/ without the letter
	// keeps its two runes.
	assert.Equal(t, "ᛏᚫᛉ", tr.Translate("tax"))
	assert.Equal(t, "ᚱᚫᚳᛋ", tr.Translate("racks"))
	assert.Equal(t, "ᛏᚫᛉᛁᛋ", tr.Translate("taxes"))
}

func TestTranslateTrAndDrClusters(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "ᛏᚱᚢᚳ", tr.Translate("truck"))
	assert.Equal(t, "ᛞᚱᛟ", tr.Translate("draw"))
}

func TestTranslateLigatures(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "ᛥᚩᚾ", tr.Translate("stone"))
	assert.Equal(t, "ᛢᛁᛁᚾ", tr.Translate("queen"))
}

func TestTranslatePunctuationSpacing(t *testing.T) {
	tr := newTestTranslator(t)

	// The space after reattached punctuation stays a literal space
	// instead of gaining a ᛫ separator.
	got := tr.Translate("comma, the end.")
	assert.Equal(t, "ᚳᛟᛗᚪ, ᚦᛖ᛫ᛖᚾᛞ.", got)
}

func TestTranslateHyphenatedWords(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "ᛞᛟᚷ-ᚻᚪᚹᛋ", tr.Translate("dog-house"))

	// Unknown segments pass through literally.
	assert.Equal(t, "zzz-ᛞᛟᚷ", tr.Translate("zzz-dog"))
}

func TestTranslateUnknownWordsPassThrough(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, "qwerty", tr.Translate("qwerty"))
	assert.Equal(t, "qwerty!", tr.Translate("qwerty!"))
	assert.Equal(t, "ᚦᛖ᛫qwerty", tr.Translate("the qwerty"))
}

func TestTranslateSingleLetters(t *testing.T) {
	tr := newTestTranslator(t)

	// Only "a" and "i" translate as one-letter words; other letters are
	// labels or initials even when the lexicon knows them.
	assert.Equal(t, "ᚢ", tr.Translate("a"))
	assert.Equal(t, "ᛡ", tr.Translate("i"))
	assert.Equal(t, "o", tr.Translate("o"))
}

func TestTranslateLowercasesInput(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, tr.Translate("the"), tr.Translate("THE"))
}

func TestTranslateDeterministic(t *testing.T) {
	tr := newTestTranslator(t)

	const input = "the leaves fell, once more.\nwho'll ask?"
	first := tr.Translate(input)
	for range 5 {
		assert.Equal(t, first, tr.Translate(input))
	}
}

func TestFromDictionaryRejectsEmptyTranscription(t *testing.T) {
	_, err := FromDictionary(Dictionary{"bad": ""})
	require.Error(t, err)

	var dictErr *DictError
	require.ErrorAs(t, err, &dictErr)
	assert.Equal(t, "bad", dictErr.Word)
}

func TestFromDictionaryIsolatedEntries(t *testing.T) {
	// A minimal dictionary exercises the whole pipeline without the
	// bundled lexicon's shapes interfering.
	tr, err := FromDictionary(Dictionary{
		"fan": "fæn",
		"van": "væn",
		"fog": "fɑg",
	})
	require.NoError(t, err)

	// fan/van collide, so both render per the ambiguity rule.
	assert.Equal(t, "ᚠᚠᚫᚾ", tr.Translate("fan"))
	assert.Equal(t, "ᚠᚫᚾ", tr.Translate("van"))
	// fog has no voiced counterpart and defaults to voiced.
	assert.Equal(t, "ᚠᛟᚷ", tr.Translate("fog"))
}
