package runic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldPairs(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"steɪ", "stᛠ"},     // stay
		{"noʊw", "nᚩw"},     // know: oʊ folds, trailing glide stays
		{"faʊnd", "fᚪᚹnd"},  // found
		{"fɑɹ", "fᚪᚱ"},      // far
		{"ðɛɹ", "ðᛠᚱ"},      // there
		{"hiɹ", "hᛁᛁᚱ"},     // here
		{"pɔɪnt", "pᚩᛁnt"},  // point
		{"dɔɹ", "dᚩᚱ"},      // door
		{"tʃiz", "ᚳᚻiz"},    // cheese
		{"dʒɑg", "ᚷᚻɑg"},    // jog
		{"ɹɪŋg", "ɹɪᛝ"},     // ring with spelled g
		{"sS", "ᛋᛋᛋ"},       // doubled-sibilant marker pair
		{"", ""},
		{"t", "t"},
	}
	for _, tt := range tests {
		got := foldPairs(tt.input)
		if got != tt.want {
			t.Errorf("foldPairs(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFoldPairsNeverReexaminesConsumedSymbols(t *testing.T) {
	// After oʊ is consumed, the ʊ cannot start another match.
	assert.Equal(t, "ᚩɹ", foldPairs("oʊɹ"))

	// aɪ wins over a trailing ɹ pairing.
	assert.Equal(t, "ᛡɹ", foldPairs("aɪɹ"))
}

func TestToGlyphs(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"kɑma", "ᚳᛟᛗᚪ"},
		{"ziv", "ᛋᛁᛁᚠ"},
		{"sif", "ᛋᛋᛁᛁᚠᚠ"}, // unvoiced doubles
		{"ˣ", "ᛉ"},
		{"X", " "},
		{" ", "᛫"},
		{"a'b,", "ᚪ'ᛒ,"}, // apostrophes and punctuation pass through
		{"\n", "\n"},
	}
	for _, tt := range tests {
		got := toGlyphs(tt.input)
		if got != tt.want {
			t.Errorf("toGlyphs(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToGlyphsLigatures(t *testing.T) {
	// z+t yields ᛋᛏ, contracted to the ᛥ ligature.
	assert.Equal(t, "ᛥᚩᚾ", toGlyphs("ztᚩn"))
	// k+w contracts to ᛢ.
	assert.Equal(t, "ᛢᛁᛁᚾ", toGlyphs("kwᛁᛁn"))
	// The unvoiced double ᛋᛋ before ᛏ contracts its second ᛋ only.
	assert.Equal(t, "ᛋᛥ", toGlyphs("st"))
}
