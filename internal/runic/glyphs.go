package runic

import "strings"

// glyphFor maps a single phonetic symbol to its rune glyph. Unrecognized
// symbols pass through unchanged, which carries punctuation, apostrophes,
// newlines, and glyphs already produced by the fold pass. The uppercase
// letters are internal markers: F/S are the resolved-unvoiced sounds, I the
// short word-final i, X a space that must not become a word separator.
func glyphFor(c rune) string {
	switch c {
	case 'X':
		return " "
	case ' ':
		return "᛫"
	case 'a':
		return "ᚪ" // f_a_r
	case 'ɑ', 'ɔ':
		return "ᛟ" // h_o_t
	case 'æ':
		return "ᚫ" // h_a_t
	case 'ɛ':
		return "ᛖ" // s_e_nd
	case 'ɪ', 'I':
		return "ᛁ" // s_i_t, an_y_
	case 'i':
		return "ᛁᛁ" // s_ee_d
	case 'ʊ', 'u':
		return "ᚣ" // b_oo_k, f_oo_d
	case 'ə', 'ʌ', 'ɜ':
		return "ᚢ" // _a_bout, f_u_n
	case 'p', 'P':
		return "ᛈ"
	case 'b':
		return "ᛒ"
	case 't', 'T':
		return "ᛏ"
	case 'd', 'D':
		return "ᛞ"
	case 'k', 'K':
		return "ᚳ"
	case 'g':
		return "ᚷ"
	case 'f', 'F':
		return "ᚠᚠ" // unvoiced is doubled
	case 'v':
		return "ᚠ"
	case 'θ', 'ð':
		return "ᚦ"
	case 's', 'S':
		return "ᛋᛋ" // unvoiced is doubled
	case 'z':
		return "ᛋ"
	case 'ʃ', 'ʒ':
		return "ᛋᚻ" // _sh_are, mea_s_ure
	case 'h':
		return "ᚻ"
	case 'm', 'M':
		return "ᛗ"
	case 'n', 'N':
		return "ᚾ"
	case 'ŋ':
		return "ᛝ" // ri_ng_
	case 'j':
		return "ᛄ" // _y_ou
	case 'w':
		return "ᚹ"
	case 'ɹ', 'R':
		return "ᚱ"
	case 'l', 'L':
		return "ᛚ"
	case 'ˣ':
		return "ᛉ" // letter x spoken as /ks/
	case 'ʤ':
		return "ᚷᚻ" // _j_og
	case 'ʧ':
		return "ᚳᚻ" // _ch_eese
	case 'ɚ':
		return "ᚢᚱ" // runn_er_
	default:
		return string(c)
	}
}

// toGlyphs is the second encoder pass: per-symbol glyph substitution followed
// by the two ligature contractions over the finished string.
func toGlyphs(s string) string {
	var b strings.Builder
	for _, c := range s {
		b.WriteString(glyphFor(c))
	}
	out := b.String()
	out = strings.ReplaceAll(out, "ᛋᛏ", "ᛥ") // _st_one
	out = strings.ReplaceAll(out, "ᚳᚹ", "ᛢ") // _qu_een
	return out
}
