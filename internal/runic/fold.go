package runic

import "strings"

// foldRule rewrites an adjacent symbol pair as one encodable unit. The first
// symbol must match exactly; the second may be any rune in seconds.
type foldRule struct {
	first   rune
	seconds string
	out     string
}

// foldRules is tried in order; the first structural match wins and consumes
// both symbols. The scan never re-examines consumed symbols.
var foldRules = []foldRule{
	{'e', "ɪj", "ᛠ"},    // st_ay_
	{'a', "ɪj", "ᛡ"},    // l_ie_
	{'a', "ʊw", "ᚪᚹ"},   // f_ou_nd
	{'ɑ', "ɹ", "ᚪᚱ"},    // f_ar_
	{'ɛ', "ɹ", "ᛠᚱ"},    // ai_r_
	{'ɪ', "ɹ", "ᛁᛁᚱ"},   // f_ear_
	{'i', "ɹ", "ᛁᛁᚱ"},   // h_ere_
	{'o', "ʊw", "ᚩ"},    // n_o_
	{'ɔ', "ɪj", "ᚩᛁ"},   // p_oi_nt
	{'ɔ', "ɹ", "ᚩᚱ"},    // d_oo_r
	{'t', "ʃ", "ᚳᚻ"},    // _ch_eese
	{'d', "ʒ", "ᚷᚻ"},    // _j_og
	{'ŋ', "g", "ᛝ"},     // ri_ng_
	{'s', "S", "ᛋᛋᛋ"},   // mi_ss_tate
}

func matchFold(first, second rune) (string, bool) {
	for _, r := range foldRules {
		if r.first == first && strings.ContainsRune(r.seconds, second) {
			return r.out, true
		}
	}
	return "", false
}

// foldPairs is the first encoder pass: a left-to-right scan with one-symbol
// lookahead collapsing diphthongs, affricates, and the other digraph rules.
// A trailing unpaired symbol is emitted verbatim.
func foldPairs(ipa string) string {
	chars := []rune(ipa)
	var b strings.Builder
	for i := 0; i < len(chars); {
		if i+1 < len(chars) {
			if out, ok := matchFold(chars[i], chars[i+1]); ok {
				b.WriteString(out)
				i += 2
				continue
			}
		}
		b.WriteRune(chars[i])
		i++
	}
	return b.String()
}
