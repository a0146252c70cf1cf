package runic

import "strings"

// stripStress removes the IPA primary and secondary stress markers. Position
// indices in the ambiguity table count symbols of the stress-free form.
func stripStress(ipa string) string {
	return strings.Map(func(c rune) rune {
		if c == 'ˈ' || c == 'ˌ' {
			return -1
		}
		return c
	}, ipa)
}

// Disambiguate resolves every /f,v/ and /s,z/ position of a single word.
// Sounds default to the voiced single-rune form; a position renders unvoiced
// (doubled) only when the dictionary contains both realizations at that exact
// shape position. The uppercase F/S markers flag resolved-unvoiced sounds so
// the voicing pass below leaves them alone.
func Disambiguate(ipa string, ambiguities AmbiguityMap) string {
	chars := []rune(stripStress(ipa))
	for i, c := range chars {
		switch c {
		case 'F':
			chars[i] = 'f'
		case 'V':
			chars[i] = 'v'
		case 'S':
			chars[i] = 's'
		case 'Z':
			chars[i] = 'z'
		}
	}

	if positions, ok := ambiguities[shapeKey(string(chars))]; ok {
		for _, idx := range positions {
			if idx >= len(chars) {
				continue
			}
			switch chars[idx] {
			case 'f':
				chars[idx] = 'F'
			case 's':
				chars[idx] = 'S'
			}
		}
	}

	for i, c := range chars {
		switch c {
		case 'f':
			chars[i] = 'v'
		case 's':
			chars[i] = 'z'
		}
	}
	for i, c := range chars {
		switch c {
		case 'F':
			chars[i] = 'f'
		case 'S':
			chars[i] = 's'
		}
	}
	return string(chars)
}
