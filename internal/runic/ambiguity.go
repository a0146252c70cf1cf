package runic

import (
	"math/bits"
	"strings"
)

// Sentinel class symbols used in shape keys. Each labial/sibilant pair
// collapses to one class so that words differing only in voicing share a key.
const (
	classLabial   = '\x00' // f, v
	classSibilant = '\x01' // s, S, z
)

// AmbiguityMap records, per phonetic shape, the symbol positions at which
// both an unvoiced and a voiced realization occur somewhere in the
// dictionary. A word whose shape is absent resolves all-voiced.
type AmbiguityMap map[string][]int

// voicingMasks tracks which of the first 32 positions of a shape have been
// seen holding each of the four sounds. Longer words register no ambiguity
// past that bound.
type voicingMasks struct {
	f, v, s, z uint32
}

// shapeKey collapses a transcription to its ambiguity-table key: f/v become
// one class, s/z (and the unvoiced marker S) another, everything else stands
// for itself.
func shapeKey(ipa string) string {
	var b strings.Builder
	b.Grow(len(ipa))
	for _, c := range ipa {
		switch c {
		case 'f', 'v':
			b.WriteRune(classLabial)
		case 's', 'S', 'z':
			b.WriteRune(classSibilant)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func ingestWord(ipa string) voicingMasks {
	var m voicingMasks
	for i, c := range []rune(ipa) {
		if i >= 32 {
			break
		}
		bit := uint32(1) << i
		switch c {
		case 'f':
			m.f |= bit
		case 'v':
			m.v |= bit
		case 's', 'S':
			m.s |= bit
		case 'z':
			m.z |= bit
		}
	}
	return m
}

// DetectAmbiguities scans the whole dictionary once and merges the voicing
// masks of every word sharing a shape. A position is ambiguous iff both
// members of a pair have been seen there. Shapes without ambiguity are
// omitted.
func DetectAmbiguities(dict Dictionary) AmbiguityMap {
	merged := make(map[string]voicingMasks, len(dict))
	for _, ipa := range dict {
		plain := stripStress(ipa)
		key := shapeKey(plain)
		m := ingestWord(plain)
		e := merged[key]
		e.f |= m.f
		e.v |= m.v
		e.s |= m.s
		e.z |= m.z
		merged[key] = e
	}

	ambiguities := make(AmbiguityMap)
	for key, m := range merged {
		amb := (m.f & m.v) | (m.s & m.z)
		if amb == 0 {
			continue
		}
		var positions []int
		for amb != 0 {
			positions = append(positions, bits.TrailingZeros32(amb))
			amb &= amb - 1 // clear lowest set bit
		}
		ambiguities[key] = positions
	}
	return ambiguities
}
