package domain

import (
	"math"
	"math/bits"
	"slices"
	"strings"
	"unicode"
)

// KeywordLength is the number of letters in a keyword and the number of
// letter sets in a puzzle.
const KeywordLength = 6

// Position identifies one of the six keyword positions.
type Position int

// Keyword positions, outermost (slowest varying) first.
const (
	Position1 Position = iota
	Position2
	Position3
	Position4
	Position5
	Position6
)

// Positions lists every position in enumeration order.
var Positions = [KeywordLength]Position{Position1, Position2, Position3, Position4, Position5, Position6}

// LetterSet is the normalised set of candidate letters for one position:
// unique, uppercase and sorted by code point.
type LetterSet string

// Normalize converts raw user text into a LetterSet.
// Whitespace is stripped, letters are uppercased, duplicates are dropped
// (first occurrence wins) and the result is sorted.
func Normalize(raw string) LetterSet {
	if raw == "" {
		return ""
	}

	upper := []rune(strings.ToUpper(raw))
	seen := make(map[rune]struct{}, len(upper))
	letters := make([]rune, 0, len(upper))
	for _, r := range upper {
		if unicode.IsSpace(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		letters = append(letters, r)
	}

	slices.Sort(letters)
	return LetterSet(letters)
}

// Letters returns the letters of the set in order.
func (s LetterSet) Letters() []rune {
	return []rune(string(s))
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	return len(s.Letters())
}

// IsEmpty reports whether the set has no letters.
func (s LetterSet) IsEmpty() bool {
	return s == ""
}

// String returns the letters as a string.
func (s LetterSet) String() string {
	return string(s)
}

// LetterSets holds the six letter sets of a puzzle.
type LetterSets [KeywordLength]LetterSet

// NormalizeAll normalises the raw text of all six positions.
func NormalizeAll(raw [KeywordLength]string) LetterSets {
	var sets LetterSets
	for _, p := range Positions {
		sets[p] = Normalize(raw[p])
	}
	return sets
}

// At returns the letter set for a position.
func (s LetterSets) At(p Position) LetterSet {
	return s[p]
}

// Validate returns ErrInvalidInput if any position has no letters.
func (s LetterSets) Validate() error {
	for _, set := range s {
		if set.IsEmpty() {
			return ErrInvalidInput
		}
	}
	return nil
}

// MaxCombinations is the saturated value of Combinations.
const MaxCombinations = math.MaxUint64

// Combinations returns the number of candidate keywords the sets produce.
// It is zero when any set is empty and saturates at MaxCombinations.
func (s LetterSets) Combinations() uint64 {
	total := uint64(1)
	for _, set := range s {
		hi, lo := bits.Mul64(total, uint64(set.Len()))
		if hi != 0 {
			total = MaxCombinations
			continue
		}
		total = lo
	}
	return total
}
