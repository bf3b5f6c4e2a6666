package domain

import (
	"fmt"
	"iter"
)

// Odometer enumerates the Cartesian product of six letter sets.
//
// Candidates are produced in odometer order: position 6 varies fastest and
// position 1 slowest. Each candidate is built only when Next is called, and
// the sequence cannot be restarted.
type Odometer struct {
	letters [KeywordLength][]rune
	digits  [KeywordLength]int
	started bool
	done    bool
}

// NewOdometer creates an odometer over the given sets.
// It fails with ErrInvalidInput if any set is empty.
func NewOdometer(sets LetterSets) (*Odometer, error) {
	o := &Odometer{}
	for _, p := range Positions {
		if sets[p].IsEmpty() {
			return nil, fmt.Errorf("%w: position %d has no letters", ErrInvalidInput, p+1)
		}
		o.letters[p] = sets[p].Letters()
	}
	return o, nil
}

// Next returns the next candidate, or false once every combination has
// been produced.
func (o *Odometer) Next() (string, bool) {
	if o.done {
		return "", false
	}
	if o.started && !o.advance() {
		o.done = true
		return "", false
	}
	o.started = true
	return o.current(), true
}

// advance turns the odometer by one, carrying leftwards.
// It reports false when the outermost wheel wraps.
func (o *Odometer) advance() bool {
	for p := KeywordLength - 1; p >= 0; p-- {
		o.digits[p]++
		if o.digits[p] < len(o.letters[p]) {
			return true
		}
		o.digits[p] = 0
	}
	return false
}

func (o *Odometer) current() string {
	keyword := make([]rune, KeywordLength)
	for p := range keyword {
		keyword[p] = o.letters[p][o.digits[p]]
	}
	return string(keyword)
}

// Candidates returns the candidates of the sets as a single-use sequence.
// It fails with ErrInvalidInput before yielding anything if any set is empty.
func Candidates(sets LetterSets) (iter.Seq[string], error) {
	o, err := NewOdometer(sets)
	if err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		for {
			candidate, ok := o.Next()
			if !ok || !yield(candidate) {
				return
			}
		}
	}, nil
}
