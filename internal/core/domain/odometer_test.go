package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, sets LetterSets) []string {
	t.Helper()
	o, err := NewOdometer(sets)
	require.NoError(t, err)

	var got []string
	for {
		candidate, ok := o.Next()
		if !ok {
			return got
		}
		got = append(got, candidate)
	}
}

func TestOdometer_SingleCandidate(t *testing.T) {
	got := drain(t, LetterSets{"A", "B", "C", "D", "E", "F"})
	assert.Equal(t, []string{"ABCDEF"}, got)
}

func TestOdometer_LastPositionVariesFastest(t *testing.T) {
	got := drain(t, LetterSets{"AB", "C", "D", "E", "F", "XYZ"})

	assert.Equal(t, []string{
		"ACDEFX", "ACDEFY", "ACDEFZ",
		"BCDEFX", "BCDEFY", "BCDEFZ",
	}, got)
}

func TestOdometer_CarriesAcrossPositions(t *testing.T) {
	got := drain(t, LetterSets{"A", "B", "CD", "E", "FG", "H"})

	assert.Equal(t, []string{"ABCEFH", "ABCEGH", "ABDEFH", "ABDEGH"}, got)
}

func TestOdometer_ProducesEveryCombinationOnce(t *testing.T) {
	sets := LetterSets{"AB", "CDE", "F", "GH", "IJK", "LM"}
	got := drain(t, sets)

	require.Len(t, got, int(sets.Combinations()))

	seen := make(map[string]bool, len(got))
	for i, candidate := range got {
		assert.False(t, seen[candidate], "duplicate %s", candidate)
		seen[candidate] = true
		if i > 0 {
			assert.Less(t, got[i-1], candidate, "odometer order must be lexicographic for sorted sets")
		}
	}
}

func TestOdometer_ExhaustedStaysExhausted(t *testing.T) {
	o, err := NewOdometer(LetterSets{"A", "B", "C", "D", "E", "F"})
	require.NoError(t, err)

	_, ok := o.Next()
	require.True(t, ok)

	for range 3 {
		candidate, ok := o.Next()
		assert.False(t, ok)
		assert.Empty(t, candidate)
	}
}

func TestNewOdometer_EmptySet(t *testing.T) {
	o, err := NewOdometer(LetterSets{"A", "B", "", "D", "E", "F"})

	assert.Nil(t, o)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "position 3")
}

func TestCandidates(t *testing.T) {
	t.Run("yields in order", func(t *testing.T) {
		seq, err := Candidates(LetterSets{"A", "B", "C", "D", "E", "FG"})
		require.NoError(t, err)

		var got []string
		for candidate := range seq {
			got = append(got, candidate)
		}
		assert.Equal(t, []string{"ABCDEF", "ABCDEG"}, got)
	})

	t.Run("stops early without generating more", func(t *testing.T) {
		seq, err := Candidates(LetterSets{"AB", "B", "C", "D", "E", "FG"})
		require.NoError(t, err)

		var got []string
		for candidate := range seq {
			got = append(got, candidate)
			if len(got) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"ABCDEF", "ABCDEG"}, got)
	})

	t.Run("empty set fails before enumeration", func(t *testing.T) {
		seq, err := Candidates(LetterSets{"A", "B", "C", "D", "E", ""})
		assert.Nil(t, seq)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
