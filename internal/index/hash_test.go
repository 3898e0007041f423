package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToDefaultBuckets(t *testing.T) {
	tests := []struct {
		buckets int
		want    int
	}{
		{0, DefaultBuckets},
		{-3, DefaultBuckets},
		{1, 1},
		{17, 17},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.buckets).BucketCount())
	}
}

func TestBucket_SumsCodePoints(t *testing.T) {
	h := New(10)

	// 'R'+'o'+'p'+'e' = 82+111+112+101 = 406
	assert.Equal(t, 6, h.Bucket("Rope"))
	assert.Equal(t, 0, h.Bucket(""))
	// 'ç' counts as one code point (231), not two bytes
	assert.Equal(t, 231%10, h.Bucket("ç"))
}

func TestLookup_MissingKey(t *testing.T) {
	h := New(DefaultBuckets)
	_, ok := h.Lookup("Candlestick")
	assert.False(t, ok)

	h.Insert("Rope", "Mrs. White")
	_, ok = h.Lookup("Candlestick")
	assert.False(t, ok)
}

func TestLookup_InsertedKey(t *testing.T) {
	h := New(DefaultBuckets)
	h.Insert("Candlestick", "Col. Mustard")
	h.Insert("Rope", "Mrs. White")

	got, ok := h.Lookup("Candlestick")
	require.True(t, ok)
	assert.Equal(t, "Col. Mustard", got)

	got, ok = h.Lookup("Rope")
	require.True(t, ok)
	assert.Equal(t, "Mrs. White", got)
}

func TestLookup_CollidingKeysInOneBucket(t *testing.T) {
	h := New(1)
	h.Insert("Candlestick", "Col. Mustard")
	h.Insert("Rope", "Mrs. White")
	h.Insert("Dagger", "Prof. Plum")

	for clue, want := range map[string]string{
		"Candlestick": "Col. Mustard",
		"Rope":        "Mrs. White",
		"Dagger":      "Prof. Plum",
	} {
		got, ok := h.Lookup(clue)
		require.True(t, ok, clue)
		assert.Equal(t, want, got, clue)
	}
	assert.Equal(t, 3, h.Len())
}

func TestInsert_ReinsertShadowsEarlierEntry(t *testing.T) {
	h := New(DefaultBuckets)
	h.Insert("Rope", "Mrs. White")
	h.Insert("Rope", "Prof. Plum")

	got, ok := h.Lookup("Rope")
	require.True(t, ok)
	assert.Equal(t, "Prof. Plum", got)
	assert.Equal(t, 2, h.Len())

	var visible []string
	h.Entries(func(clue, suspect string) { visible = append(visible, clue+"="+suspect) })
	assert.Equal(t, []string{"Rope=Prof. Plum"}, visible)
}

func TestSuspects_DistinctAndSorted(t *testing.T) {
	h := New(DefaultBuckets)
	h.Insert("Candlestick", "Col. Mustard")
	h.Insert("Rope", "Mrs. White")
	h.Insert("Poison", "Col. Mustard")
	h.Insert("Dagger", "Prof. Plum")

	assert.Equal(t, []string{"Col. Mustard", "Mrs. White", "Prof. Plum"}, h.Suspects())
	assert.Empty(t, New(3).Suspects())
}

func TestSuspects_SkipsShadowed(t *testing.T) {
	h := New(DefaultBuckets)
	h.Insert("Rope", "Mrs. White")
	h.Insert("Rope", "Prof. Plum")

	assert.Equal(t, []string{"Prof. Plum"}, h.Suspects())
}
