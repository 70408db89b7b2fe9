package util

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewULID(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = NewULID()
		assert.Len(t, ids[i], 26)
		assert.True(t, IsValidULID(ids[i]))
	}
	assert.True(t, sort.StringsAreSorted(ids), "ULIDs should sort in creation order")
}

func TestIsValidULID(t *testing.T) {
	assert.True(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.False(t, IsValidULID(""))
	assert.False(t, IsValidULID("42"))
	assert.False(t, IsValidULID("01ARZ3NDEKTSV4RRFFQ69G5FA!"))
}

func TestHashString(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashString(""))
	assert.Equal(t, HashString("quiz"), HashString("quiz"))
	assert.NotEqual(t, HashString("quiz"), HashString("Quiz"))
}

func TestStringToNullString(t *testing.T) {
	assert.False(t, StringToNullString("").Valid)

	ns := StringToNullString("text")
	assert.True(t, ns.Valid)
	assert.Equal(t, "text", ns.String)
}
