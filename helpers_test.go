package ettndcsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	removeDuplicateStringsTestCase struct {
		name     string
		arr      []string
		isLower  bool
		expected []string
	}
)

var removeDuplicateStringsTestCases = []removeDuplicateStringsTestCase{
	{
		name:     "duplicates removed order kept",
		arr:      []string{"PAX1", "PAX2", "PAX1", "PAX2"},
		expected: []string{"PAX1", "PAX2"},
	},
	{
		name:     "lowercased output",
		arr:      []string{"PAX1", "pax2"},
		isLower:  true,
		expected: []string{"pax1", "pax2"},
	},
	{
		name:     "empty input",
		arr:      nil,
		expected: nil,
	},
}

func TestRemoveDuplicateStrings(t *testing.T) {
	for _, tc := range removeDuplicateStringsTestCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RemoveDuplicateStrings(tc.arr, tc.isLower))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 250.5, Round(250.5, 2))
	assert.Equal(t, 175.15, Round(100.10+75.05, 2))
	assert.Equal(t, 251.0, Round(250.996, 2))
	assert.Equal(t, 250.0, Round(250.4, 0))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"ADT", "CHD"}, "ADT"))
	assert.False(t, Contains([]string{"ADT", "CHD"}, "INF"))
	assert.False(t, Contains(nil, "ADT"))
}

func TestContainsLike(t *testing.T) {
	assert.True(t, ContainsLike(Mode, "[🔴 Down] vendor unreachable"))
	assert.False(t, ContainsLike(Mode, "vendor unreachable"))
}
