package menucount_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/menucount"
)

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    [][]string
		expected []menucount.Bin
	}{
		{
			name:  "nested orders",
			input: [][]string{{"Pizza", "Burger"}, {"Pizza", "Coke"}, {"Pasta", "Coke"}},
			expected: []menucount.Bin{
				{Item: "Burger", Count: 1},
				{Item: "Coke", Count: 2},
				{Item: "Pasta", Count: 1},
				{Item: "Pizza", Count: 2},
			},
		},
		{
			name:     "single item",
			input:    [][]string{{"Burger"}},
			expected: []menucount.Bin{{Item: "Burger", Count: 1}},
		},
		{
			name:  "case sensitive",
			input: [][]string{{"a", "A"}, {"a"}},
			expected: []menucount.Bin{
				{Item: "A", Count: 1},
				{Item: "a", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := menucount.Count(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCount_Empty(t *testing.T) {
	t.Parallel()

	_, err := menucount.Count(nil)
	assert.ErrorIs(t, err, menucount.ErrEmptyInput)

	_, err = menucount.Count([][]string{{}, {}})
	assert.ErrorIs(t, err, menucount.ErrEmptyInput)
}

func TestRender(t *testing.T) {
	t.Parallel()

	bins := []menucount.Bin{{Item: "Coke", Count: 2}, {Item: "Pizza", Count: 1}}

	var buf bytes.Buffer
	require.NoError(t, menucount.Render(&buf, "Menu Distribution", bins, 4))
	assert.Equal(t, "Menu Distribution\nCoke  | #### 2\nPizza | ## 1\n", buf.String())
}
