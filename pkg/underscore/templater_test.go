package underscore_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/underscore"
)

var fruits = []string{
	"apple", "banana", "cherry", "date",
	"elderberry", "fig", "grape", "honeydew",
}

func TestGenerate_Count(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 7, 100} {
		got, err := underscore.Generate([]string{"apple"}, n, fruits, underscore.WithSeed(42))
		require.NoError(t, err)
		assert.Len(t, got, n)
	}
}

func TestGenerate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		n          int
		vocabulary []string
		opts       []underscore.Option
		wantErr    error
	}{
		{name: "negative count", n: -1, vocabulary: fruits, wantErr: underscore.ErrNegativeCount},
		{name: "empty vocabulary", n: 1, vocabulary: []string{}, wantErr: underscore.ErrEmptyVocabulary},
		{name: "nil vocabulary", n: 1, vocabulary: nil, wantErr: underscore.ErrEmptyVocabulary},
		{name: "empty vocabulary zero count", n: 0, vocabulary: nil, wantErr: underscore.ErrEmptyVocabulary},
		{name: "empty vocabulary negative count", n: -3, vocabulary: nil, wantErr: underscore.ErrEmptyVocabulary},
		{
			name:       "zero word count",
			n:          1,
			vocabulary: fruits,
			opts:       []underscore.Option{underscore.WithWordCount(0)},
			wantErr:    underscore.ErrInvalidWordCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := underscore.Generate([]string{"apple"}, tt.n, tt.vocabulary, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, underscore.ErrInvalidArgument)
			assert.Nil(t, got)
		})
	}
}

func TestGenerate_SentenceShape(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate(nil, 20, fruits, underscore.WithSeed(1))
	require.NoError(t, err)

	for _, s := range got {
		words := strings.Split(s, " ")
		assert.Len(t, words, underscore.DefaultWordCount)
		for _, w := range words {
			assert.Contains(t, fruits, w)
		}
	}
}

func TestGenerate_WordCount(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate(nil, 3, fruits, underscore.WithSeed(1), underscore.WithWordCount(4))
	require.NoError(t, err)
	for _, s := range got {
		assert.Len(t, strings.Fields(s), 4)
	}
}

func TestGenerate_UnderscoresTargets(t *testing.T) {
	t.Parallel()

	targets := []string{"apple banana", "banana cherry"}
	got, err := underscore.Generate(targets, 1000, []string{"apple", "banana", "cherry"}, underscore.WithSeed(42))
	require.NoError(t, err)
	require.Len(t, got, 1000)

	for _, target := range targets {
		want := strings.ReplaceAll(target, " ", "_")
		found := false
		for _, s := range got {
			if strings.Contains(s, want) {
				found = true
				break
			}
		}
		assert.True(t, found, "%s not found in any sentence", want)
	}
}

func TestGenerate_RepeatedWord(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate([]string{"apple"}, 1, []string{"apple"}, underscore.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(got[0], "apple"))
}

func TestGenerate_CaseInsensitive(t *testing.T) {
	t.Parallel()

	t.Run("mixed case target", func(t *testing.T) {
		t.Parallel()

		// A single multi-word entry guarantees a match in every sentence.
		got, err := underscore.Generate([]string{"Apple Banana"}, 2, []string{"apple banana"}, underscore.WithSeed(42))
		require.NoError(t, err)
		for _, s := range got {
			assert.Contains(t, s, "apple_banana")
			assert.NotContains(t, s, "apple banana")
		}
	})

	t.Run("upper case target", func(t *testing.T) {
		t.Parallel()

		got, err := underscore.Generate([]string{"APPLE BANANA"}, 1, []string{"apple banana"})
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("apple_banana ", 9)+"apple_banana", got[0])
	})

	t.Run("mixed case vocabulary", func(t *testing.T) {
		t.Parallel()

		got, err := underscore.Generate([]string{"apple banana"}, 1, []string{"ApPle BaNaNa"})
		require.NoError(t, err)
		assert.Equal(t, 10, strings.Count(got[0], "apple_banana"))
	})
}

func TestGenerate_AbsentTarget(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate([]string{"mango"}, 50, []string{"apple", "banana", "cherry"})
	require.NoError(t, err)
	for _, s := range got {
		assert.NotContains(t, s, "mango")
	}
}

func TestGenerate_Lowercase(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate([]string{"Alice Charlie"}, 50, []string{"ALICE", "Bob", "charlie", "DaN"}, underscore.WithSeed(3))
	require.NoError(t, err)
	for _, s := range got {
		assert.Equal(t, strings.ToLower(s), s)
	}
}

func TestGenerate_WhitespaceTarget(t *testing.T) {
	t.Parallel()

	got, err := underscore.Generate([]string{" "}, 1, []string{"apple banana", "cherry"}, underscore.WithSeed(1))
	require.NoError(t, err)
	assert.NotContains(t, got[0], " ")
	assert.GreaterOrEqual(t, len(strings.Split(got[0], "_")), 10)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := underscore.Generate([]string{"apple banana"}, 25, fruits, underscore.WithSeed(7))
	require.NoError(t, err)
	b, err := underscore.Generate([]string{"apple banana"}, 25, fruits, underscore.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := underscore.Generate([]string{"apple banana"}, 25, fruits, underscore.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		targets  []string
		input    string
		expected string
	}{
		{
			name:     "no targets only lowercases",
			input:    "Apple BANANA cherry",
			expected: "apple banana cherry",
		},
		{
			name:     "ignores word boundaries",
			targets:  []string{"e b"},
			input:    "apple banana",
			expected: "apple_banana",
		},
		{
			name:     "metacharacters are literal",
			targets:  []string{"a.c"},
			input:    "abc a.c",
			expected: "abc a.c",
		},
		{
			name:     "metacharacters with spaces",
			targets:  []string{"(x) [y]"},
			input:    "(X) [Y] z",
			expected: "(x)_[y] z",
		},
		{
			name:     "replacement text is literal",
			targets:  []string{"$1 b"},
			input:    "$1 B",
			expected: "$1_b",
		},
		{
			name:     "later phrases see earlier replacements",
			targets:  []string{"alice bob", "bob charlie"},
			input:    "alice bob charlie",
			expected: "alice_bob_charlie",
		},
		{
			name:     "applied in order",
			targets:  []string{"x y z", "y z w"},
			input:    "x y z w",
			expected: "x_y_z w",
		},
		{
			name:     "reverse order changes result",
			targets:  []string{"y z w", "x y z"},
			input:    "x y z w",
			expected: "x y_z_w",
		},
		{
			name:     "empty target is a no-op",
			targets:  []string{""},
			input:    "Apple Banana",
			expected: "apple banana",
		},
		{
			name:     "non ascii case folding",
			targets:  []string{"ÉCOLE ÉTÉ"},
			input:    "école été",
			expected: "école_été",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tpl, err := underscore.New(tt.targets, []string{"x"})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tpl.Apply(tt.input))
		})
	}
}

func TestTemplater_Sentences(t *testing.T) {
	t.Parallel()

	tpl, err := underscore.New([]string{"fig grape"}, fruits, underscore.WithSeed(9))
	require.NoError(t, err)

	_, err = tpl.Sentences(-1)
	assert.ErrorIs(t, err, underscore.ErrNegativeCount)

	got, err := tpl.Sentences(5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestGenerate_UnseededDiffer(t *testing.T) {
	t.Parallel()

	vocab := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	first, err := underscore.Generate(nil, 20, vocab)
	require.NoError(t, err)
	second, err := underscore.Generate(nil, 20, vocab)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
