package randstr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/randstr"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("length and content", func(t *testing.T) {
		t.Parallel()

		got, err := randstr.Generate(5, 10, randstr.WithSeed(1))
		require.NoError(t, err)
		require.Len(t, got, 10)
		for _, s := range got {
			assert.Regexp(t, `^[a-z]{1,5}$`, s)
		}
	})

	t.Run("reproducible", func(t *testing.T) {
		t.Parallel()

		a, err := randstr.Generate(3, 100, randstr.WithSeed(2))
		require.NoError(t, err)
		b, err := randstr.Generate(3, 100, randstr.WithSeed(2))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("varying max length", func(t *testing.T) {
		t.Parallel()

		for maxLen := 1; maxLen < 15; maxLen++ {
			got, err := randstr.Generate(maxLen, 10, randstr.WithSeed(3))
			require.NoError(t, err)
			for _, s := range got {
				assert.GreaterOrEqual(t, len(s), 1)
				assert.LessOrEqual(t, len(s), maxLen)
			}
		}
	})

	t.Run("custom charset", func(t *testing.T) {
		t.Parallel()

		got, err := randstr.Generate(8, 20, randstr.WithCharset("xy"), randstr.WithSeed(4))
		require.NoError(t, err)
		for _, s := range got {
			assert.Regexp(t, `^[xy]+$`, s)
		}
	})

	t.Run("non-positive count", func(t *testing.T) {
		t.Parallel()

		got, err := randstr.Generate(3, -2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid max length", func(t *testing.T) {
		t.Parallel()

		for _, maxLen := range []int{0, -1} {
			_, err := randstr.Generate(maxLen, 22)
			assert.ErrorIs(t, err, randstr.ErrInvalidMaxLength)
		}
	})
}
