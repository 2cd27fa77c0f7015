package saltedhash_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/saltedhash"
)

func TestHash_Lengths(t *testing.T) {
	t.Parallel()

	res, err := saltedhash.Hash("F3BE8080", 16)
	require.NoError(t, err)
	assert.Len(t, res.Salt, 24)
	assert.Len(t, res.Hash, 64)
}

func TestHashWithReader(t *testing.T) {
	t.Parallel()

	salt := bytes.Repeat([]byte{0x01}, 4)
	res, err := saltedhash.HashWithReader(bytes.NewReader(salt), "F3BE8080", 4)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte{0x01, 0x01, 0x01, 0x01, 0xF3, 0xBE, 0x80, 0x80})
	assert.Equal(t, "AQEBAQ==", res.Salt)
	assert.Equal(t, hex.EncodeToString(sum[:]), res.Hash)
}

func TestHash_InputFormats(t *testing.T) {
	t.Parallel()

	salt := []byte("0123456789abcdef")
	hash := func(s string) string {
		res, err := saltedhash.HashWithReader(bytes.NewReader(salt), s, len(salt))
		require.NoError(t, err)
		return res.Hash
	}

	plain := hash("F3BE8080")
	assert.Equal(t, plain, hash("f3be8080"), "hex decoding is case-insensitive")
	assert.Equal(t, plain, hash(`\xF3\xBE\x80\x80`), "escape prefixes are stripped")
	assert.NotEqual(t, plain, hash("F4BE8080"))
}

func TestHash_RandomSalt(t *testing.T) {
	t.Parallel()

	a, err := saltedhash.Hash("F3BE8080", 16)
	require.NoError(t, err)
	b, err := saltedhash.Hash("F3BE8080", 16)
	require.NoError(t, err)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Hash, b.Hash)
}

func TestHash_Errors(t *testing.T) {
	t.Parallel()

	_, err := saltedhash.Hash("zz", 16)
	assert.ErrorIs(t, err, saltedhash.ErrInvalidHex)

	_, err = saltedhash.Hash("F3B", 16)
	assert.ErrorIs(t, err, saltedhash.ErrInvalidHex)

	_, err = saltedhash.Hash("F3BE", -1)
	assert.ErrorIs(t, err, saltedhash.ErrInvalidSaltSize)

	_, err = saltedhash.HashWithReader(bytes.NewReader([]byte{1}), "F3BE", 4)
	assert.ErrorIs(t, err, saltedhash.ErrFailedToSalt)
}
