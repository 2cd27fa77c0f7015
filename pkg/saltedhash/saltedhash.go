package saltedhash

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"strings"
)

// Result holds the base64 encoded salt and the hex encoded digest.
type Result struct {
	Salt string
	Hash string
}

// Hash uses crypto/rand for the salt.
func Hash(hexStr string, saltSize int) (Result, error) {
	return HashWithReader(rand.Reader, hexStr, saltSize)
}

// HashWithReader draws the salt from r, which makes results reproducible in tests.
func HashWithReader(r io.Reader, hexStr string, saltSize int) (Result, error) {
	if saltSize < 0 {
		return Result{}, ErrInvalidSaltSize
	}

	data, err := hex.DecodeString(strings.ReplaceAll(hexStr, `\x`, ""))
	if err != nil {
		return Result{}, errors.Join(ErrInvalidHex, err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return Result{}, errors.Join(ErrFailedToSalt, err)
	}

	sum := sha256.Sum256(append(salt, data...))
	return Result{
		Salt: base64.StdEncoding.EncodeToString(salt),
		Hash: hex.EncodeToString(sum[:]),
	}, nil
}
