// Package saltedhash salts hex-encoded payloads with random bytes and hashes
// them with SHA-256.
//
//	res, err := saltedhash.Hash("F3BE8080", 16)
//	// res.Salt is base64 (24 chars for 16 bytes), res.Hash is 64 hex chars
//
// The salt is prepended to the decoded payload before hashing. Literal `\x`
// escape prefixes (as in `\xF3\xBE`) are stripped before decoding.
package saltedhash
