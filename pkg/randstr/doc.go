// Package randstr generates batches of random lowercase strings of varying
// length. Seeded generation is reproducible.
//
//	words, err := randstr.Generate(5, 10, randstr.WithSeed(1))
//	// 10 strings, each 1 to 5 letters long
package randstr
