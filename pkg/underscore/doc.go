// Package underscore generates pseudo-random sentences from a vocabulary and
// joins configured multi-word phrases with underscores.
//
// A sentence is built from WordCount words (10 by default) sampled uniformly
// with replacement from the vocabulary and joined by single spaces. Each
// target phrase is then applied in the order given: every case-insensitive,
// literal occurrence of the phrase is replaced by the phrase with its spaces
// turned into underscores. Matching ignores word boundaries and each phrase
// runs over the output of the previous one. Finally the sentence is
// lowercased.
//
//	sentences, err := underscore.Generate(
//		[]string{"apple banana"},
//		3,
//		[]string{"apple", "banana", "cherry"},
//		underscore.WithSeed(42),
//	)
//	// e.g. "banana apple_banana cherry apple ..."
//
// Phrases are matched literally: regular expression metacharacters in a
// phrase carry no special meaning.
package underscore
