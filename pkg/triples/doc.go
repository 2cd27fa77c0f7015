// Package triples enumerates every three letter lowercase combination and
// tallies how often each letter leads one.
//
//	all := triples.Combinations()          // aaa, aab, ... zzz
//	bins := triples.FirstLetterCounts(all) // a..z, 676 each
//	err := menucount.Render(os.Stdout, "First letters", bins, 40)
//
// Bins reuse menucount.Bin so the same text chart renders them.
package triples
