package triples

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/dmitrymomot/datakit/pkg/menucount"
)

// Alphabet is the letter set combinations are drawn from, in output order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Header names the three columns of a rendered combination table.
var Header = []string{"a", "b", "c"}

// ErrFailedToWrite wraps sink failures in WriteCSV.
var ErrFailedToWrite = errors.New("failed to write combinations")

// Triple is one combination, e.g. {'a', 'b', 'c'}.
type Triple [3]byte

func (t Triple) String() string {
	return string(t[:])
}

// Combinations returns all len(Alphabet)^3 triples in lexicographic order,
// the last letter varying fastest.
func Combinations() []Triple {
	n := len(Alphabet)
	out := make([]Triple, 0, n*n*n)
	for i := range n {
		for j := range n {
			for k := range n {
				out = append(out, Triple{Alphabet[i], Alphabet[j], Alphabet[k]})
			}
		}
	}
	return out
}

// FirstLetterCounts returns one bin per Alphabet letter, in alphabet order,
// counting the triples that start with it. Letters never seen get a zero bin.
func FirstLetterCounts(combos []Triple) []menucount.Bin {
	var counts [256]int
	for _, t := range combos {
		counts[t[0]]++
	}

	bins := make([]menucount.Bin, 0, len(Alphabet))
	for i := range len(Alphabet) {
		c := Alphabet[i]
		bins = append(bins, menucount.Bin{Item: string(c), Count: counts[c]})
	}
	return bins
}

// WriteCSV writes Header followed by one row per triple, one letter per column.
func WriteCSV(w io.Writer, combos []Triple) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	for _, t := range combos {
		if err := cw.Write(strings.Split(t.String(), "")); err != nil {
			return errors.Join(ErrFailedToWrite, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
