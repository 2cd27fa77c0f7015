package menucount

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Bin is one bar of the distribution.
type Bin struct {
	Item  string
	Count int
}

// Count flattens the nested lists and returns one bin per distinct item,
// sorted by item name.
func Count(orders [][]string) ([]Bin, error) {
	counts := make(map[string]int)
	for _, order := range orders {
		for _, item := range order {
			counts[item]++
		}
	}
	if len(counts) == 0 {
		return nil, ErrEmptyInput
	}

	bins := make([]Bin, 0, len(counts))
	for item, n := range counts {
		bins = append(bins, Bin{Item: item, Count: n})
	}
	slices.SortFunc(bins, func(a, b Bin) int {
		return strings.Compare(a.Item, b.Item)
	})
	return bins, nil
}

// Render writes a horizontal text bar chart, one row per bin, scaled so the
// most frequent item gets width characters.
func Render(w io.Writer, title string, bins []Bin, width int) error {
	if width <= 0 {
		width = 40
	}

	label, peak := 0, 0
	for _, b := range bins {
		label = max(label, len(b.Item))
		peak = max(peak, b.Count)
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	for _, b := range bins {
		bar := 0
		if peak > 0 {
			bar = b.Count * width / peak
		}
		if _, err := fmt.Fprintf(w, "%-*s | %s %d\n", label, b.Item, strings.Repeat("#", bar), b.Count); err != nil {
			return err
		}
	}
	return nil
}
