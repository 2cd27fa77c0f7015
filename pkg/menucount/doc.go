// Package menucount tallies menu items from nested order lists and produces
// the alphabetically sorted frequency table behind a menu distribution chart.
//
//	bins, err := menucount.Count([][]string{{"Pizza", "Burger"}, {"Pizza"}})
//	// [{Burger 1} {Pizza 2}]
//	err = menucount.Render(os.Stdout, "Menu Distribution", bins, 40)
package menucount
