package records

import (
	"fmt"
	"math/rand"
	"strconv"
)

const (
	nameLength = 5
	letters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	minAge     = 20
	maxAge     = 60
)

// Header is the column order of every rendered record set.
var Header = []string{"Name", "Age", "Gender", "Country"}

// Record is a single synthetic person.
type Record struct {
	Name    string
	Age     int
	Gender  string
	Country string
}

// Strings returns the record as a CSV row in Header order.
func (r Record) Strings() []string {
	return []string{r.Name, strconv.Itoa(r.Age), r.Gender, r.Country}
}

// Generator produces records from its own random source.
type Generator struct {
	rnd       *rand.Rand
	genders   []string
	countries []string
}

// New creates a generator. The random source is seeded exactly once, here.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Generator{
		rnd:       cfg.source(),
		genders:   cfg.genders,
		countries: cfg.countries,
	}
}

// Generate returns max(n, 0) records in generation order.
func (g *Generator) Generate(n int) ([]Record, error) {
	if err := g.check(n); err != nil {
		return nil, err
	}

	out := make([]Record, 0, max(n, 0))
	for range max(n, 0) {
		out = append(out, g.next())
	}
	return out, nil
}

// check validates label sets only when rows will actually be drawn,
// so a header-only request never fails.
func (g *Generator) check(n int) error {
	if n <= 0 {
		return nil
	}
	if len(g.genders) == 0 {
		return fmt.Errorf("%w: genders", ErrEmptyLabels)
	}
	if len(g.countries) == 0 {
		return fmt.Errorf("%w: countries", ErrEmptyLabels)
	}
	return nil
}

// next draws one record. The draw order (name letters, age, gender, country)
// is part of the output contract for seeded generators.
func (g *Generator) next() Record {
	name := make([]byte, nameLength)
	for i := range name {
		name[i] = letters[g.rnd.Intn(len(letters))]
	}

	return Record{
		Name:    string(name),
		Age:     minAge + g.rnd.Intn(maxAge-minAge+1),
		Gender:  g.genders[g.rnd.Intn(len(g.genders))],
		Country: g.countries[g.rnd.Intn(len(g.countries))],
	}
}
