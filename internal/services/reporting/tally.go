package reporting

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CleanLabel trims s and reports whether it is a usable category label.
// Empty strings and "n/a" in any case are not.
func CleanLabel(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return "", false
	}
	return s, true
}

// SplitLabels splits each value on commas and returns the clean labels in
// first-seen order without repeats.
func SplitLabels(values ...string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			label, ok := CleanLabel(token)
			if !ok {
				continue
			}
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	return out
}

type Count struct {
	Nombre   string `json:"nombre"`
	Cantidad int    `json:"cantidad"`
}

type Sum struct {
	Nombre string  `json:"nombre"`
	Monto  float64 `json:"monto_total"`
}

// Counter accumulates occurrences per label.
type Counter struct {
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(label string) {
	if label, ok := CleanLabel(label); ok {
		c.counts[label]++
	}
}

func (c *Counter) AddAll(labels []string) {
	for _, label := range labels {
		c.Add(label)
	}
}

// Distinct is the number of labels seen.
func (c *Counter) Distinct() int {
	return len(c.counts)
}

func (c *Counter) Ranked() []Count {
	out := make([]Count, 0, len(c.counts))
	for label, n := range c.counts {
		out = append(out, Count{Nombre: label, Cantidad: n})
	}
	less := labelOrder()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cantidad != out[j].Cantidad {
			return out[i].Cantidad > out[j].Cantidad
		}
		return less(out[i].Nombre, out[j].Nombre)
	})
	return out
}

// Sums accumulates amounts per label.
type Sums struct {
	totals map[string]float64
	total  float64
}

func NewSums() *Sums {
	return &Sums{totals: map[string]float64{}}
}

// Add counts amount towards the grand total and, when label is usable,
// towards that label.
func (s *Sums) Add(label string, amount float64) {
	s.total += amount
	if label, ok := CleanLabel(label); ok {
		s.totals[label] += amount
	}
}

func (s *Sums) Total() float64 {
	return s.total
}

func (s *Sums) Ranked() []Sum {
	out := make([]Sum, 0, len(s.totals))
	for label, amount := range s.totals {
		out = append(out, Sum{Nombre: label, Monto: amount})
	}
	less := labelOrder()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Monto != out[j].Monto {
			return out[i].Monto > out[j].Monto
		}
		return less(out[i].Nombre, out[j].Nombre)
	})
	return out
}

// Groups collects distinct members per label, e.g. professors per unit.
type Groups struct {
	members map[string]map[string]struct{}
}

func NewGroups() *Groups {
	return &Groups{members: map[string]map[string]struct{}{}}
}

func (g *Groups) Add(label string, members []string) {
	label, ok := CleanLabel(label)
	if !ok {
		return
	}
	set := g.members[label]
	if set == nil {
		set = map[string]struct{}{}
		g.members[label] = set
	}
	for _, member := range members {
		if member, ok := CleanLabel(member); ok {
			set[member] = struct{}{}
		}
	}
}

// Ranked counts the distinct members of each label.
func (g *Groups) Ranked() []Count {
	counter := NewCounter()
	for label, set := range g.members {
		counter.counts[label] = len(set)
	}
	return counter.Ranked()
}

// labelOrder compares labels with Spanish collation, so "Ética" sorts among
// the E's. Collators are not safe for concurrent use.
func labelOrder() func(a, b string) bool {
	col := collate.New(language.Spanish)
	return func(a, b string) bool {
		if c := col.CompareString(a, b); c != 0 {
			return c < 0
		}
		return a < b
	}
}
