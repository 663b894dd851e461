package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLabels(t *testing.T) {
	assert.Equal(t, []string{"Ana Pérez", "Luis Soto"}, SplitLabels(" Ana Pérez ,Luis Soto,, "))
	assert.Equal(t, []string{"Ana", "Luis"}, SplitLabels("Ana, n/a", "N/A, Luis, Ana"))
	assert.Nil(t, SplitLabels("", " , ", "n/a"))
}

func TestCleanLabel(t *testing.T) {
	label, ok := CleanLabel("  Energía ")
	assert.True(t, ok)
	assert.Equal(t, "Energía", label)

	for _, in := range []string{"", "   ", "n/a", "N/A", " N/a "} {
		_, ok := CleanLabel(in)
		assert.False(t, ok, in)
	}
}

func TestCounterRanksByCountThenLabel(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"Zeta", "Beta", "Alfa", "Beta", "n/a", ""})
	c.Add("Zeta")

	assert.Equal(t, []Count{
		{Nombre: "Beta", Cantidad: 2},
		{Nombre: "Zeta", Cantidad: 2},
		{Nombre: "Alfa", Cantidad: 1},
	}, c.Ranked())
	assert.Equal(t, 3, c.Distinct())
}

func TestCounterTieBreakIsAccentAware(t *testing.T) {
	c := NewCounter()
	c.AddAll([]string{"Zoología", "Ética", "Economía"})

	ranked := c.Ranked()
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Nombre
	}
	assert.Equal(t, []string{"Economía", "Ética", "Zoología"}, names)
}

func TestCounterEmpty(t *testing.T) {
	ranked := NewCounter().Ranked()
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestSums(t *testing.T) {
	s := NewSums()
	s.Add("ANID", 1_000_000)
	s.Add("CORFO", 3_000_000)
	s.Add("ANID", 2_000_000)
	s.Add("", 500_000)
	s.Add("BID", 3_000_000)

	assert.InDelta(t, 9_500_000, s.Total(), 0.001)
	assert.Equal(t, []Sum{
		{Nombre: "ANID", Monto: 3_000_000},
		{Nombre: "BID", Monto: 3_000_000},
		{Nombre: "CORFO", Monto: 3_000_000},
	}, s.Ranked())
}

func TestGroupsCountDistinctMembers(t *testing.T) {
	g := NewGroups()
	g.Add("Física", []string{"Ana", "Luis"})
	g.Add("Física", []string{"Ana", "n/a"})
	g.Add("Química", []string{"Ana"})
	g.Add("", []string{"Pedro"})

	assert.Equal(t, []Count{
		{Nombre: "Física", Cantidad: 2},
		{Nombre: "Química", Cantidad: 1},
	}, g.Ranked())
}
