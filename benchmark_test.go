package ideal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-ideal/ring"
)

func TestCyclic(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y", "z")
	b := NewLocalBackend()

	i, err := Cyclic(b, mp, 3, false)
	a.NoError(err)
	a.Equal(Generic, i.Kind())

	gens := i.Gens()
	require.Len(t, gens, 3)

	a.Equal("x + y + z", gens[0].String())
	a.Equal("x*y + x*z + y*z", gens[1].String())
	a.Equal("x*y*z + -1", gens[2].String())

	t.Run("defaultUsesAllVariables", func(t *testing.T) {
		j, err := Cyclic(b, mp, 0, false)
		a.NoError(err)
		a.True(i.Equal(j))
	})

	t.Run("tooManyVariables", func(t *testing.T) {
		_, err := Cyclic(b, mp, 4, false)
		a.ErrorIs(err, ErrTooManyVariables)
	})

	t.Run("negativeVariables", func(t *testing.T) {
		_, err := Cyclic(b, mp, -1, false)
		a.ErrorIs(err, ErrNegativeVariables)

		_, err = b.NamedConstruction(mp, "cyclic", -1, false)
		a.ErrorIs(err, ErrNegativeVariables)
	})

	t.Run("cachedGeneratorsAreStable", func(t *testing.T) {
		j, err := Cyclic(b, mp, 3, false)
		a.NoError(err)
		a.True(i.Equal(j))
	})

	t.Run("callersCannotCorruptTheCache", func(t *testing.T) {
		got, err := b.NamedConstruction(mp, "cyclic", 3, false)
		require.NoError(t, err)
		require.Len(t, got, 3)

		got[0] = nil
		got[1] = nil
		got[2] = nil

		again, err := b.NamedConstruction(mp, "cyclic", 3, false)
		a.NoError(err)
		require.Len(t, again, 3)
		a.Equal("x + y + z", again[0].String())
	})
}

func TestCyclicHomogenized(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y", "h")
	b := NewLocalBackend()

	i, err := Cyclic(b, mp, 2, true)
	a.NoError(err)

	// every generator of a homogeneous ideal has terms of one degree only
	for _, g := range i.Gens() {
		p := g.(*ring.MPoly)
		a.GreaterOrEqual(p.TotalDegree(), 0)
	}

	// x*y - 1 homogenizes to x*y - h^2
	found := false
	for _, g := range i.Gens() {
		if g.String() == "x*y + -1*h^2" {
			found = true
		}
	}

	a.True(found)
}

func TestKatsura(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "u0", "u1", "u2")
	b := NewLocalBackend()

	i, err := Katsura(b, mp, 3, false)
	a.NoError(err)

	gens := i.Gens()
	require.Len(t, gens, 3)

	// the linear Katsura equation: u0 + 2*u1 + 2*u2 - 1
	a.Equal("u0 + 2*u1 + 2*u2 + -1", gens[2].String())

	t.Run("unknownName", func(t *testing.T) {
		_, err := b.NamedConstruction(mp, "buchberger", 2, false)
		a.ErrorIs(err, ErrUnknownConstruction)
	})

	t.Run("needsPolynomialRing", func(t *testing.T) {
		_, err := Katsura(b, ring.Integers(), 1, false)
		a.Error(err)
	})
}

func TestFieldIdeal(t *testing.T) {
	a := assert.New(t)

	f, err := ring.NewPrimeField(3)
	require.NoError(t, err)

	mp, err := ring.NewMPolyRing(f, "x", "y")
	require.NoError(t, err)

	i, err := FieldIdeal(mp)
	a.NoError(err)

	gens := i.Gens()
	require.Len(t, gens, 2)

	// x^3 - x == x^3 + 2x over F_3
	a.Equal("x^3 + 2*x", gens[0].String())
	a.Equal("y^3 + 2*y", gens[1].String())

	t.Run("infiniteBaseRing", func(t *testing.T) {
		zp := mustMPolyRing(t, "x", "y")

		_, err := FieldIdeal(zp)
		a.ErrorIs(err, ErrInfiniteBaseRing)
	})
}
