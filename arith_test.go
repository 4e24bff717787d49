package ideal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-ideal/ring"
)

func TestPidReduce(t *testing.T) {
	a := assert.New(t)

	zz := ring.Integers()

	i, err := New(zz, 8)
	require.NoError(t, err)

	r, err := i.Reduce(10)
	a.NoError(err)
	a.Equal("2", r.String())

	t.Run("multipleReducesToZero", func(t *testing.T) {
		r, err := i.Reduce(24)
		a.NoError(err)
		a.Equal("0", r.String())
	})

	t.Run("zeroGenerator", func(t *testing.T) {
		z, err := New(zz)
		a.NoError(err)

		r, err := z.Reduce(17)
		a.NoError(err)
		a.Equal("17", r.String())
	})

	t.Run("reduceDifferenceIsMultiple", func(t *testing.T) {
		for _, f := range []int{-23, -8, -1, 0, 5, 8, 10, 101} {
			fe, err := zz.Coerce(f)
			a.NoError(err)

			r, err := i.Reduce(f)
			a.NoError(err)

			// f - reduce(f) must be a multiple of the generator
			a.True(zz.Divides(i.Gen(), zz.Sub(fe, r)))
		}
	})

	t.Run("coercionFailurePropagates", func(t *testing.T) {
		_, err := i.Reduce("ten")
		a.ErrorIs(err, ring.ErrCoercion)
	})
}

func TestGenericReduceIsIdentity(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y")
	x, y := mp.Var(0), mp.Var(1)

	i, err := New(mp, x, y)
	require.NoError(t, err)

	r, err := i.Reduce(x)
	a.NoError(err)
	a.True(mp.Equal(r, x))
}

func TestPidSumIsGCD(t *testing.T) {
	a := assert.New(t)

	zz := ring.Integers()

	four, err := New(zz, 4)
	require.NoError(t, err)

	six, err := New(zz, 6)
	require.NoError(t, err)

	sum, err := four.Add(six)
	a.NoError(err)
	a.Equal(Pid, sum.Kind())
	a.Equal("2", sum.Gen().String())

	// sum accepts raw generators too
	sum2, err := four.Add(6)
	a.NoError(err)
	a.True(sum.Equal(sum2))

	// gcd of a sum of sums equals the gcd of all inputs
	i1, err := New(zz, 12, 18) // (6)
	a.NoError(err)

	i2, err := New(zz, 8, 20) // (4)
	a.NoError(err)

	total, err := i1.Add(i2)
	a.NoError(err)
	a.Equal("2", total.Gen().String())

	g, err := four.GCD(six)
	a.NoError(err)
	a.True(g.Equal(sum))
}

func TestGenericSumConcatenatesGens(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y")
	x, y := mp.Var(0), mp.Var(1)

	ix, err := New(mp, x)
	require.NoError(t, err)

	iy, err := New(mp, y)
	require.NoError(t, err)

	sum, err := ix.Add(iy)
	a.NoError(err)
	a.Equal(Generic, sum.Kind())

	want, err := New(mp, x, y)
	a.NoError(err)
	a.True(sum.Equal(want))
}

func TestProduct(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y")
	x, y := mp.Var(0), mp.Var(1)

	ixy, err := New(mp, x, y)
	require.NoError(t, err)

	ix, err := New(mp, x)
	require.NoError(t, err)

	prod, err := ixy.Mul(ix)
	a.NoError(err)

	// (x, y) * (x) = (x^2, x*y), still generic over a non-PID ring
	want, err := New(mp, mp.Mul(x, x), mp.Mul(x, y))
	a.NoError(err)
	a.True(prod.Equal(want))
	a.Equal(Generic, prod.Kind())

	t.Run("pidProductReclassifies", func(t *testing.T) {
		zz := ring.Integers()

		i, err := New(zz, 4)
		require.NoError(t, err)

		j, err := New(zz, 6)
		require.NoError(t, err)

		prod, err := i.Mul(j)
		a.NoError(err)
		a.Equal(Pid, prod.Kind())
		a.Equal("24", prod.Gen().String())
	})
}

func TestPrincipalContains(t *testing.T) {
	a := assert.New(t)

	zz := ring.Integers()

	i, err := New(zz, 8)
	require.NoError(t, err)

	cases := []struct {
		x    int
		want bool
	}{
		{16, true},
		{0, true},
		{-8, true},
		{4, false},
		{7, false},
	}

	for _, tc := range cases {
		got, err := i.Contains(tc.x)
		a.NoError(err)
		a.Equal(tc.want, got, "x=%d", tc.x)
	}

	t.Run("zeroIdealContainsOnlyZero", func(t *testing.T) {
		z, err := New(zz)
		require.NoError(t, err)

		got, err := z.Contains(0)
		a.NoError(err)
		a.True(got)

		got, err = z.Contains(3)
		a.NoError(err)
		a.False(got)
	})

	t.Run("nonCoercibleIsNotMember", func(t *testing.T) {
		got, err := i.Contains("eight")
		a.NoError(err)
		a.False(got)
	})

	t.Run("genericMembershipUnimplemented", func(t *testing.T) {
		mp := mustMPolyRing(t, "x", "y")

		g, err := New(mp, mp.Var(0), mp.Var(1))
		require.NoError(t, err)

		_, err = g.Contains(mp.Var(0))
		a.ErrorIs(err, ErrNotImplemented)
	})

	t.Run("principalOverNonPid", func(t *testing.T) {
		mp := mustMPolyRing(t, "x", "y")
		x, y := mp.Var(0), mp.Var(1)

		p, err := New(mp, x)
		require.NoError(t, err)

		got, err := p.Contains(mp.Mul(x, y))
		a.NoError(err)
		a.True(got)

		got, err = p.Contains(y)
		a.NoError(err)
		a.False(got)
	})
}

func TestIdealDivides(t *testing.T) {
	a := assert.New(t)

	zz := ring.Integers()

	four, err := New(zz, 4)
	require.NoError(t, err)

	eight, err := New(zz, 8)
	require.NoError(t, err)

	ok, err := four.Divides(eight)
	a.NoError(err)
	a.True(ok)

	ok, err = eight.Divides(four)
	a.NoError(err)
	a.False(ok)

	mp := mustMPolyRing(t, "x", "y")

	g, err := New(mp, mp.Var(0), mp.Var(1))
	require.NoError(t, err)

	_, err = four.Divides(g)
	a.ErrorIs(err, ErrNotImplemented)
}

func TestPidSumAgainstGenericContainingIt(t *testing.T) {
	a := assert.New(t)

	f, err := ring.NewPrimeField(157)
	require.NoError(t, err)

	pr := ring.NewPolyRing(f, "t")

	i, err := New(pr, pr.FromCoeffs([]uint64{0, 1})) // (t)
	require.NoError(t, err)
	require.Equal(t, Pid, i.Kind())

	// adding an ideal whose generator set the PID generator divides into
	j, err := New(pr, pr.FromCoeffs([]uint64{1, 1})) // (t+1)
	require.NoError(t, err)

	sum, err := i.Add(j)
	a.NoError(err)

	// gcd(t, t+1) = 1: the sum is the unit ideal
	triv, err := sum.IsTrivial()
	a.NoError(err)
	a.True(triv)
}

func TestPidSumAgainstUndecidableIdeal(t *testing.T) {
	a := assert.New(t)

	zz := ring.Integers()

	i, err := New(zz, 4)
	require.NoError(t, err)

	// a multi-generator fractional ideal has no membership test, so the
	// containment short-circuit cannot run
	o, err := NewFractional(zz, 4, 6)
	require.NoError(t, err)

	_, err = i.Add(o)
	a.ErrorIs(err, ErrNotImplemented)
}

func TestAddDoesNotMutateOperands(t *testing.T) {
	a := assert.New(t)

	mp := mustMPolyRing(t, "x", "y")
	x, y := mp.Var(0), mp.Var(1)

	ix, err := New(mp, x)
	require.NoError(t, err)

	iy, err := New(mp, y)
	require.NoError(t, err)

	_, err = ix.Add(iy)
	a.NoError(err)

	a.Len(ix.Gens(), 1)
	a.Len(iy.Gens(), 1)
	a.True(mp.Equal(ix.Gen(), x))
}
