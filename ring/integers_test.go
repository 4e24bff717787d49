package ring

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerCoercion(t *testing.T) {
	a := assert.New(t)

	zz := Integers()

	e, err := zz.Coerce(42)
	a.NoError(err)
	a.Equal("42", e.String())

	e, err = zz.Coerce(big.NewInt(-7))
	a.NoError(err)
	a.Equal("-7", e.String())

	e, err = zz.Coerce(uint64(1) << 63)
	a.NoError(err)
	a.Equal("9223372036854775808", e.String())

	_, err = zz.Coerce("not a number")
	a.ErrorIs(err, ErrCoercion)
}

func TestIntegerArithmetic(t *testing.T) {
	a := assert.New(t)

	zz := Integers()
	six, _ := zz.Coerce(6)
	four, _ := zz.Coerce(4)

	a.Equal("10", zz.Add(six, four).String())
	a.Equal("2", zz.Sub(six, four).String())
	a.Equal("24", zz.Mul(six, four).String())
	a.Equal("-6", zz.Neg(six).String())
	a.Equal("1296", zz.Pow(six, 4).String())

	a.True(zz.Divides(four, zz.Mul(four, six)))
	a.False(zz.Divides(four, six))
}

func TestIntegerQuoRem(t *testing.T) {
	a := assert.New(t)

	zz := Integers()

	cases := []struct {
		x, y int
		q, r string
	}{
		{10, 8, "1", "2"},
		{17, 5, "3", "2"},
		{-17, 5, "-3", "-2"}, // truncated toward zero
		{8, 8, "1", "0"},
	}

	for _, tc := range cases {
		x, _ := zz.Coerce(tc.x)
		y, _ := zz.Coerce(tc.y)

		q, r := zz.QuoRem(x, y)
		a.Equal(tc.q, q.String())
		a.Equal(tc.r, r.String())
	}
}

func TestIntegerGCD(t *testing.T) {
	a := assert.New(t)

	zz := Integers()

	cases := []struct {
		x, y int
		gcd  string
	}{
		{4, 6, "2"},
		{-4, 6, "2"}, // always non-negative
		{0, 5, "5"},
		{0, 0, "0"},
		{35, 21, "7"},
	}

	for _, tc := range cases {
		x, _ := zz.Coerce(tc.x)
		y, _ := zz.Coerce(tc.y)
		a.Equal(tc.gcd, zz.GCD(x, y).String())
	}
}

func TestIntegerUnits(t *testing.T) {
	a := assert.New(t)

	zz := Integers()

	one, _ := zz.Coerce(1)
	negOne, _ := zz.Coerce(-1)
	two, _ := zz.Coerce(2)

	a.True(zz.IsUnit(one))
	a.True(zz.IsUnit(negOne))
	a.False(zz.IsUnit(two))
	a.False(zz.IsUnit(zz.Zero()))

	a.True(zz.PID())
	a.True(zz.Commutative())
	a.True(zz.Same(Integers()))
}

func TestIntegerImmutability(t *testing.T) {
	a := assert.New(t)

	zz := Integers()
	v := big.NewInt(12)

	e, err := zz.Coerce(v)
	a.NoError(err)

	v.SetInt64(99) // caller mutating its big.Int must not reach the element
	a.Equal("12", e.String())

	n := e.(*Int)
	n.BigInt().SetInt64(77) // returned copy, not the inner value
	a.Equal("12", e.String())
}
