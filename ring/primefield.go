package ring

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	lring "github.com/tuneinsight/lattigo/v6/ring"
	"lukechampine.com/uint128"
)

// PrimeField is F_p for a prime p of at most 63 bits. Being a field, every
// nonzero element is a unit and the only ideals are (0) and (1); the ideal
// layer therefore treats it as a PID.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

// FpElement is a reduced residue mod the field prime.
type FpElement struct {
	v uint64
	f *PrimeField
}

var (
	errPrimeTooLarge = errors.New("supporting up to 63-bit prime")
	errNotPrime      = errors.New("this package only supports prime fields. please use a prime order")
)

const maxBitUsage = 63

// NewPrimeField constructs F_p. The primality check is probabilistic but
// exact for 64-bit inputs.
func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	b := (&big.Int{}).SetUint64(prime)
	if !b.ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := lring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

func (f *PrimeField) Commutative() bool { return true }
func (f *PrimeField) PID() bool         { return true }

func (f *PrimeField) Modulus() uint64 { return f.prime }

// Generator returns a primitive root of the multiplicative group.
func (f *PrimeField) Generator() uint64 { return f.generator }

// Order implements FiniteRing.
func (f *PrimeField) Order() uint64 { return f.prime }

func (f *PrimeField) Zero() Element { return &FpElement{v: 0, f: f} }
func (f *PrimeField) One() Element  { return &FpElement{v: 1, f: f} }

// Elem wraps a raw residue, reducing it mod p.
func (f *PrimeField) Elem(v uint64) *FpElement {
	return &FpElement{v: v % f.prime, f: f}
}

func (f *PrimeField) Coerce(v any) (Element, error) {
	switch x := v.(type) {
	case *FpElement:
		if x.f.prime != f.prime {
			return nil, fmt.Errorf("%w: element of F_%d into %s", ErrCoercion, x.f.prime, f)
		}

		return x, nil
	case uint64:
		return f.Elem(x), nil
	case int:
		return f.coerceBig(big.NewInt(int64(x))), nil
	case int64:
		return f.coerceBig(big.NewInt(x)), nil
	case *big.Int:
		return f.coerceBig(x), nil
	case *Int:
		// the canonical map ℤ -> F_p
		return f.coerceBig(x.v), nil
	default:
		return nil, fmt.Errorf("%w: %T into %s", ErrCoercion, v, f)
	}
}

func (f *PrimeField) coerceBig(v *big.Int) *FpElement {
	m := new(big.Int).Mod(v, new(big.Int).SetUint64(f.prime))
	return &FpElement{v: m.Uint64(), f: f}
}

func (f *PrimeField) val(e Element) uint64 {
	x, ok := e.(*FpElement)
	if !ok || x.f.prime != f.prime {
		panic("element does not belong to this prime field")
	}

	return x.v
}

func (f *PrimeField) Add(a, b Element) Element {
	tmp := f.val(a) + f.val(b) // can't overflow: both below 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return &FpElement{v: tmp, f: f}
}

func (f *PrimeField) Sub(a, b Element) Element {
	av, bv := f.val(a), f.val(b)
	if av < bv {
		return &FpElement{v: f.prime - (bv - av), f: f}
	}

	return &FpElement{v: av - bv, f: f}
}

func (f *PrimeField) Mul(a, b Element) Element {
	return &FpElement{v: f.mul(f.val(a), f.val(b)), f: f}
}

func (f *PrimeField) mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	// full 128-bit product, then reduce.
	return uint128.From64(a).Mul64(b).Mod64(f.prime)
}

func (f *PrimeField) Neg(a Element) Element {
	av := f.val(a)
	if av == 0 {
		return f.Zero()
	}

	return &FpElement{v: f.prime - av, f: f}
}

// Pow is exponentiation by squaring.
// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Pow(a Element, exp uint64) Element {
	base := f.val(a)

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = f.mul(x, base)
		}

		base = f.mul(base, base)
		exp /= 2
	}

	return &FpElement{v: x % f.prime, f: f}
}

// Inverse uses Fermat's little theorem: a^(p-2) is the inverse of a mod p.
func (f *PrimeField) Inverse(a Element) Element {
	av := f.val(a)
	if av == 0 {
		panic("zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}

func (f *PrimeField) Equal(a, b Element) bool { return f.val(a) == f.val(b) }
func (f *PrimeField) IsZero(a Element) bool   { return f.val(a) == 0 }
func (f *PrimeField) IsUnit(a Element) bool   { return f.val(a) != 0 }

func (f *PrimeField) Div(a, b Element) (Element, bool) {
	if f.val(b) == 0 {
		if f.val(a) == 0 {
			return f.Zero(), true
		}

		return nil, false
	}

	return f.Mul(a, f.Inverse(b)), true
}

func (f *PrimeField) Divides(a, b Element) bool {
	_, ok := f.Div(b, a)
	return ok
}

func (f *PrimeField) QuoRem(a, b Element) (Element, Element) {
	if f.val(b) == 0 {
		panic("field division by zero")
	}

	return f.Mul(a, f.Inverse(b)), f.Zero()
}

// GCD over a field: 1 unless both inputs are zero.
func (f *PrimeField) GCD(a, b Element) Element {
	if f.val(a) == 0 && f.val(b) == 0 {
		return f.Zero()
	}

	return f.One()
}

func (f *PrimeField) Gens() []Element { return []Element{f.One()} }

func (f *PrimeField) Base() Ring { return f }

func (f *PrimeField) Same(other Ring) bool {
	o, ok := other.(*PrimeField)
	return ok && o.prime == f.prime
}

func (f *PrimeField) String() string {
	return "Finite Field of size " + strconv.FormatUint(f.prime, 10)
}

func (x *FpElement) Ring() Ring     { return x.f }
func (x *FpElement) String() string { return strconv.FormatUint(x.v, 10) }

// Uint64 returns the reduced residue.
func (x *FpElement) Uint64() uint64 { return x.v }

func (f *PrimeField) EncodeElement(e Element) ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(f.val(e), 10) + `"`), nil
}

func (f *PrimeField) DecodeElement(data []byte) (Element, error) {
	s, err := unquote(data)
	if err != nil {
		return nil, err
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a residue", ErrCoercion, s)
	}

	return f.Elem(v), nil
}
