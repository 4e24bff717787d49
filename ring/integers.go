package ring

import (
	"fmt"
	"math/big"
)

// IntegerRing is ℤ with arbitrary-precision elements. It is a Euclidean
// domain, so the ideal layer classifies it as a PID.
type IntegerRing struct{}

// Int is an integer element. The wrapped big.Int is never mutated after
// construction.
type Int struct {
	v *big.Int
}

var zz = &IntegerRing{}

// Integers returns the ring ℤ. There is a single shared instance.
func Integers() *IntegerRing { return zz }

func (z *IntegerRing) Commutative() bool { return true }
func (z *IntegerRing) PID() bool         { return true }

func (z *IntegerRing) Zero() Element { return &Int{v: big.NewInt(0)} }
func (z *IntegerRing) One() Element  { return &Int{v: big.NewInt(1)} }

func (z *IntegerRing) Coerce(v any) (Element, error) {
	switch x := v.(type) {
	case *Int:
		return x, nil
	case int:
		return &Int{v: big.NewInt(int64(x))}, nil
	case int64:
		return &Int{v: big.NewInt(x)}, nil
	case uint64:
		return &Int{v: new(big.Int).SetUint64(x)}, nil
	case *big.Int:
		return &Int{v: new(big.Int).Set(x)}, nil
	default:
		return nil, fmt.Errorf("%w: %T into %s", ErrCoercion, v, z)
	}
}

func (z *IntegerRing) intVal(e Element) *big.Int {
	n, ok := e.(*Int)
	if !ok || n == nil {
		panic("element does not belong to the integer ring")
	}

	return n.v
}

func (z *IntegerRing) Add(a, b Element) Element {
	return &Int{v: new(big.Int).Add(z.intVal(a), z.intVal(b))}
}

func (z *IntegerRing) Sub(a, b Element) Element {
	return &Int{v: new(big.Int).Sub(z.intVal(a), z.intVal(b))}
}

func (z *IntegerRing) Mul(a, b Element) Element {
	return &Int{v: new(big.Int).Mul(z.intVal(a), z.intVal(b))}
}

func (z *IntegerRing) Neg(a Element) Element {
	return &Int{v: new(big.Int).Neg(z.intVal(a))}
}

func (z *IntegerRing) Pow(a Element, n uint64) Element {
	e := new(big.Int).SetUint64(n)
	return &Int{v: new(big.Int).Exp(z.intVal(a), e, nil)}
}

func (z *IntegerRing) Equal(a, b Element) bool {
	return z.intVal(a).Cmp(z.intVal(b)) == 0
}

func (z *IntegerRing) IsZero(a Element) bool {
	return z.intVal(a).Sign() == 0
}

func (z *IntegerRing) IsUnit(a Element) bool {
	return z.intVal(a).CmpAbs(big.NewInt(1)) == 0
}

func (z *IntegerRing) Div(a, b Element) (Element, bool) {
	av, bv := z.intVal(a), z.intVal(b)
	if bv.Sign() == 0 {
		// only zero is a multiple of zero
		if av.Sign() == 0 {
			return z.Zero(), true
		}

		return nil, false
	}

	q, r := new(big.Int).QuoRem(av, bv, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}

	return &Int{v: q}, true
}

func (z *IntegerRing) Divides(a, b Element) bool {
	_, ok := z.Div(b, a)
	return ok
}

// QuoRem is truncated division: q = a/b rounded toward zero, r = a - q*b.
func (z *IntegerRing) QuoRem(a, b Element) (Element, Element) {
	bv := z.intVal(b)
	if bv.Sign() == 0 {
		panic("integer division by zero")
	}

	q, r := new(big.Int).QuoRem(z.intVal(a), bv, new(big.Int))

	return &Int{v: q}, &Int{v: r}
}

// GCD returns the non-negative gcd; GCD(0, 0) == 0.
func (z *IntegerRing) GCD(a, b Element) Element {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(z.intVal(a)), new(big.Int).Abs(z.intVal(b)))
	return &Int{v: g}
}

func (z *IntegerRing) Gens() []Element { return []Element{z.One()} }

func (z *IntegerRing) Base() Ring { return z }

func (z *IntegerRing) Same(other Ring) bool {
	_, ok := other.(*IntegerRing)
	return ok
}

func (z *IntegerRing) String() string { return "Integer Ring" }

func (n *Int) Ring() Ring     { return zz }
func (n *Int) String() string { return n.v.String() }

// BigInt returns a copy of the underlying value.
func (n *Int) BigInt() *big.Int { return new(big.Int).Set(n.v) }

func (z *IntegerRing) EncodeElement(e Element) ([]byte, error) {
	return []byte(`"` + z.intVal(e).String() + `"`), nil
}

func (z *IntegerRing) DecodeElement(data []byte) (Element, error) {
	s, err := unquote(data)
	if err != nil {
		return nil, err
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrCoercion, s)
	}

	return &Int{v: v}, nil
}
