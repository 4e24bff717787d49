// Package ring defines the ring/element abstraction the ideal layer is
// generic over, together with a few concrete rings: the integers, prime
// fields, univariate polynomials over a prime field, and multivariate
// polynomials over an arbitrary commutative base ring.
package ring

import "errors"

// Element is an opaque ring element. All arithmetic goes through the owning
// Ring; elements only know where they live and how to print themselves.
type Element interface {
	Ring() Ring
	String() string
}

// Ring is a commutative-or-not ring with element-level operations lifted to
// ring level. Implementations panic when handed elements of a foreign ring;
// cross-ring traffic must go through Coerce.
type Ring interface {
	Commutative() bool
	// PID reports whether every ideal of this ring is principal, i.e.
	// whether the ring supports GCD-based single-generator reduction.
	// A ring returning true must also implement EuclideanRing.
	PID() bool

	Zero() Element
	One() Element

	// Coerce maps v into this ring. Accepted inputs are implementation
	// specific but always include the ring's own elements and Go integers.
	// Returns ErrCoercion (possibly wrapped) when v has no image here.
	Coerce(v any) (Element, error)

	Add(a, b Element) Element
	Sub(a, b Element) Element
	Mul(a, b Element) Element
	Neg(a Element) Element
	Pow(a Element, n uint64) Element

	Equal(a, b Element) bool
	IsZero(a Element) bool
	IsUnit(a Element) bool

	// Div performs exact division: q with b*q == a, ok=false when no such
	// element exists (including a nonzero a with b == 0).
	Div(a, b Element) (q Element, ok bool)
	// Divides reports b is a multiple of a. Zero divides only zero.
	Divides(a, b Element) bool

	// Gens returns the ring generators: the variables for polynomial
	// rings, the unit for ℤ and for fields.
	Gens() []Element

	// Base returns the coefficient ring, or the ring itself when it is
	// its own base.
	Base() Ring

	// Same reports ring identity (same modulus, same variables, same base).
	Same(other Ring) bool

	String() string
}

// EuclideanRing is the capability a PID exposes: gcd and division with
// remainder. GCD returns the unit-normalized gcd (non-negative in ℤ, monic
// over a field) and GCD(0, 0) == 0.
type EuclideanRing interface {
	Ring
	GCD(a, b Element) Element
	QuoRem(a, b Element) (q, r Element)
}

// FiniteRing is implemented by rings with finitely many elements.
type FiniteRing interface {
	Ring
	Order() uint64
}

// ElementCodec serializes elements of one ring. Every concrete ring in this
// package implements it; the encoding is ring specific and only the ring
// that produced a blob can decode it.
type ElementCodec interface {
	EncodeElement(e Element) ([]byte, error)
	DecodeElement(data []byte) (Element, error)
}

var (
	ErrCoercion     = errors.New("cannot coerce value into ring")
	ErrNoCommonRing = errors.New("unable to find common ring into which all elements map")
)

// CommonRing resolves a single ring that absorbs every given element, trying
// each element's own ring in order as the candidate absorber. The first
// candidate (in input order) into which everything coerces wins.
func CommonRing(elems []Element) (Ring, error) {
	if len(elems) == 0 {
		return nil, ErrNoCommonRing
	}

	candidates := make([]Ring, 0, len(elems))
	for _, e := range elems {
		r := e.Ring()

		seen := false
		for _, c := range candidates {
			if c.Same(r) {
				seen = true
				break
			}
		}

		if !seen {
			candidates = append(candidates, r)
		}
	}

	for _, r := range candidates {
		if absorbsAll(r, elems) {
			return r, nil
		}
	}

	return nil, ErrNoCommonRing
}

func absorbsAll(r Ring, elems []Element) bool {
	for _, e := range elems {
		if _, err := r.Coerce(e); err != nil {
			return false
		}
	}

	return true
}
