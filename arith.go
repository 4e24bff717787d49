package ideal

import (
	"github.com/jonathanmweiss/go-ideal/ring"
)

// Contains reports membership of x in the ideal. A value that cannot be
// coerced into the ring is simply not a member (false, nil); membership of
// a coercible value is decidable only for single-generator variants, where
// it reduces to one divisibility test.
func (i Ideal) Contains(x any) (bool, error) {
	e, err := i.r.Coerce(x)
	if err != nil {
		return false, nil
	}

	switch i.kind {
	case Principal, Pid:
		g := i.Gen()
		if i.r.IsZero(g) {
			// (0) contains only zero; avoids division-by-zero semantics.
			return i.r.IsZero(e), nil
		}

		return i.r.Divides(g, e), nil
	default:
		return false, ErrNotImplemented
	}
}

// Reduce maps f to a representative of its residue class modulo the ideal.
// The default is the identity (trivially correct); the Pid variant returns
// the canonical remainder of division by the generator.
func (i Ideal) Reduce(f any) (ring.Element, error) {
	e, err := i.r.Coerce(f)
	if err != nil {
		return nil, err
	}

	if i.kind != Pid {
		return e, nil
	}

	g := i.Gen()
	if i.r.IsZero(g) {
		return e, nil
	}

	_, rem := i.r.(ring.EuclideanRing).QuoRem(e, g)

	return rem, nil
}

// Add returns the ideal sum. The generic rule concatenates both generator
// sets and re-runs classification, so a sum of two PID ideals re-derives
// its PID form instead of degrading to generic. The Pid variant
// short-circuits to a single GCD.
func (i Ideal) Add(other any) (Ideal, error) {
	o, err := i.coerceIdeal(other)
	if err != nil {
		return Ideal{}, err
	}

	if i.kind == Pid {
		return i.pidGCD(o)
	}

	return New(i.r, append(elemsToAny(i.gens), elemsToAny(o.gens)...)...)
}

// Mul returns the ideal product, generated by all pairwise products of the
// operands' generators, reclassified.
func (i Ideal) Mul(other any) (Ideal, error) {
	o, err := i.coerceIdeal(other)
	if err != nil {
		return Ideal{}, err
	}

	prods := make([]any, 0, len(i.gens)*len(o.gens))
	for _, g := range i.gens {
		for _, h := range o.gens {
			prods = append(prods, i.r.Mul(g, h))
		}
	}

	return New(i.r, prods...)
}

// GCD of two ideals; only the Pid variant can compute it.
func (i Ideal) GCD(other any) (Ideal, error) {
	if i.kind != Pid {
		return Ideal{}, ErrNotImplemented
	}

	o, err := i.coerceIdeal(other)
	if err != nil {
		return Ideal{}, err
	}

	return i.pidGCD(o)
}

// pidGCD implements the PID sum/gcd rule: against another single-generator
// ideal the result is generated by gcd of the generators; against a
// multi-generator ideal that already contains our generator the sum is that
// ideal unchanged; anything else is undecidable here.
func (i Ideal) pidGCD(o Ideal) (Ideal, error) {
	if o.isPrincipalShape() {
		g := i.r.(ring.EuclideanRing).GCD(i.Gen(), o.Gen())
		return New(i.r, g)
	}

	c, err := o.Contains(i.Gen())
	if err != nil {
		return Ideal{}, err
	}

	if c {
		return o, nil
	}

	return Ideal{}, ErrNotImplemented
}

// Divides reports that this ideal divides other, meaningful only when both
// are single-generator: (g) divides (h) iff g divides h.
func (i Ideal) Divides(other Ideal) (bool, error) {
	if !i.isPrincipalShape() || !other.isPrincipalShape() {
		return false, ErrNotImplemented
	}

	return i.r.Divides(i.Gen(), other.Gen()), nil
}

// coerceIdeal lifts other into an ideal over the same ring when it is not
// one already. An ideal over a different ring is rebuilt here, which
// coerces its generators (or fails the whole operation).
func (i Ideal) coerceIdeal(other any) (Ideal, error) {
	if o, ok := other.(Ideal); ok {
		if o.r.Same(i.r) {
			return o, nil
		}
	}

	return New(i.r, other)
}
