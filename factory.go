package ideal

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-ideal/ring"
)

var (
	ErrNotRing        = errors.New("ring must be a ring, element list, or element")
	ErrNotCommutative = errors.New("ideals require a commutative ring")
)

// New constructs the ideal of r generated by gens, running the full
// classification:
//
//  1. the ring must be commutative;
//  2. generators are coerced into r (any failure aborts the whole
//     construction), an empty list becomes [0], duplicates are dropped;
//  3. if r is a PID the list is folded into a single GCD and a Pid ideal is
//     built — a PID ideal is always single-generator internally no matter
//     how many generators were supplied;
//  4. otherwise one remaining generator gives a Principal ideal, several a
//     Generic one.
//
// A gens entry may itself be an Ideal (its generator set is used), a slice
// of values, or anything r.Coerce accepts.
func New(r ring.Ring, gens ...any) (Ideal, error) {
	if r == nil {
		return Ideal{}, ErrNotRing
	}

	if !r.Commutative() {
		return Ideal{}, fmt.Errorf("%w: %s", ErrNotCommutative, r)
	}

	elems, err := normalize(r, flatten(gens))
	if err != nil {
		return Ideal{}, err
	}

	return classify(r, elems), nil
}

// NewFractional builds a fractional ideal: generic-shaped, distinguished
// only at the kind level for consumers that track the fractional-ideal
// category. The classifier never produces this kind on its own.
func NewFractional(r ring.Ring, gens ...any) (Ideal, error) {
	if r == nil {
		return Ideal{}, ErrNotRing
	}

	if !r.Commutative() {
		return Ideal{}, fmt.Errorf("%w: %s", ErrNotCommutative, r)
	}

	elems, err := normalize(r, flatten(gens))
	if err != nil {
		return Ideal{}, err
	}

	return Ideal{kind: Fractional, r: r, gens: elems}, nil
}

// Over is the shape-resolving shorthand: the first argument may be an
// existing Ideal (re-derived through classification), a Ring, or one of
// several elements whose common parent ring is resolved. It performs the
// ordered input-shape checks, then hands off to New.
func Over(first any, rest ...any) (Ideal, error) {
	switch v := first.(type) {
	case Ideal:
		if len(rest) > 0 {
			return Ideal{}, fmt.Errorf("%w: ideal shorthand takes no extra generators", ErrNotRing)
		}

		// re-derive: construction from an ideal re-runs classification
		// over the same ring and generator set.
		return New(v.r, elemsToAny(v.gens)...)
	case ring.Ring:
		return New(v, rest...)
	default:
		elems, err := collectElements(append([]any{first}, rest...))
		if err != nil {
			return Ideal{}, err
		}

		r, err := ring.CommonRing(elems)
		if err != nil {
			return Ideal{}, err
		}

		return New(r, elemsToAny(elems)...)
	}
}

// collectElements requires every argument to be a ring element (or a slice
// of them); raw Go values have no discoverable parent ring.
func collectElements(args []any) ([]ring.Element, error) {
	flat := flatten(args)
	elems := make([]ring.Element, 0, len(flat))

	for _, a := range flat {
		e, ok := a.(ring.Element)
		if !ok {
			return nil, fmt.Errorf("%w: %T has no parent ring", ErrNotRing, a)
		}

		elems = append(elems, e)
	}

	if len(elems) == 0 {
		return nil, ErrNotRing
	}

	return elems, nil
}

// flatten expands one level of slices and inlines generator sets of Ideal
// arguments, so New(r, otherIdeal) and New(r, []any{...}) both work.
func flatten(args []any) []any {
	out := make([]any, 0, len(args))

	for _, a := range args {
		switch v := a.(type) {
		case Ideal:
			out = append(out, elemsToAny(v.gens)...)
		case []any:
			out = append(out, v...)
		case []ring.Element:
			out = append(out, elemsToAny(v)...)
		default:
			out = append(out, a)
		}
	}

	return out
}

func elemsToAny(elems []ring.Element) []any {
	out := make([]any, len(elems))
	for i, e := range elems {
		out[i] = e
	}

	return out
}

// normalize coerces every raw generator into r (all or nothing), replaces
// an empty list with [0] and deduplicates by ring equality, keeping the
// first occurrence.
func normalize(r ring.Ring, raw []any) ([]ring.Element, error) {
	if len(raw) == 0 {
		return []ring.Element{r.Zero()}, nil
	}

	elems := make([]ring.Element, 0, len(raw))

	for _, g := range raw {
		e, err := r.Coerce(g)
		if err != nil {
			return nil, err
		}

		deduped := false
		for _, seen := range elems {
			if r.Equal(seen, e) {
				deduped = true
				break
			}
		}

		if !deduped {
			elems = append(elems, e)
		}
	}

	return elems, nil
}

// classify picks the variant. The PID branch is an algebraic optimization,
// not a count check: the whole generator set is folded to one element by
// repeated pairwise GCD.
func classify(r ring.Ring, elems []ring.Element) Ideal {
	if r.PID() {
		er := r.(ring.EuclideanRing) // rings reporting PID must be Euclidean

		g := elems[0]
		for _, h := range elems[1:] {
			g = er.GCD(g, h)
		}

		return Ideal{kind: Pid, r: r, gens: []ring.Element{g}}
	}

	if len(elems) == 1 {
		return Ideal{kind: Principal, r: r, gens: elems}
	}

	return Ideal{kind: Generic, r: r, gens: elems}
}
