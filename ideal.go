// Package ideal models ideals of a commutative ring: finitely generated
// sub-structures closed under addition and absorption of ring
// multiplication. Construction classifies every ideal into one of a closed
// set of variants (generic, principal, PID, fractional) based on the ring's
// capabilities, so that arithmetic can short-circuit to GCD computations
// whenever the ring is a principal ideal domain.
package ideal

import (
	"errors"
	"strings"

	"github.com/jonathanmweiss/go-ideal/ring"
)

// Kind tags the ideal variant chosen at construction time. The set is
// closed: every operation dispatches exhaustively over these four tags.
type Kind uint8

const (
	// Generic carries an arbitrary generator list over a commutative ring.
	Generic Kind = iota
	// Principal has exactly one generator; chosen by generator count, not
	// by ring structure.
	Principal
	// Pid has exactly one generator, the GCD of everything supplied; only
	// rings reporting PID() produce it.
	Pid
	// Fractional is generic-shaped but labeled as living in the field of
	// fractions. Never produced by the classifier; see NewFractional.
	Fractional
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Principal:
		return "principal"
	case Pid:
		return "pid"
	case Fractional:
		return "fractional"
	default:
		return "unknown"
	}
}

// Ideal is an immutable value: a ring reference plus a non-empty,
// deduplicated generator list. Arithmetic never mutates an operand; results
// are rebuilt through the classifier so they re-derive their variant.
type Ideal struct {
	kind Kind
	r    ring.Ring
	gens []ring.Element
}

// ErrNotImplemented marks operations that are mathematically well defined
// but have no algorithm for this ring/variant combination. It is returned
// lazily, at call time, never at construction.
var ErrNotImplemented = errors.New("not implemented for this ideal variant")

func (i Ideal) Kind() Kind      { return i.kind }
func (i Ideal) Ring() ring.Ring { return i.r }

// Gens returns the generators in stable insertion order.
func (i Ideal) Gens() []ring.Element {
	out := make([]ring.Element, len(i.gens))
	copy(out, i.gens)

	return out
}

// Gen returns the sole generator. Calling it on a multi-generator ideal is
// a programmer error.
func (i Ideal) Gen() ring.Element {
	if len(i.gens) != 1 {
		panic("Gen on a non-principal ideal")
	}

	return i.gens[0]
}

// isPrincipalShape reports single-generator shape regardless of kind.
func (i Ideal) isPrincipalShape() bool {
	return len(i.gens) <= 1
}

// IsZero reports whether this is the zero ideal (0).
func (i Ideal) IsZero() bool {
	return len(i.gens) == 1 && i.r.IsZero(i.gens[0])
}

// IsPrincipal reports whether the ideal is known to be generated by a
// single element. With several generators over a non-PID ring the question
// is undecidable here and ErrNotImplemented is returned.
func (i Ideal) IsPrincipal() (bool, error) {
	if i.isPrincipalShape() {
		return true, nil
	}

	return false, ErrNotImplemented
}

// IsTrivial reports whether the ideal is (0) or the whole ring.
func (i Ideal) IsTrivial() (bool, error) {
	if i.IsZero() {
		return true, nil
	}

	if ok, err := i.IsPrincipal(); !ok || err != nil {
		return false, err
	}

	return i.r.IsUnit(i.Gen()), nil
}

// IsMaximal is a capability hook; no ring in this module implements it.
func (i Ideal) IsMaximal() (bool, error) { return false, ErrNotImplemented }

// IsPrime is a capability hook; no ring in this module implements it.
func (i Ideal) IsPrime() (bool, error) { return false, ErrNotImplemented }

// Equal implements ideal equality: generator sets compared element-wise,
// with single-generator ideals additionally equal when their generators
// mutually divide (unit multiples generate the same ideal).
func (i Ideal) Equal(other Ideal) bool {
	return i.r.Same(other.r) && i.Cmp(other) == 0
}

// Cmp is a deterministic total order usable for sorting, not the
// containment lattice: ideals incomparable by true containment still get a
// definite order. Set-equal generator lists compare 0; a single-generator
// ideal sorts before a multi-generator one; the zero ideal sorts before
// nonzero principal ideals; mutually-dividing generators compare 0;
// everything else falls back to a lexicographic compare of the printed
// generators.
func (i Ideal) Cmp(other Ideal) int {
	if i.genSetEqual(other) {
		return 0
	}

	if (i.kind == Principal || i.kind == Pid) && i.r.Same(other.r) {
		if !other.isPrincipalShape() {
			return -1
		}

		if i.IsZero() {
			// set-equal check above rules out both being zero
			return -1
		}

		if other.IsZero() {
			return 1
		}

		// is other.Gen() / i.Gen() a unit?
		g0, g1 := other.Gen(), i.Gen()
		if i.r.Divides(g0, g1) && i.r.Divides(g1, g0) {
			return 0
		}

		return 1
	}

	return strings.Compare(i.gensString(), other.gensString())
}

func (i Ideal) genSetEqual(other Ideal) bool {
	if !i.r.Same(other.r) || len(i.gens) != len(other.gens) {
		return false
	}

	// generator lists are deduplicated, so equal lengths plus one-way
	// inclusion give set equality
	for _, g := range i.gens {
		found := false
		for _, h := range other.gens {
			if i.r.Equal(g, h) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

func (i Ideal) gensString() string {
	parts := make([]string, len(i.gens))
	for k, g := range i.gens {
		parts[k] = g.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (i Ideal) String() string {
	switch i.kind {
	case Principal, Pid:
		return "Principal ideal " + i.gensString() + " of " + i.r.String()
	case Fractional:
		return "Fractional ideal " + i.gensString() + " of " + i.r.String()
	default:
		return "Ideal " + i.gensString() + " of " + i.r.String()
	}
}
