package ring

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MPolyRing is a sparse multivariate polynomial ring over a commutative base
// ring. For two or more variables it is not a PID, so ideals over it stay in
// their generic multi-generator form.
type MPolyRing struct {
	base Ring
	vars []string
}

// MPoly is an immutable multivariate polynomial: a term list sorted in
// descending lexicographic order of exponent vectors, with nonzero
// coefficients and no repeated monomials. The zero polynomial is the empty
// list.
type MPoly struct {
	r     *MPolyRing
	terms []mterm
}

type mterm struct {
	c Element // nonzero coefficient in the base ring
	e []int   // one exponent per ring variable
}

var (
	errNoVariables        = errors.New("polynomial ring needs at least one variable")
	errDuplicateVariable  = errors.New("duplicate variable name")
	errBaseNotCommutative = errors.New("base ring must be commutative")
)

// NewMPolyRing constructs base[vars...].
func NewMPolyRing(base Ring, vars ...string) (*MPolyRing, error) {
	if len(vars) == 0 {
		return nil, errNoVariables
	}

	if !base.Commutative() {
		return nil, errBaseNotCommutative
	}

	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w: %s", errDuplicateVariable, v)
		}

		seen[v] = struct{}{}
	}

	return &MPolyRing{base: base, vars: append([]string(nil), vars...)}, nil
}

func (r *MPolyRing) Commutative() bool { return true }
func (r *MPolyRing) PID() bool         { return false }

func (r *MPolyRing) Zero() Element { return &MPoly{r: r} }

func (r *MPolyRing) One() Element {
	return &MPoly{r: r, terms: []mterm{{c: r.base.One(), e: make([]int, len(r.vars))}}}
}

// Var returns the i-th ring variable as a polynomial.
func (r *MPolyRing) Var(i int) *MPoly {
	if i < 0 || i >= len(r.vars) {
		panic("variable index out of range")
	}

	e := make([]int, len(r.vars))
	e[i] = 1

	return &MPoly{r: r, terms: []mterm{{c: r.base.One(), e: e}}}
}

// checkExponents enforces the term invariant: one non-negative exponent per
// ring variable.
func (r *MPolyRing) checkExponents(exps []int) error {
	if len(exps) != len(r.vars) {
		return fmt.Errorf("%w: want %d exponents, got %d", ErrCoercion, len(r.vars), len(exps))
	}

	for _, e := range exps {
		if e < 0 {
			return fmt.Errorf("%w: negative exponent %d", ErrCoercion, e)
		}
	}

	return nil
}

// Monomial builds c * x^e, coercing c through the base ring.
func (r *MPolyRing) Monomial(c any, exps []int) (*MPoly, error) {
	if err := r.checkExponents(exps); err != nil {
		return nil, err
	}

	cv, err := r.base.Coerce(c)
	if err != nil {
		return nil, err
	}

	if r.base.IsZero(cv) {
		return &MPoly{r: r}, nil
	}

	return &MPoly{r: r, terms: []mterm{{c: cv, e: append([]int(nil), exps...)}}}, nil
}

func (r *MPolyRing) Coerce(v any) (Element, error) {
	switch x := v.(type) {
	case *MPoly:
		if !x.r.Same(r) {
			return nil, fmt.Errorf("%w: element of %s into %s", ErrCoercion, x.r, r)
		}

		return x, nil
	default:
		c, err := r.base.Coerce(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %T into %s", ErrCoercion, v, r)
		}

		if r.base.IsZero(c) {
			return &MPoly{r: r}, nil
		}

		return &MPoly{r: r, terms: []mterm{{c: c, e: make([]int, len(r.vars))}}}, nil
	}
}

func (r *MPolyRing) val(e Element) *MPoly {
	p, ok := e.(*MPoly)
	if !ok || !p.r.Same(r) {
		panic("element does not belong to this polynomial ring")
	}

	return p
}

// lexCmp orders exponent vectors lexicographically.
func lexCmp(a, b []int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}

	return 0
}

// normalize sorts terms into descending lex order, merges equal monomials
// and drops zero coefficients.
func (r *MPolyRing) normalize(terms []mterm) *MPoly {
	sort.SliceStable(terms, func(i, j int) bool {
		return lexCmp(terms[i].e, terms[j].e) > 0
	})

	out := make([]mterm, 0, len(terms))
	for _, t := range terms {
		if n := len(out); n > 0 && lexCmp(out[n-1].e, t.e) == 0 {
			out[n-1].c = r.base.Add(out[n-1].c, t.c)
			continue
		}

		out = append(out, t)
	}

	kept := out[:0]
	for _, t := range out {
		if !r.base.IsZero(t.c) {
			kept = append(kept, t)
		}
	}

	return &MPoly{r: r, terms: append([]mterm(nil), kept...)}
}

func (r *MPolyRing) Add(a, b Element) Element {
	av, bv := r.val(a), r.val(b)
	terms := make([]mterm, 0, len(av.terms)+len(bv.terms))
	terms = append(terms, av.terms...)
	terms = append(terms, bv.terms...)

	return r.normalize(terms)
}

func (r *MPolyRing) Neg(a Element) Element {
	av := r.val(a)
	out := make([]mterm, len(av.terms))

	for i, t := range av.terms {
		out[i] = mterm{c: r.base.Neg(t.c), e: t.e}
	}

	return &MPoly{r: r, terms: out}
}

func (r *MPolyRing) Sub(a, b Element) Element {
	return r.Add(a, r.Neg(b))
}

func (r *MPolyRing) Mul(a, b Element) Element {
	av, bv := r.val(a), r.val(b)
	if len(av.terms) == 0 || len(bv.terms) == 0 {
		return &MPoly{r: r}
	}

	terms := make([]mterm, 0, len(av.terms)*len(bv.terms))
	for _, s := range av.terms {
		for _, t := range bv.terms {
			e := make([]int, len(s.e))
			for i := range e {
				e[i] = s.e[i] + t.e[i]
			}

			terms = append(terms, mterm{c: r.base.Mul(s.c, t.c), e: e})
		}
	}

	return r.normalize(terms)
}

func (r *MPolyRing) Pow(a Element, exp uint64) Element {
	res := r.One()
	base := a

	for exp > 0 {
		if exp%2 == 1 {
			res = r.Mul(res, base)
		}

		base = r.Mul(base, base)
		exp /= 2
	}

	return res
}

func (r *MPolyRing) Equal(a, b Element) bool {
	av, bv := r.val(a), r.val(b)
	if len(av.terms) != len(bv.terms) {
		return false
	}

	for i := range av.terms {
		if lexCmp(av.terms[i].e, bv.terms[i].e) != 0 {
			return false
		}

		if !r.base.Equal(av.terms[i].c, bv.terms[i].c) {
			return false
		}
	}

	return true
}

func (r *MPolyRing) IsZero(a Element) bool { return len(r.val(a).terms) == 0 }

// IsUnit: over an integral domain the units are the unit constants.
func (r *MPolyRing) IsUnit(a Element) bool {
	av := r.val(a)
	if len(av.terms) != 1 {
		return false
	}

	t := av.terms[0]
	for _, e := range t.e {
		if e != 0 {
			return false
		}
	}

	return r.base.IsUnit(t.c)
}

// Div performs exact division by a single divisor via leading-term
// reduction. For one divisor the reduction always cancels the leading term
// of an exact multiple, so ok=false is a definite "not divisible".
func (r *MPolyRing) Div(a, b Element) (Element, bool) {
	av, bv := r.val(a), r.val(b)
	if len(bv.terms) == 0 {
		if len(av.terms) == 0 {
			return &MPoly{r: r}, true
		}

		return nil, false
	}

	lt := bv.terms[0]
	rem := av
	quot := make([]mterm, 0)

	for len(rem.terms) > 0 {
		head := rem.terms[0]

		e := make([]int, len(head.e))
		for i := range e {
			e[i] = head.e[i] - lt.e[i]
			if e[i] < 0 {
				return nil, false
			}
		}

		qc, ok := r.base.Div(head.c, lt.c)
		if !ok {
			return nil, false
		}

		qt := mterm{c: qc, e: e}
		quot = append(quot, qt)

		step := &MPoly{r: r, terms: []mterm{qt}}
		rem = r.Sub(rem, r.Mul(step, bv)).(*MPoly)
	}

	return r.normalize(quot), true
}

func (r *MPolyRing) Divides(a, b Element) bool {
	_, ok := r.Div(b, a)
	return ok
}

func (r *MPolyRing) Gens() []Element {
	out := make([]Element, len(r.vars))
	for i := range r.vars {
		out[i] = r.Var(i)
	}

	return out
}

func (r *MPolyRing) Base() Ring { return r.base }

func (r *MPolyRing) Same(other Ring) bool {
	o, ok := other.(*MPolyRing)
	if !ok || !o.base.Same(r.base) || len(o.vars) != len(r.vars) {
		return false
	}

	for i := range r.vars {
		if o.vars[i] != r.vars[i] {
			return false
		}
	}

	return true
}

func (r *MPolyRing) String() string {
	return fmt.Sprintf("Multivariate Polynomial Ring in %s over %s",
		strings.Join(r.vars, ", "), r.base)
}

func (p *MPoly) Ring() Ring { return p.r }

// TotalDegree returns the maximum term degree, -1 for zero.
func (p *MPoly) TotalDegree() int {
	deg := -1
	for _, t := range p.terms {
		d := 0
		for _, e := range t.e {
			d += e
		}

		if d > deg {
			deg = d
		}
	}

	return deg
}

// Homogenize raises every term of p to the total degree of p using the i-th
// variable.
func (r *MPolyRing) Homogenize(p *MPoly, i int) *MPoly {
	if i < 0 || i >= len(r.vars) {
		panic("variable index out of range")
	}

	pv := r.val(p)
	deg := pv.TotalDegree()
	if deg <= 0 {
		return pv
	}

	terms := make([]mterm, len(pv.terms))
	for k, t := range pv.terms {
		d := 0
		for _, e := range t.e {
			d += e
		}

		e := append([]int(nil), t.e...)
		e[i] += deg - d
		terms[k] = mterm{c: t.c, e: e}
	}

	return r.normalize(terms)
}

func (p *MPoly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}

	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = p.r.termString(t)
	}

	return strings.Join(parts, " + ")
}

func (r *MPolyRing) termString(t mterm) string {
	mono := make([]string, 0, len(t.e))
	for i, e := range t.e {
		switch {
		case e == 1:
			mono = append(mono, r.vars[i])
		case e > 1:
			mono = append(mono, r.vars[i]+"^"+strconv.Itoa(e))
		}
	}

	if len(mono) == 0 {
		return t.c.String()
	}

	m := strings.Join(mono, "*")
	if r.base.Equal(t.c, r.base.One()) {
		return m
	}

	return t.c.String() + "*" + m
}

type mtermJSON struct {
	C json.RawMessage `json:"c"`
	E []int           `json:"e"`
}

func (r *MPolyRing) EncodeElement(e Element) ([]byte, error) {
	codec, ok := r.base.(ElementCodec)
	if !ok {
		return nil, fmt.Errorf("base ring %s has no element codec", r.base)
	}

	p := r.val(e)
	out := make([]mtermJSON, len(p.terms))

	for i, t := range p.terms {
		c, err := codec.EncodeElement(t.c)
		if err != nil {
			return nil, err
		}

		out[i] = mtermJSON{C: c, E: t.e}
	}

	return json.Marshal(out)
}

func (r *MPolyRing) DecodeElement(data []byte) (Element, error) {
	codec, ok := r.base.(ElementCodec)
	if !ok {
		return nil, fmt.Errorf("base ring %s has no element codec", r.base)
	}

	var raw []mtermJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	terms := make([]mterm, 0, len(raw))
	for _, t := range raw {
		if err := r.checkExponents(t.E); err != nil {
			return nil, err
		}

		c, err := codec.DecodeElement(t.C)
		if err != nil {
			return nil, err
		}

		terms = append(terms, mterm{c: c, e: t.E})
	}

	return r.normalize(terms), nil
}
