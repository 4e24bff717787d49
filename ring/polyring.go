package ring

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// PolyRing is the univariate polynomial ring F_p[x] in dense representation,
// coefficients ordered from lowest to highest degree. Over a field it is a
// Euclidean domain, so the ideal layer classifies it as a PID.
type PolyRing struct {
	field   *PrimeField
	varName string
}

// Poly is an immutable element of a PolyRing. The zero polynomial is the
// empty coefficient slice; all other values carry a nonzero leading
// coefficient.
type Poly struct {
	r      *PolyRing
	coeffs []uint64
}

// NewPolyRing constructs F_p[varName].
func NewPolyRing(f *PrimeField, varName string) *PolyRing {
	if varName == "" {
		varName = "x"
	}

	return &PolyRing{field: f, varName: varName}
}

// Field returns the coefficient field.
func (r *PolyRing) Field() *PrimeField { return r.field }

func (r *PolyRing) Commutative() bool { return true }
func (r *PolyRing) PID() bool         { return true }

func (r *PolyRing) Zero() Element { return &Poly{r: r} }
func (r *PolyRing) One() Element  { return &Poly{r: r, coeffs: []uint64{1}} }

// FromCoeffs builds a polynomial from raw residues, lowest degree first.
// (e.g. [1, 2, 3] is 1 + 2x + 3x^2)
func (r *PolyRing) FromCoeffs(coeffs []uint64) *Poly {
	p := r.field.prime
	trimmed := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		trimmed[i] = c % p
	}

	return &Poly{r: r, coeffs: trim(trimmed)}
}

// trim drops trailing zero coefficients so the representation is canonical.
func trim(coeffs []uint64) []uint64 {
	i := len(coeffs) - 1
	for i >= 0 && coeffs[i] == 0 {
		i--
	}

	return coeffs[:i+1]
}

func (r *PolyRing) Coerce(v any) (Element, error) {
	switch x := v.(type) {
	case *Poly:
		if !x.r.Same(r) {
			return nil, fmt.Errorf("%w: element of %s into %s", ErrCoercion, x.r, r)
		}

		return x, nil
	case *FpElement:
		c, err := r.field.Coerce(x)
		if err != nil {
			return nil, err
		}

		return r.constant(c.(*FpElement).v), nil
	case int, int64, uint64, *big.Int, *Int:
		c, err := r.field.Coerce(x)
		if err != nil {
			return nil, err
		}

		return r.constant(c.(*FpElement).v), nil
	default:
		return nil, fmt.Errorf("%w: %T into %s", ErrCoercion, v, r)
	}
}

func (r *PolyRing) constant(c uint64) *Poly {
	if c == 0 {
		return &Poly{r: r}
	}

	return &Poly{r: r, coeffs: []uint64{c}}
}

func (r *PolyRing) val(e Element) *Poly {
	p, ok := e.(*Poly)
	if !ok || !p.r.Same(r) {
		panic("element does not belong to this polynomial ring")
	}

	return p
}

func (r *PolyRing) Add(a, b Element) Element {
	av, bv := r.val(a).coeffs, r.val(b).coeffs
	fld := r.field

	n := max(len(av), len(bv))
	out := make([]uint64, n)

	for i := 0; i < n; i++ {
		var s uint64
		if i < len(av) {
			s = av[i]
		}

		if i < len(bv) {
			s += bv[i] // both reduced below 2^63, no overflow.
			if s >= fld.prime {
				s -= fld.prime
			}
		}

		out[i] = s
	}

	return &Poly{r: r, coeffs: trim(out)}
}

func (r *PolyRing) Sub(a, b Element) Element {
	return r.Add(a, r.Neg(b))
}

func (r *PolyRing) Neg(a Element) Element {
	av := r.val(a).coeffs
	out := make([]uint64, len(av))

	for i, c := range av {
		if c != 0 {
			out[i] = r.field.prime - c
		}
	}

	return &Poly{r: r, coeffs: out}
}

func (r *PolyRing) Mul(a, b Element) Element {
	av, bv := r.val(a).coeffs, r.val(b).coeffs
	if len(av) == 0 || len(bv) == 0 {
		return r.Zero()
	}

	fld := r.field
	out := make([]uint64, len(av)+len(bv)-1)

	// schoolbook convolution: out[i+j] += a[i] * b[j]
	for i, ai := range av {
		if ai == 0 {
			continue
		}

		for j, bj := range bv {
			s := out[i+j] + fld.mul(ai, bj)
			if s >= fld.prime {
				s -= fld.prime
			}

			out[i+j] = s
		}
	}

	return &Poly{r: r, coeffs: trim(out)}
}

func (r *PolyRing) Pow(a Element, exp uint64) Element {
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

func (r *PolyRing) Equal(a, b Element) bool {
	av, bv := r.val(a).coeffs, r.val(b).coeffs
	if len(av) != len(bv) {
		return false
	}

	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}

	return true
}

func (r *PolyRing) IsZero(a Element) bool { return len(r.val(a).coeffs) == 0 }

// IsUnit: the units of F_p[x] are the nonzero constants.
func (r *PolyRing) IsUnit(a Element) bool { return r.val(a).Degree() == 0 }

// longDiv follows Algorithm 2.5 (polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard:
// returns q, rem such that a = q*b + rem, deg(rem) < deg(b).
func (r *PolyRing) longDiv(a, b *Poly) (*Poly, *Poly) {
	fld := r.field

	n, m := a.Degree(), b.Degree()
	if n < m {
		return r.Zero().(*Poly), a
	}

	u := fld.mulInverse(b.leadCoeff())

	rem := make([]uint64, len(a.coeffs))
	copy(rem, a.coeffs)
	q := make([]uint64, n-m+1)

	for i := n - m; i >= 0; i-- {
		d := len(trim(rem)) - 1
		if d != m+i {
			q[i] = 0
			continue
		}

		rem = trim(rem)
		q[i] = fld.mul(rem[d], u)

		// rem -= q[i] * x^i * b
		for j, bj := range b.coeffs {
			prod := fld.mul(q[i], bj)
			if rem[i+j] < prod {
				rem[i+j] += fld.prime
			}

			rem[i+j] -= prod
		}
	}

	return &Poly{r: r, coeffs: trim(q)}, &Poly{r: r, coeffs: trim(rem)}
}

// mulInverse is Inverse on raw residues, avoiding element wrapping in hot
// loops.
func (f *PrimeField) mulInverse(a uint64) uint64 {
	if a == 0 {
		panic("zero has no inverse")
	}

	x := uint64(1)
	base := a
	exp := f.prime - 2

	for exp > 0 {
		if exp%2 == 1 {
			x = f.mul(x, base)
		}

		base = f.mul(base, base)
		exp /= 2
	}

	return x
}

func (r *PolyRing) QuoRem(a, b Element) (Element, Element) {
	bv := r.val(b)
	if len(bv.coeffs) == 0 {
		panic("polynomial division by zero")
	}

	return r.longDiv(r.val(a), bv)
}

func (r *PolyRing) Div(a, b Element) (Element, bool) {
	if r.IsZero(b) {
		if r.IsZero(a) {
			return r.Zero(), true
		}

		return nil, false
	}

	q, rem := r.QuoRem(a, b)
	if !r.IsZero(rem) {
		return nil, false
	}

	return q, true
}

func (r *PolyRing) Divides(a, b Element) bool {
	_, ok := r.Div(b, a)
	return ok
}

// GCD runs the Euclidean loop (gcd(a, b) = gcd(b, a mod b)) and normalizes
// the result to be monic, so equal ideals store equal generators.
func (r *PolyRing) GCD(a, b Element) Element {
	x, y := r.val(a), r.val(b)

	for !r.IsZero(y) {
		_, rem := r.longDiv(x, y)
		x, y = y, rem
	}

	return r.monic(x)
}

func (r *PolyRing) monic(p *Poly) *Poly {
	if len(p.coeffs) == 0 {
		return p
	}

	lead := p.leadCoeff()
	if lead == 1 {
		return p
	}

	u := r.field.mulInverse(lead)
	out := make([]uint64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = r.field.mul(c, u)
	}

	return &Poly{r: r, coeffs: out}
}

// Var returns the generator x.
func (r *PolyRing) Var() *Poly {
	return &Poly{r: r, coeffs: []uint64{0, 1}}
}

func (r *PolyRing) Gens() []Element { return []Element{r.Var()} }

func (r *PolyRing) Base() Ring { return r.field }

func (r *PolyRing) Same(other Ring) bool {
	o, ok := other.(*PolyRing)
	return ok && o.field.prime == r.field.prime && o.varName == r.varName
}

func (r *PolyRing) String() string {
	return fmt.Sprintf("Univariate Polynomial Ring in %s over %s", r.varName, r.field)
}

// Degree of the zero polynomial is -1.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

func (p *Poly) leadCoeff() uint64 {
	if len(p.coeffs) == 0 {
		return 0
	}

	return p.coeffs[len(p.coeffs)-1]
}

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p *Poly) Coeffs() []uint64 {
	out := make([]uint64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Eval computes p(x) by Horner's rule.
func (p *Poly) Eval(x uint64) uint64 {
	fld := p.r.field
	result := uint64(0)

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = p.coeffs[i] + fld.mul(x%fld.prime, result)
		if result >= fld.prime {
			result -= fld.prime
		}
	}

	return result
}

func (p *Poly) Ring() Ring { return p.r }

func (p *Poly) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}

	if len(p.coeffs) == 1 {
		return strconv.FormatUint(p.coeffs[0], 10)
	}

	bldr := strings.Builder{}
	first := true

	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}

		if !first {
			bldr.WriteString(" + ")
		}

		first = false

		switch {
		case i == 0:
			bldr.WriteString(strconv.FormatUint(c, 10))
		case c == 1:
			bldr.WriteString(p.r.varName)
		default:
			bldr.WriteString(strconv.FormatUint(c, 10))
			bldr.WriteString("*")
			bldr.WriteString(p.r.varName)
		}

		if i > 1 {
			bldr.WriteString("^")
			bldr.WriteString(strconv.Itoa(i))
		}
	}

	return bldr.String()
}

func (r *PolyRing) EncodeElement(e Element) ([]byte, error) {
	p := r.val(e)
	parts := make([]string, len(p.coeffs))

	for i, c := range p.coeffs {
		parts[i] = `"` + strconv.FormatUint(c, 10) + `"`
	}

	return []byte("[" + strings.Join(parts, ",") + "]"), nil
}

func (r *PolyRing) DecodeElement(data []byte) (Element, error) {
	raw, err := unquoteList(data)
	if err != nil {
		return nil, err
	}

	coeffs := make([]uint64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a coefficient", ErrCoercion, s)
		}

		coeffs[i] = v
	}

	return r.FromCoeffs(coeffs), nil
}
