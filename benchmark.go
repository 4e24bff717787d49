package ideal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jonathanmweiss/go-ideal/ring"
)

// Backend produces the generator sets of named textbook ideals. It is an
// explicit collaborator passed into the benchmark builders; there is no
// process-wide default instance.
type Backend interface {
	NamedConstruction(r ring.Ring, name string, n int, homog bool) ([]ring.Element, error)
}

// Construction names understood by LocalBackend.
const (
	ConstructionCyclic  = "cyclic"
	ConstructionKatsura = "katsura"
)

var (
	ErrTooManyVariables    = errors.New("n must be <= the number of ring generators")
	ErrNegativeVariables   = errors.New("n must not be negative")
	ErrUnknownConstruction = errors.New("unknown named construction")
	errNeedsMPolyRing      = errors.New("named constructions need a multivariate polynomial ring")
)

// Cyclic builds the ideal of cyclic n-roots over the first n variables of
// r. n == 0 means all variables. With homog set, generators are
// homogenized using the last ring variable.
func Cyclic(b Backend, r ring.Ring, n int, homog bool) (Ideal, error) {
	return namedIdeal(b, r, ConstructionCyclic, n, homog)
}

// Katsura builds the n-th Katsura ideal of r. n == 0 means all variables.
func Katsura(b Backend, r ring.Ring, n int, homog bool) (Ideal, error) {
	return namedIdeal(b, r, ConstructionKatsura, n, homog)
}

func namedIdeal(b Backend, r ring.Ring, name string, n int, homog bool) (Ideal, error) {
	if n < 0 {
		return Ideal{}, fmt.Errorf("%w: n=%d", ErrNegativeVariables, n)
	}

	ngens := len(r.Gens())
	if n == 0 {
		n = ngens
	}

	if n > ngens {
		return Ideal{}, fmt.Errorf("%w: n=%d, generators=%d", ErrTooManyVariables, n, ngens)
	}

	gens, err := b.NamedConstruction(r, name, n, homog)
	if err != nil {
		return Ideal{}, err
	}

	return New(r, elemsToAny(gens)...)
}

type constructionKey struct {
	r     ring.Ring
	name  string
	n     int
	homog bool
}

type constructionCache struct {
	sync.Locker
	generators map[constructionKey][]ring.Element
}

func newConstructionCache() *constructionCache {
	return &constructionCache{
		Locker:     &sync.Mutex{},
		generators: make(map[constructionKey][]ring.Element),
	}
}

func (c *constructionCache) load(k constructionKey) []ring.Element {
	c.Lock()
	defer c.Unlock()

	return c.generators[k]
}

func (c *constructionCache) store(k constructionKey, gens []ring.Element) {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.generators[k]; ok {
		return
	}

	c.generators[k] = gens
}

// LocalBackend computes the named constructions in-process over a
// multivariate polynomial ring, memoizing generator sets per request.
type LocalBackend struct {
	cache *constructionCache
}

func NewLocalBackend() *LocalBackend {
	return &LocalBackend{cache: newConstructionCache()}
}

func (b *LocalBackend) NamedConstruction(r ring.Ring, name string, n int, homog bool) ([]ring.Element, error) {
	mr, ok := r.(*ring.MPolyRing)
	if !ok {
		return nil, errNeedsMPolyRing
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVariables, n)
	}

	if n > len(r.Gens()) {
		return nil, fmt.Errorf("%w: n=%d, generators=%d", ErrTooManyVariables, n, len(r.Gens()))
	}

	key := constructionKey{r: r, name: name, n: n, homog: homog}
	if gens := b.cache.load(key); gens != nil {
		// copy the slice header so callers cannot corrupt the cache;
		// the elements themselves are immutable.
		return append([]ring.Element(nil), gens...), nil
	}

	var gens []ring.Element
	switch name {
	case ConstructionCyclic:
		gens = cyclicGenerators(mr, n)
	case ConstructionKatsura:
		gens = katsuraGenerators(mr, n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConstruction, name)
	}

	if homog {
		last := len(r.Gens()) - 1
		for i, g := range gens {
			gens[i] = mr.Homogenize(g.(*ring.MPoly), last)
		}
	}

	b.cache.store(key, gens)

	return append([]ring.Element(nil), gens...), nil
}

// cyclicGenerators is the cyclic n-roots system: for d = 1..n-1 the sum of
// all products of d cyclically consecutive variables, plus the product of
// all n variables minus one.
func cyclicGenerators(r *ring.MPolyRing, n int) []ring.Element {
	vars := r.Gens()[:n]
	gens := make([]ring.Element, 0, n)

	for d := 1; d < n; d++ {
		f := r.Zero()
		for i := 0; i < n; i++ {
			p := r.One()
			for j := i; j < i+d; j++ {
				p = r.Mul(p, vars[j%n])
			}

			f = r.Add(f, p)
		}

		gens = append(gens, f)
	}

	all := r.One()
	for _, v := range vars {
		all = r.Mul(all, v)
	}

	gens = append(gens, r.Sub(all, r.One()))

	return gens
}

// katsuraGenerators is the Katsura-n system over variables u_0..u_{n-1},
// with u_{-l} = u_l and u_l = 0 for |l| >= n: for m = 0..n-2 the equation
// sum_l u_l*u_{m-l} - u_m, plus the linear equation u_0 + 2*sum u_l - 1.
func katsuraGenerators(r *ring.MPolyRing, n int) []ring.Element {
	vars := r.Gens()[:n]

	u := func(l int) ring.Element {
		if l < 0 {
			l = -l
		}

		if l >= n {
			return r.Zero()
		}

		return vars[l]
	}

	gens := make([]ring.Element, 0, n)

	for m := 0; m < n-1; m++ {
		f := r.Neg(u(m))
		for l := -(n - 1); l <= n-1; l++ {
			f = r.Add(f, r.Mul(u(l), u(m-l)))
		}

		gens = append(gens, f)
	}

	lin := r.Neg(r.One())
	for l := -(n - 1); l <= n-1; l++ {
		lin = r.Add(lin, u(l))
	}

	gens = append(gens, lin)

	return gens
}
