package ideal

import (
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-ideal/ring"
)

var ErrInfiniteBaseRing = errors.New("cannot construct field ideal over an infinite base ring")

// FieldIdeal builds the ideal of the field equations x^q - x, one per ring
// generator, where q is the order of r's base coefficient ring. The name
// comes from these equations cutting out exactly the points with
// coordinates in the base field.
func FieldIdeal(r ring.Ring) (Ideal, error) {
	fr, ok := r.Base().(ring.FiniteRing)
	if !ok {
		return Ideal{}, fmt.Errorf("%w: %s", ErrInfiniteBaseRing, r.Base())
	}

	q := fr.Order()

	gens := make([]any, 0, len(r.Gens()))
	for _, x := range r.Gens() {
		gens = append(gens, r.Sub(r.Pow(x, q), x))
	}

	return New(r, gens...)
}
