package ideal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathanmweiss/go-ideal/ring"
)

var ErrNoCodec = errors.New("ring does not implement an element codec")

type idealJSON struct {
	Kind string            `json:"kind"`
	Gens []json.RawMessage `json:"gens"`
}

// MarshalJSON encodes the ideal's kind and generators. The ring itself is
// never serialized: rings are shared ambient structures, and decoding needs
// one in hand (see Decode).
func (i Ideal) MarshalJSON() ([]byte, error) {
	codec, ok := i.r.(ring.ElementCodec)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoCodec, i.r)
	}

	out := idealJSON{
		Kind: i.kind.String(),
		Gens: make([]json.RawMessage, len(i.gens)),
	}

	for k, g := range i.gens {
		enc, err := codec.EncodeElement(g)
		if err != nil {
			return nil, err
		}

		out.Gens[k] = enc
	}

	return json.Marshal(out)
}

// Decode rebuilds an ideal over r from data produced by MarshalJSON.
// Generators run back through the classifier, so the decoded ideal is equal
// to the original and carries the same kind.
func Decode(r ring.Ring, data []byte) (Ideal, error) {
	codec, ok := r.(ring.ElementCodec)
	if !ok {
		return Ideal{}, fmt.Errorf("%w: %s", ErrNoCodec, r)
	}

	var raw idealJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Ideal{}, err
	}

	gens := make([]any, len(raw.Gens))
	for k, blob := range raw.Gens {
		e, err := codec.DecodeElement(blob)
		if err != nil {
			return Ideal{}, err
		}

		gens[k] = e
	}

	if raw.Kind == Fractional.String() {
		return NewFractional(r, gens...)
	}

	return New(r, gens...)
}
