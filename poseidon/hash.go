package poseidon

import (
	"github.com/loopring/l2-eddsa-signer/errors"
	"github.com/loopring/l2-eddsa-signer/field"
)

// Hash absorbs a variable-length input vector (at most T-1 elements, the
// capacity slot is always zero) in a single block — no multi-block
// absorption — and returns the first state element after permutation, as
// spec.md §4.C defines.
func (p *Params) Hash(inputs []field.Element) (field.Element, error) {
	if len(inputs) > p.T-1 {
		return field.Element{}, errors.Rangef(
			"poseidon hash: %d inputs exceed rate %d for t=%d", len(inputs), p.T-1, p.T)
	}

	state := make([]field.Element, p.T)
	state[0] = field.Zero()
	for i, x := range inputs {
		state[i+1] = x
	}
	for i := len(inputs) + 1; i < p.T; i++ {
		state[i] = field.Zero()
	}

	state = p.Permute(state)
	return state[0], nil
}
