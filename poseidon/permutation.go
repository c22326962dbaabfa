// Package poseidon implements the Hades-style Poseidon permutation and
// its single-block sponge hash wrapper, parameterised for the two
// instance shapes Loopring's signing scheme needs. The round loop follows
// _examples/original_source/src/poseidon/permutation.rs and the reference
// it cites (Grassi et al., "Starkad and Poseidon"), restructured the way
// _examples/wyf-ACCEPT-eth2030/pkg/zkvm/poseidon.go lays out a Go
// math/big permutation: a Params struct plus a round-constant/MDS table.
package poseidon

import (
	"github.com/loopring/l2-eddsa-signer/constants"
	"github.com/loopring/l2-eddsa-signer/field"
)

// Params is one fully-materialised Poseidon instance: state width, round
// counts, S-box exponent, and the round-constant vector / MDS matrix the
// permutation mixes with.
type Params struct {
	T             int
	NRoundsF      int
	NRoundsP      int
	SBoxExp       uint64
	RoundConstant []field.Element // length T*(NRoundsF+NRoundsP)
	MDS           [][]field.Element
}

// Permute runs the full Hades round schedule over state and returns the
// permuted state: NRoundsF/2 full rounds, NRoundsP partial rounds, then
// NRoundsF/2 more full rounds, each round doing add-round-constants,
// S-box, then MDS mixing. The returned slice is newly allocated by the
// MDS step; the caller's slice is overwritten during the first round and
// does not hold the result.
func (p *Params) Permute(state []field.Element) []field.Element {
	halfFull := p.NRoundsF / 2
	totalRounds := p.NRoundsF + p.NRoundsP
	rcIdx := 0

	for r := 0; r < totalRounds; r++ {
		for i := 0; i < p.T; i++ {
			state[i] = state[i].Add(p.RoundConstant[rcIdx])
			rcIdx++
		}

		full := r < halfFull || r >= halfFull+p.NRoundsP
		if full {
			for i := 0; i < p.T; i++ {
				state[i] = state[i].Pow(p.SBoxExp)
			}
		} else {
			state[0] = state[0].Pow(p.SBoxExp)
		}

		state = p.mdsMul(state)
	}

	return state
}

func (p *Params) mdsMul(state []field.Element) []field.Element {
	out := make([]field.Element, p.T)
	for i := 0; i < p.T; i++ {
		acc := field.Zero()
		for j := 0; j < p.T; j++ {
			acc = acc.Add(p.MDS[i][j].Mul(state[j]))
		}
		out[i] = acc
	}
	return out
}

// SigningHash and EdDSAChallenge are the two instances Loopring requires,
// built once at package init from the deterministic generator in
// constants_gen.go.
var (
	SigningHash    = build(constants.SigningHash)
	EdDSAChallenge = build(constants.EdDSAChallenge)
)

func build(shape constants.PoseidonShape) *Params {
	rc, mds := generate(shape)
	return &Params{
		T:             shape.T,
		NRoundsF:      shape.NRoundsF,
		NRoundsP:      shape.NRoundsP,
		SBoxExp:       shape.SBoxExp,
		RoundConstant: rc,
		MDS:           mds,
	}
}
