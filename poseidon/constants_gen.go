package poseidon

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/blake2b"

	"github.com/loopring/l2-eddsa-signer/constants"
	"github.com/loopring/l2-eddsa-signer/field"
)

// generate derives the round-constant vector and MDS matrix for a
// Poseidon instance shape, following spec.md §9's "regenerate at
// initialisation" option: a short seed is expanded into a keystream and
// the keystream is rejection-sampled into field elements, grounded on
// _examples/original_source/src/poseidon/permutation.rs's use of
// blake2b_simd to turn the seed string into deterministic bytes.
//
// Round constants are drawn first, then two disjoint sequences of T
// field elements (x_i, y_i) are drawn from the same keystream and used
// to build a Cauchy MDS matrix, M[i][j] = 1/(x_i + y_j) — the
// construction used by the Poseidon reference paper, which guarantees
// the MDS (maximum-distance-separable) property as long as the x_i/y_j
// are pairwise distinct.
func generate(shape constants.PoseidonShape) ([]field.Element, [][]field.Element) {
	totalRounds := shape.NRoundsF + shape.NRoundsP
	ks := newKeystream(shape)

	rc := make([]field.Element, shape.T*totalRounds)
	for i := range rc {
		rc[i] = ks.nextElement()
	}

	xs := make([]field.Element, shape.T)
	ys := make([]field.Element, shape.T)
	for i := 0; i < shape.T; i++ {
		xs[i] = ks.nextElement()
	}
	for i := 0; i < shape.T; i++ {
		ys[i] = ks.nextElement()
	}

	mds := make([][]field.Element, shape.T)
	for i := 0; i < shape.T; i++ {
		mds[i] = make([]field.Element, shape.T)
		for j := 0; j < shape.T; j++ {
			denom := xs[i].Add(ys[j])
			inv, err := denom.Inverse()
			if err != nil {
				// x_i + y_j collided; re-draw y_j from the keystream and retry.
				ys[j] = ks.nextElement()
				denom = xs[i].Add(ys[j])
				inv, err = denom.Inverse()
				if err != nil {
					panic("poseidon: could not construct Cauchy MDS entry")
				}
			}
			mds[i][j] = inv
		}
	}

	return rc, mds
}

// keystream produces an unbounded sequence of field elements by hashing
// a seed tag plus an incrementing counter with blake2b-256 and reading
// each 32-byte digest as a big-endian integer. Digests >= p are rejected
// and re-drawn rather than reduced (since p is about 0.19·2^256, most
// digests are rejected), so every accepted draw is uniform over Fr.
type keystream struct {
	tag     []byte
	counter uint64
}

func newKeystream(shape constants.PoseidonShape) *keystream {
	tag := []byte(shape.DomainLabel)
	tag = append(tag, encodeShapeTag(shape)...)
	return &keystream{tag: tag}
}

func encodeShapeTag(shape constants.PoseidonShape) []byte {
	buf := make([]byte, 8*4)
	binary.BigEndian.PutUint64(buf[0:8], uint64(shape.T))
	binary.BigEndian.PutUint64(buf[8:16], uint64(shape.NRoundsF))
	binary.BigEndian.PutUint64(buf[16:24], uint64(shape.NRoundsP))
	binary.BigEndian.PutUint64(buf[24:32], shape.SBoxExp)
	return buf
}

func (k *keystream) nextElement() field.Element {
	for {
		var ctr [8]byte
		binary.BigEndian.PutUint64(ctr[:], k.counter)
		k.counter++

		h := blake2b.Sum256(append(append([]byte{}, k.tag...), ctr[:]...))
		n := new(big.Int).SetBytes(h[:])
		if n.Cmp(constants.FieldPrime) < 0 {
			return field.NewElement(n)
		}
		// Rejected draw: loop and consume the next counter value.
	}
}
