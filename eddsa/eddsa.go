// Package eddsa implements deterministic Poseidon-EdDSA signing over Baby
// Jubjub: nonce derivation, R-point commitment, Poseidon challenge, and
// response. Structured after _examples/original_source/src/poseidon/eddsa.rs
// (SignatureScheme::sign / hash_secret / hash_public) but follows spec.md
// §4.E's nonce derivation exactly, which differs from that reference (see
// DESIGN.md).
package eddsa

import (
	"crypto/sha512"
	"math/big"

	"github.com/loopring/l2-eddsa-signer/babyjubjub"
	"github.com/loopring/l2-eddsa-signer/constants"
	"github.com/loopring/l2-eddsa-signer/errors"
	"github.com/loopring/l2-eddsa-signer/field"
	"github.com/loopring/l2-eddsa-signer/poseidon"
)

// Signature is the triple (Rx, Ry, s) spec.md §3 defines.
type Signature struct {
	Rx, Ry field.Element
	S      field.SubgroupScalar
}

// Sign produces a deterministic signature over message m under secret
// scalar k (raw 32 bytes, big-endian). Returns ErrArithmetic if k is zero
// mod the subgroup order L.
func Sign(k [32]byte, m field.Element) (Signature, error) {
	kInt := new(big.Int).SetBytes(k[:])
	if new(big.Int).Mod(kInt, constants.SubgroupOrder).Sign() == 0 {
		return Signature{}, errors.Arithmeticf("secret scalar is zero mod the subgroup order")
	}

	r := deriveNonce(k)

	base := babyjubjub.Base()
	R := babyjubjub.ScalarMul(r.Big(), base)
	A := babyjubjub.ScalarMul(kInt, base)

	c, err := challenge(R, A, m)
	if err != nil {
		return Signature{}, err
	}

	// s = (r + c*k) mod L
	ck := new(big.Int).Mul(c.Big(), kInt)
	s := field.NewSubgroupScalar(new(big.Int).Add(r.Big(), ck))

	return Signature{Rx: R.X, Ry: R.Y, S: s}, nil
}

// deriveNonce computes r = (upper 32 bytes of SHA-512(k)) mod p, per
// spec.md §4.E step 1 (reduced mod the field prime p, NOT the subgroup
// order L — only the response s in step 5 is mod L). Neither RFC-6979
// nor the Ed25519 clamp applies: this matches Loopring's reference and
// must not be "improved" (spec.md §9).
func deriveNonce(k [32]byte) field.Element {
	h := sha512.Sum512(k[:])
	upper := h[32:64]
	rInt := new(big.Int).SetBytes(upper)
	return field.NewElement(rInt)
}

// challenge computes c = PoseidonHash_{t=5}([Rx, Ry, Ax, Ay, m]).
func challenge(R, A babyjubjub.Point, m field.Element) (field.Element, error) {
	return poseidon.EdDSAChallenge.Hash([]field.Element{R.X, R.Y, A.X, A.Y, m})
}

// Bytes serialises the signature as the concatenation of Rx, Ry, and s,
// each 32 big-endian bytes — 96 bytes total, matching spec.md §3.
func (sig Signature) Bytes() [96]byte {
	var out [96]byte
	rx := sig.Rx.Bytes()
	ry := sig.Ry.Bytes()
	s := sig.S.Bytes()
	copy(out[0:32], rx[:])
	copy(out[32:64], ry[:])
	copy(out[64:96], s[:])
	return out
}
