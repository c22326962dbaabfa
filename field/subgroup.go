package field

import (
	"math/big"

	"github.com/loopring/l2-eddsa-signer/constants"
)

// SubgroupScalar is a value reduced modulo L, the Baby Jubjub prime-order
// subgroup order. The EdDSA response s lives in this type, never in
// Element, so the two moduli can never be silently conflated. The EdDSA
// nonce r is reduced mod p and is an Element (see eddsa.deriveNonce).
type SubgroupScalar struct {
	v *big.Int
}

// NewSubgroupScalar reduces n mod L.
func NewSubgroupScalar(n *big.Int) SubgroupScalar {
	return SubgroupScalar{v: new(big.Int).Mod(n, constants.SubgroupOrder)}
}

// Big returns the big.Int magnitude backing this scalar. The returned
// value must not be mutated by callers.
func (s SubgroupScalar) Big() *big.Int { return s.v }

// Add returns s + o mod L.
func (s SubgroupScalar) Add(o SubgroupScalar) SubgroupScalar {
	return NewSubgroupScalar(new(big.Int).Add(s.v, o.v))
}

// Mul returns s * o mod L.
func (s SubgroupScalar) Mul(o SubgroupScalar) SubgroupScalar {
	return NewSubgroupScalar(new(big.Int).Mul(s.v, o.v))
}

// IsZero reports whether s is zero mod L.
func (s SubgroupScalar) IsZero() bool { return s.v.Sign() == 0 }

// Bytes serialises s as exactly 32 big-endian bytes.
func (s SubgroupScalar) Bytes() [32]byte {
	var out [32]byte
	s.v.FillBytes(out[:])
	return out
}
