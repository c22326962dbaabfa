// Package field implements modular arithmetic over the Baby Jubjub
// scalar field Fr (the BN254 scalar field prime p), and the distinct
// SubgroupScalar type for values reduced mod the curve's prime-order
// subgroup L. Keeping the two as separate Go types follows spec §9's
// warning: conflating "reduced mod p" with "reduced mod L" silently
// produces invalid signatures.
package field

import (
	"math/big"

	"github.com/loopring/l2-eddsa-signer/constants"
	lerrors "github.com/loopring/l2-eddsa-signer/errors"
	"github.com/loopring/l2-eddsa-signer/internal/hexcodec"
)

// Element is a canonically-reduced value in [0, p).
type Element struct {
	v *big.Int
}

// Zero is the additive identity of Fr.
func Zero() Element { return Element{v: new(big.Int)} }

// One is the multiplicative identity of Fr.
func One() Element { return Element{v: big.NewInt(1)} }

// NewElement reduces n mod p and returns the canonical Element.
func NewElement(n *big.Int) Element {
	return Element{v: new(big.Int).Mod(n, constants.FieldPrime)}
}

// NewElementFromInt64 is a convenience constructor for small literals.
func NewElementFromInt64(n int64) Element {
	return NewElement(big.NewInt(n))
}

// ParseDecimal parses a canonical decimal integer in [0, p).
func ParseDecimal(s string) (Element, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Element{}, lerrors.Parsef("field element %q is not a valid decimal integer", s)
	}
	if n.Sign() < 0 || n.Cmp(constants.FieldPrime) >= 0 {
		return Element{}, lerrors.Rangef("field element %q is not in [0, p)", s)
	}
	return Element{v: n}, nil
}

// ParseHex parses a "0x"-prefixed hex string of 1 to 64 nibbles,
// left-padded, into a canonical Element. Unlike hexutil.DecodeBig this
// tolerates leading zero nibbles: the inputs here are fixed-width
// padded scalars (e.g. "0x001fa186..."), not minimal-form quantities.
func ParseHex(s string) (Element, error) {
	b, err := hexcodec.DecodeNibbles(s, 64)
	if err != nil {
		return Element{}, err
	}
	n := new(big.Int).SetBytes(b)
	if n.Cmp(constants.FieldPrime) >= 0 {
		return Element{}, lerrors.Rangef("field element %q is not in [0, p)", s)
	}
	return Element{v: n}, nil
}

// Big returns the big.Int magnitude backing this element. The returned
// value must not be mutated by callers.
func (e Element) Big() *big.Int { return e.v }

// Add returns e + o mod p.
func (e Element) Add(o Element) Element {
	return NewElement(new(big.Int).Add(e.v, o.v))
}

// Sub returns e - o mod p.
func (e Element) Sub(o Element) Element {
	return NewElement(new(big.Int).Sub(e.v, o.v))
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return NewElement(new(big.Int).Neg(e.v))
}

// Mul returns e * o mod p.
func (e Element) Mul(o Element) Element {
	return NewElement(new(big.Int).Mul(e.v, o.v))
}

// Square returns e * e mod p.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow returns e^k mod p.
func (e Element) Pow(k uint64) Element {
	return Element{v: new(big.Int).Exp(e.v, new(big.Int).SetUint64(k), constants.FieldPrime)}
}

// Inverse returns the multiplicative inverse of e. Fails with
// ErrArithmetic when e is zero.
func (e Element) Inverse() (Element, error) {
	if e.v.Sign() == 0 {
		return Element{}, lerrors.Arithmeticf("inverse of zero is undefined")
	}
	return Element{v: new(big.Int).ModInverse(e.v, constants.FieldPrime)}, nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and o represent the same canonical value.
func (e Element) Equal(o Element) bool { return e.v.Cmp(o.v) == 0 }

// Bytes serialises e as exactly 32 big-endian bytes.
func (e Element) Bytes() [32]byte {
	var out [32]byte
	e.v.FillBytes(out[:])
	return out
}

// Hex serialises e as a "0x"-prefixed, 64-nibble, zero-padded hex string.
func (e Element) Hex() string {
	b := e.Bytes()
	return hexcodec.Encode(b[:])
}
