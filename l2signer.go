// Package l2signer wires the field, Poseidon, Baby Jubjub, EdDSA,
// canonicalisation, and key-derivation packages into Loopring's two
// public layer-2 signing operations: generating an EdDSA signature over
// an HTTP request, and deriving an L2 key triple from an L1 ECDSA
// signature. Mirrors the teacher's top-level auth.go, which wires its
// own subsystems (loaders, pubsignals, verification) behind a small
// public function set.
package l2signer

import (
	"github.com/loopring/l2-eddsa-signer/canonical"
	"github.com/loopring/l2-eddsa-signer/eddsa"
	"github.com/loopring/l2-eddsa-signer/field"
	"github.com/loopring/l2-eddsa-signer/internal/hexcodec"
	"github.com/loopring/l2-eddsa-signer/keygen"
	"github.com/loopring/l2-eddsa-signer/poseidon"
)

// KV is an ordered (key, value) request parameter. A slice of KV, never
// a map: Go map iteration order is randomised, which would silently
// violate the ordering invariant canonical.Param exists to preserve.
type KV struct {
	Key, Value string
}

// L2Keys is the (private scalar, public point) triple GenerateL2Keys
// returns, each rendered as a "0x"-prefixed, 32-byte hex string.
type L2Keys struct {
	PrivateKey string
	PublicKeyX string
	PublicKeyY string
}

const privateKeyLen = 32

// GenerateEdDSASignature builds the Poseidon-EdDSA signature for an HTTP
// request: canonicalise (method, url, params) into the message scalar,
// sign it with the L2 private scalar given as 32-byte hex, and render
// the (Rx, Ry, s) triple as a single 194-character "0x..." hex string.
func GenerateEdDSASignature(method, url string, params []KV, privateKeyHex string) (string, error) {
	kBytes, err := hexcodec.DecodeExact(privateKeyHex, privateKeyLen)
	if err != nil {
		return "", err
	}
	var k [32]byte
	copy(k[:], kBytes)

	vec, err := canonical.MessageVector(method, url, toParams(params))
	if err != nil {
		return "", err
	}

	m, err := poseidonSigningHash(vec)
	if err != nil {
		return "", err
	}

	sig, err := eddsa.Sign(k, m)
	if err != nil {
		return "", err
	}

	out := sig.Bytes()
	return hexcodec.Encode(out[:]), nil
}

// GenerateL2Keys derives (private_scalar, Ax, Ay) from a hex-encoded
// 65-byte ECDSA signature.
func GenerateL2Keys(ecdsaSignatureHex string) (*L2Keys, error) {
	keys, err := keygen.GenerateL2Keys(ecdsaSignatureHex)
	if err != nil {
		return nil, err
	}
	return &L2Keys{
		PrivateKey: keys.PrivateKeyHex(),
		PublicKeyX: keys.PublicKeyXHex(),
		PublicKeyY: keys.PublicKeyYHex(),
	}, nil
}

func toParams(kvs []KV) []canonical.Param {
	params := make([]canonical.Param, len(kvs))
	for i, kv := range kvs {
		params[i] = canonical.Param{Key: kv.Key, Value: kv.Value}
	}
	return params
}

// poseidonSigningHash compresses the five-element request vector
// canonical.MessageVector produces into the single Fr message scalar
// eddsa.Sign consumes, using the t=6 signing instance.
func poseidonSigningHash(vec [5]field.Element) (field.Element, error) {
	return poseidon.SigningHash.Hash(vec[:])
}
