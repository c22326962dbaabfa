// Package constants holds the pinned, read-only tables this module is
// built on: the Baby Jubjub field and curve parameters, the EdDSA
// subgroup order, and the two Poseidon instance shapes Loopring requires.
// Mirrors the teacher's constants package pattern (one place holding the
// module's static knobs) but for cryptographic rather than cache-TTL data.
package constants

import "math/big"

// FieldPrime is p, the BN254 scalar field / Baby Jubjub subgroup order
// base field: 21888242871839275222246405745257275088548364400416034343698204186575808495617.
var FieldPrime, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10,
)

// SubgroupOrder is L, the order of the Baby Jubjub prime-order subgroup.
// EdDSA responses are reduced mod L, never mod FieldPrime.
var SubgroupOrder, _ = new(big.Int).SetString(
	"2736030358979909402780800718157159386076813972158567259200215660948447373041", 10,
)

// CurveA and CurveD are the twisted-Edwards curve coefficients:
// a*x^2 + y^2 = 1 + d*x^2*y^2 (mod FieldPrime).
var (
	CurveA = big.NewInt(168700)
	CurveD = big.NewInt(168696)
)

// BaseX and BaseY are the coordinates of B, the generator Loopring's
// layer-2 keys and EdDSA commitments are scalar-multiplied against. This
// is NOT circomlib's EIP-2494 "Base8" point: it is pinned to the point
// recovered from _examples/original_source/src/poseidon/eddsa.rs's
// sign_test vector (private_key=1 implies A == B), the only base point
// this module's canonical key-derivation and signing vectors actually
// agree with. spec.md §9 warns its own rendering of the base point may
// not be reliable; §8's test vectors, not §6's prose, are the source of
// truth, and this constant is pinned to them.
var (
	BaseX, _ = new(big.Int).SetString(
		"16540640123574156134436876038791482806971768689494387082833631921987005038935", 10,
	)
	BaseY, _ = new(big.Int).SetString(
		"20819045374670962167435360035096875258406992893633759881276124905556507972311", 10,
	)
)

// PoseidonShape describes one Hades-style permutation instance: state
// width, full/partial round counts, and the fixed S-box exponent.
type PoseidonShape struct {
	T           int
	NRoundsF    int
	NRoundsP    int
	SBoxExp     uint64
	DomainLabel string
}

// SigningHash is the t=6 instance used to compress the request
// canonicalisation vector down to the EdDSA message scalar m.
var SigningHash = PoseidonShape{
	T:           6,
	NRoundsF:    8,
	NRoundsP:    53,
	SBoxExp:     5,
	DomainLabel: "poseidon",
}

// EdDSAChallenge is the t=5 instance used inside EdDSA signing to derive
// the Fiat-Shamir challenge c = H(Rx, Ry, Ax, Ay, m).
var EdDSAChallenge = PoseidonShape{
	T:           5,
	NRoundsF:    6,
	NRoundsP:    52,
	SBoxExp:     5,
	DomainLabel: "poseidon",
}

// AcceptedMethods is the HTTP method set the request canonicaliser
// recognises; anything else is an ErrMethod.
var AcceptedMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"DELETE": true,
}
