// Package canonical builds the deterministic (method, url, params) ->
// Fr input vector the signing hash consumes, per spec.md §4.F.
// Percent-encoding and parameter joining follow
// _examples/original_source/src/util/helpers.rs's
// generate_signature_base_string, except that — per spec.md §4.F and
// §9's Open Question resolution — parameter order is always preserved
// as supplied, never sorted, for every method.
package canonical

import (
	"crypto/sha256"
	"math/big"
	"strings"

	"github.com/loopring/l2-eddsa-signer/constants"
	"github.com/loopring/l2-eddsa-signer/errors"
	"github.com/loopring/l2-eddsa-signer/field"
)

// Param is an ordered key/value pair. A slice, never a map: Go map
// iteration order is randomised, which would silently violate the
// ordering invariant this package exists to preserve.
type Param struct {
	Key, Value string
}

// isUnreserved reports whether c is in the percent-encoding exception
// set spec.md §4.F pins: any byte outside [A-Za-z0-9-_.~] is escaped.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}
	return false
}

// percentEncode applies strict percent-encoding: reserved bytes become
// "%XX" with upper-case hex digits, space becomes "%20" (never "+").
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	const hexdigits = "0123456789ABCDEF"
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexdigits[c>>4])
		b.WriteByte(hexdigits[c&0xf])
	}
	return b.String()
}

// joinParams joins (key, value) pairs with "=" and pairs with "&",
// preserving caller order.
func joinParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Key + "=" + p.Value
	}
	return strings.Join(parts, "&")
}

// SignatureBaseString builds "METHOD&urlencode(url)&urlencode(joined_params)".
func SignatureBaseString(method, url string, params []Param) (string, error) {
	upper := strings.ToUpper(method)
	if !constants.AcceptedMethods[upper] {
		return "", errors.Methodf("method %q is not one of GET, POST, PUT, DELETE", method)
	}

	joined := joinParams(params)
	return upper + "&" + percentEncode(url) + "&" + percentEncode(joined), nil
}

// MessageVector builds the five-element Fr input vector spec.md §4.F
// requires (the full rate of the t=6 signing hash, t-1=5): SHA-256
// the signature base string, reduce the digest mod p, and pad with zeros.
// The Poseidon sponge (poseidon.Params.Hash) prepends the capacity-zero
// slot itself, bringing the full initialised state to six elements, the
// "request input vector" spec.md §3 describes.
func MessageVector(method, url string, params []Param) ([5]field.Element, error) {
	var vec [5]field.Element

	base, err := SignatureBaseString(method, url, params)
	if err != nil {
		return vec, err
	}

	digest := sha256.Sum256([]byte(base))
	msgHash := field.NewElement(new(big.Int).SetBytes(digest[:]))

	vec[0] = msgHash
	for i := 1; i < 5; i++ {
		vec[i] = field.Zero()
	}
	return vec, nil
}
