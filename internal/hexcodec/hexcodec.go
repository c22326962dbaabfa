// Package hexcodec centralises this module's "0x"-prefixed hex handling
// on top of github.com/ethereum/go-ethereum/common/hexutil, the same
// dependency the teacher (github.com/iden3/go-iden3-auth, via its
// Ethereum L1 plumbing) already carries. hexutil.DecodeBig enforces
// minimal-quantity encoding (no leading zero nibbles), which is wrong for
// this module's fixed-width, zero-padded scalars, so the padding-aware
// helpers here wrap hexutil.Decode/Encode instead.
package hexcodec

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	lerrors "github.com/loopring/l2-eddsa-signer/errors"
)

// DecodeNibbles parses a "0x"-prefixed hex string of 1 to maxNibbles
// nibbles, left-padded, into raw bytes.
func DecodeNibbles(s string, maxNibbles int) ([]byte, error) {
	body, err := trimAndPad(s, maxNibbles)
	if err != nil {
		return nil, err
	}
	b, err := hexutil.Decode("0x" + body)
	if err != nil {
		return nil, lerrors.Parsef("hex string %q: %v", s, err)
	}
	return b, nil
}

// DecodeExact parses a "0x"-prefixed hex string that must decode to
// exactly n bytes (after the even-nibble padding rule below).
func DecodeExact(s string, n int) ([]byte, error) {
	b, err := DecodeNibbles(s, n*2)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, lerrors.Parsef("hex string %q must decode to exactly %d bytes, got %d", s, n, len(b))
	}
	return b, nil
}

// Encode renders b as a "0x"-prefixed, lower-case hex string.
func Encode(b []byte) string {
	return hexutil.Encode(b)
}

func trimAndPad(s string, maxNibbles int) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", lerrors.Parsef("hex string %q must be 0x-prefixed", s)
	}
	body := s[2:]
	if len(body) == 0 || len(body) > maxNibbles {
		return "", lerrors.Parsef("hex string %q must have 1 to %d nibbles", s, maxNibbles)
	}
	if len(body)%2 == 1 {
		body = "0" + body
	}
	return body, nil
}
