package keygen_test

import (
	"testing"

	"github.com/loopring/l2-eddsa-signer/keygen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalSignature = "0xf8214f068c55d1bebf1fbefced91eba5f4bbe14315e1ad71f61f21e094f5853a12eba239aeaa77538ae458eebe49ca2b732d211bf0943095b3502a3b0e6a08cd1c"

func TestGenerateL2KeysCanonicalVector(t *testing.T) {
	keys, err := keygen.GenerateL2Keys(canonicalSignature)
	require.NoError(t, err)

	assert.Equal(t, "0x001fa186947c8c644cd11078f67e0bb21656432f55c4df76997b6acab2abda7f", keys.PrivateKeyHex())
	assert.Equal(t, "0x29d178cdd6a40cd900c41565b6057a1d12c00a8c41ad367e2fe0100aab00fbe3", keys.PublicKeyXHex())
	assert.Equal(t, "0x29e339a045af33d5729eab3b64c617e6a78dcfd0988f95f215d443d77a864b9c", keys.PublicKeyYHex())
}

func TestGenerateL2KeysIsDeterministic(t *testing.T) {
	k1, err := keygen.GenerateL2Keys(canonicalSignature)
	require.NoError(t, err)
	k2, err := keygen.GenerateL2Keys(canonicalSignature)
	require.NoError(t, err)

	assert.Equal(t, k1.PrivateKeyHex(), k2.PrivateKeyHex())
	assert.Equal(t, k1.PublicKeyXHex(), k2.PublicKeyXHex())
	assert.Equal(t, k1.PublicKeyYHex(), k2.PublicKeyYHex())
}

func TestGenerateL2KeysRejectsWrongLength(t *testing.T) {
	_, err := keygen.GenerateL2Keys("0x1234")
	assert.Error(t, err)
}

func TestGenerateL2KeysRejectsNonHex(t *testing.T) {
	_, err := keygen.GenerateL2Keys("not-hex")
	assert.Error(t, err)
}
