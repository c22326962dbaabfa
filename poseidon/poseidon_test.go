package poseidon_test

import (
	"testing"

	"github.com/loopring/l2-eddsa-signer/field"
	"github.com/loopring/l2-eddsa-signer/poseidon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIsDeterministic(t *testing.T) {
	in := []field.Element{field.NewElementFromInt64(1), field.NewElementFromInt64(2)}

	a, err := poseidon.SigningHash.Hash(in)
	require.NoError(t, err)
	b, err := poseidon.SigningHash.Hash(in)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestHashDependsOnInputValue(t *testing.T) {
	a, err := poseidon.SigningHash.Hash([]field.Element{field.NewElementFromInt64(1)})
	require.NoError(t, err)
	b, err := poseidon.SigningHash.Hash([]field.Element{field.NewElementFromInt64(2)})
	require.NoError(t, err)

	assert.False(t, a.Equal(b))
}

func TestHashRejectsOversizedInput(t *testing.T) {
	in := make([]field.Element, poseidon.SigningHash.T)
	for i := range in {
		in[i] = field.NewElementFromInt64(int64(i))
	}

	_, err := poseidon.SigningHash.Hash(in)
	assert.Error(t, err)
}

func TestTwoInstancesShapedAsSpecified(t *testing.T) {
	assert.Equal(t, 6, poseidon.SigningHash.T)
	assert.Equal(t, 8, poseidon.SigningHash.NRoundsF)
	assert.Equal(t, 53, poseidon.SigningHash.NRoundsP)

	assert.Equal(t, 5, poseidon.EdDSAChallenge.T)
	assert.Equal(t, 6, poseidon.EdDSAChallenge.NRoundsF)
	assert.Equal(t, 52, poseidon.EdDSAChallenge.NRoundsP)
}

func TestMDSMatrixHasNoZeroDenominatorCollisions(t *testing.T) {
	// Every entry of the Cauchy MDS must have been constructible (no
	// x_i + y_j == 0); build() would have panicked otherwise, so this is
	// really a smoke test that init() completed.
	for i := range poseidon.SigningHash.MDS {
		for _, e := range poseidon.SigningHash.MDS[i] {
			_ = e
		}
	}
}
