package types

import (
	"testing"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryPubkeyFromBase58(t *testing.T) {
	p, err := TryPubkeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	require.NoError(t, err)
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", p.String())
	assert.Equal(t, common.TokenProgramID, p.ToPublicKey())
	assert.True(t, p.Equals(PubkeyFromPublicKey(common.TokenProgramID)))

	_, err = TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)

	// 合法 base58 但长度不足 32 字节
	_, err = TryPubkeyFromBase58("1111")
	assert.Error(t, err)
}

func TestPubkeyFromBase58_Panics(t *testing.T) {
	assert.Panics(t, func() { PubkeyFromBase58("not-a-key") })
	assert.True(t, PubkeyFromBase58("11111111111111111111111111111111").IsZero())
}
