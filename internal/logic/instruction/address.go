package instruction

import (
	"fmt"

	"localsolana-initmint/internal/types"

	"github.com/blocto/solana-go-sdk/common"
)

var (
	TokenMintSeed = []byte("token_mint")
	TokenAuthSeed = []byte("token_auth")
)

// DeriveAddress 由 (programID, seed) 推导 PDA，纯函数，不依赖私钥
func DeriveAddress(programID types.Pubkey, seed []byte) (types.Pubkey, uint8, error) {
	pda, bump, err := common.FindProgramAddress([][]byte{seed}, programID.ToPublicKey())
	if err != nil {
		return types.Pubkey{}, 0, fmt.Errorf("derive address failed: program=%s seed=%q: %w", programID, seed, err)
	}
	return types.PubkeyFromPublicKey(pda), bump, nil
}

// MintAccounts InitializeMint 用到的两个 PDA
type MintAccounts struct {
	TokenMint     types.Pubkey
	TokenMintBump uint8
	TokenAuth     types.Pubkey
	TokenAuthBump uint8
}

func DeriveMintAccounts(programID types.Pubkey) (MintAccounts, error) {
	mint, mintBump, err := DeriveAddress(programID, TokenMintSeed)
	if err != nil {
		return MintAccounts{}, err
	}
	auth, authBump, err := DeriveAddress(programID, TokenAuthSeed)
	if err != nil {
		return MintAccounts{}, err
	}
	return MintAccounts{
		TokenMint:     mint,
		TokenMintBump: mintBump,
		TokenAuth:     auth,
		TokenAuthBump: authBump,
	}, nil
}
