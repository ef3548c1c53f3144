package instruction

import (
	"fmt"

	"localsolana-initmint/internal/consts"
	"localsolana-initmint/internal/types"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/near/borsh-go"
)

// InitializeMintAccountCount InitializeMint 指令固定的账户数量
const InitializeMintAccountCount = 6

type initializeMintData struct {
	Kind Kind
}

// EncodeInitializeMintData InitializeMint 没有参数，编码结果只有枚举下标一个字节
func EncodeInitializeMintData() ([]byte, error) {
	data, err := borsh.Serialize(initializeMintData{Kind: KindInitializeMint})
	if err != nil {
		return nil, fmt.Errorf("encode %s data: %w", KindInitializeMint, err)
	}
	return data, nil
}

// NewInitializeMint 构造 InitializeMint 指令
//
// Layout: [signer, tokenMint, tokenAuth, systemProgram, tokenProgram, rentSysvar]
func NewInitializeMint(signer, programID types.Pubkey) (sdktypes.Instruction, error) {
	accounts, err := DeriveMintAccounts(programID)
	if err != nil {
		return sdktypes.Instruction{}, err
	}
	data, err := EncodeInitializeMintData()
	if err != nil {
		return sdktypes.Instruction{}, err
	}

	return sdktypes.Instruction{
		ProgramID: programID.ToPublicKey(),
		Accounts: []sdktypes.AccountMeta{
			{PubKey: signer.ToPublicKey(), IsSigner: true, IsWritable: false},
			{PubKey: accounts.TokenMint.ToPublicKey(), IsSigner: false, IsWritable: true},
			{PubKey: accounts.TokenAuth.ToPublicKey(), IsSigner: false, IsWritable: false},
			{PubKey: consts.SystemProgram.ToPublicKey(), IsSigner: false, IsWritable: false},
			{PubKey: consts.TokenProgram.ToPublicKey(), IsSigner: false, IsWritable: false},
			{PubKey: consts.RentSysvar.ToPublicKey(), IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}
