package txbuilder

import (
	"errors"
	"fmt"

	sdktypes "github.com/blocto/solana-go-sdk/types"
)

var ErrEmptyBlockhash = errors.New("recent blockhash is empty")

// BuildSignedTransaction 把单条指令包成一笔交易，signer 同时作为 fee payer 签名
func BuildSignedTransaction(signer sdktypes.Account, ix sdktypes.Instruction, recentBlockhash string) (sdktypes.Transaction, error) {
	if recentBlockhash == "" {
		return sdktypes.Transaction{}, ErrEmptyBlockhash
	}

	msg := sdktypes.NewMessage(sdktypes.NewMessageParam{
		FeePayer:        signer.PublicKey,
		RecentBlockhash: recentBlockhash,
		Instructions:    []sdktypes.Instruction{ix},
	})

	tx, err := sdktypes.NewTransaction(sdktypes.NewTransactionParam{
		Message: msg,
		Signers: []sdktypes.Account{signer},
	})
	if err != nil {
		return sdktypes.Transaction{}, fmt.Errorf("sign transaction failed: %w", err)
	}
	return tx, nil
}
