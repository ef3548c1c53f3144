package service

import (
	"context"
	"fmt"
	"time"

	"localsolana-initmint/internal/config"
	"localsolana-initmint/internal/consts"
	"localsolana-initmint/internal/logic/instruction"
	"localsolana-initmint/internal/logic/txbuilder"
	"localsolana-initmint/internal/pkg/logger"
	"localsolana-initmint/internal/types"

	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// Initializer 向目标程序提交一笔 InitializeMint 交易
type Initializer struct {
	client         RpcClient
	signer         sdktypes.Account
	programID      types.Pubkey
	commitment     rpc.Commitment
	pollInterval   time.Duration
	confirmTimeout time.Duration
	airdrop        config.AirdropConfig
}

func NewInitializer(c *config.InitConfig, client RpcClient, signer sdktypes.Account) (*Initializer, error) {
	programID, err := types.TryPubkeyFromBase58(c.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("invalid program_id: %w", err)
	}
	commitment, err := c.RpcConf.ToCommitment()
	if err != nil {
		return nil, err
	}
	return &Initializer{
		client:         client,
		signer:         signer,
		programID:      programID,
		commitment:     commitment,
		pollInterval:   c.RpcConf.PollInterval(),
		confirmTimeout: c.RpcConf.ConfirmTimeout(),
		airdrop:        c.AirdropConf,
	}, nil
}

func (s *Initializer) Signer() types.Pubkey {
	return types.PubkeyFromPublicKey(s.signer.PublicKey)
}

// Run 推导地址 → 构造指令 → 组装签名 → 发送 → 等待确认，返回交易签名
func (s *Initializer) Run(ctx context.Context) (string, error) {
	if err := s.ensureFunds(ctx); err != nil {
		return "", err
	}

	ix, err := instruction.NewInitializeMint(s.Signer(), s.programID)
	if err != nil {
		return "", err
	}
	logger.Infof("[Initializer] program=%s token_mint=%s token_auth=%s",
		s.programID, ix.Accounts[1].PubKey.ToBase58(), ix.Accounts[2].PubKey.ToBase58())

	blockhash, err := s.client.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("GetLatestBlockhash failed: %w", err)
	}

	tx, err := txbuilder.BuildSignedTransaction(s.signer, ix, blockhash.Blockhash)
	if err != nil {
		return "", err
	}

	start := time.Now()
	signature, err := s.client.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("SendTransaction failed: %w", err)
	}
	logger.Infof("[Initializer] 交易已发送, signature=%s", signature)

	if err := waitForConfirmation(ctx, s.client, signature, s.commitment, s.pollInterval, s.confirmTimeout); err != nil {
		return "", err
	}
	logger.Infof("[Initializer] 交易已确认 (%s), 耗时: %v", s.commitment, time.Since(start))
	return signature, nil
}

// ensureFunds 余额低于阈值时 airdrop 一次，不重试
func (s *Initializer) ensureFunds(ctx context.Context) error {
	if !s.airdrop.Enabled {
		return nil
	}

	addr := s.signer.PublicKey.ToBase58()
	balance, err := s.client.GetBalance(ctx, addr)
	if err != nil {
		return fmt.Errorf("GetBalance failed: %w", err)
	}
	logger.Infof("[Initializer] signer=%s 余额: %.4f SOL", addr, float64(balance)/float64(consts.LamportsPerSOL))
	if balance >= s.airdrop.MinBalanceLamports {
		return nil
	}

	signature, err := s.client.RequestAirdrop(ctx, addr, s.airdrop.Lamports)
	if err != nil {
		return fmt.Errorf("RequestAirdrop failed: %w", err)
	}
	if err := waitForConfirmation(ctx, s.client, signature, s.commitment, s.pollInterval, s.confirmTimeout); err != nil {
		return fmt.Errorf("airdrop not confirmed: %w", err)
	}
	logger.Infof("[Initializer] airdrop %.4f SOL 完成, signature=%s", float64(s.airdrop.Lamports)/float64(consts.LamportsPerSOL), signature)
	return nil
}
