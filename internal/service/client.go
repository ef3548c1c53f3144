package service

import (
	"context"

	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// RpcClient 本服务用到的节点接口，*client.Client 直接满足
type RpcClient interface {
	GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error)
	GetBalance(ctx context.Context, base58Addr string) (uint64, error)
	RequestAirdrop(ctx context.Context, base58Addr string, lamports uint64) (string, error)
	SendTransaction(ctx context.Context, tx sdktypes.Transaction) (string, error)
	GetSignatureStatus(ctx context.Context, signature string) (*rpc.SignatureStatus, error)
}
