package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"localsolana-initmint/internal/config"
	"localsolana-initmint/internal/consts"
	"localsolana-initmint/internal/logic/instruction"

	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBlockhash = "EkSnNWid2cvwEVnVx9aBqawnmiCNiDgp3gUdkDPTKN1N"

// fakeClient 按脚本返回结果的 RpcClient
type fakeClient struct {
	balance    uint64
	sendErr    error
	statusErr  error
	statuses   []*rpc.SignatureStatus // 依次返回，用完后重复最后一个
	statusCall int

	sent      []sdktypes.Transaction
	airdrops  []uint64
	lastQuery string
}

func (f *fakeClient) GetLatestBlockhash(ctx context.Context) (rpc.GetLatestBlockhashValue, error) {
	return rpc.GetLatestBlockhashValue{Blockhash: testBlockhash, LatestValidBlockHeight: 100}, nil
}

func (f *fakeClient) GetBalance(ctx context.Context, base58Addr string) (uint64, error) {
	return f.balance, nil
}

func (f *fakeClient) RequestAirdrop(ctx context.Context, base58Addr string, lamports uint64) (string, error) {
	f.airdrops = append(f.airdrops, lamports)
	f.balance += lamports
	return "airdrop-sig", nil
}

func (f *fakeClient) SendTransaction(ctx context.Context, tx sdktypes.Transaction) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, tx)
	return "tx-sig", nil
}

func (f *fakeClient) GetSignatureStatus(ctx context.Context, signature string) (*rpc.SignatureStatus, error) {
	f.lastQuery = signature
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	if len(f.statuses) == 0 {
		return nil, nil
	}
	idx := f.statusCall
	if idx >= len(f.statuses) {
		idx = len(f.statuses) - 1
	}
	f.statusCall++
	return f.statuses[idx], nil
}

func status(c rpc.Commitment) *rpc.SignatureStatus {
	return &rpc.SignatureStatus{Slot: 1, ConfirmationStatus: &c}
}

func newTestConfig(t *testing.T) *config.InitConfig {
	c, err := config.Load("")
	require.NoError(t, err)
	c.RpcConf.PollIntervalMs = 1
	c.RpcConf.ConfirmTimeoutSec = 1
	return &c
}

func TestInitializer_Run(t *testing.T) {
	c := newTestConfig(t)
	fc := &fakeClient{
		balance:  2 * consts.LamportsPerSOL,
		statuses: []*rpc.SignatureStatus{nil, status(rpc.CommitmentProcessed), status(rpc.CommitmentConfirmed)},
	}
	signer := sdktypes.NewAccount()

	s, err := NewInitializer(c, fc, signer)
	require.NoError(t, err)

	sig, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tx-sig", sig)
	assert.Equal(t, "tx-sig", fc.lastQuery)
	assert.Empty(t, fc.airdrops)

	require.Len(t, fc.sent, 1)
	tx := fc.sent[0]
	require.Len(t, tx.Message.Instructions, 1)
	assert.Equal(t, []byte{3}, tx.Message.Instructions[0].Data)
	assert.Equal(t, signer.PublicKey, tx.Message.Accounts[0])

	accounts, err := instruction.DeriveMintAccounts(consts.MovieReviewProgram)
	require.NoError(t, err)
	assert.Contains(t, tx.Message.Accounts, accounts.TokenMint.ToPublicKey())
	assert.Contains(t, tx.Message.Accounts, accounts.TokenAuth.ToPublicKey())
}

func TestInitializer_AirdropWhenLowBalance(t *testing.T) {
	c := newTestConfig(t)
	fc := &fakeClient{statuses: []*rpc.SignatureStatus{status(rpc.CommitmentFinalized)}}

	s, err := NewInitializer(c, fc, sdktypes.NewAccount())
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{c.AirdropConf.Lamports}, fc.airdrops)
}

func TestInitializer_SendFailure(t *testing.T) {
	c := newTestConfig(t)
	c.AirdropConf.Enabled = false
	sendErr := errors.New("connection refused")
	fc := &fakeClient{sendErr: sendErr}

	s, err := NewInitializer(c, fc, sdktypes.NewAccount())
	require.NoError(t, err)

	sig, err := s.Run(context.Background())
	assert.ErrorIs(t, err, sendErr)
	assert.Empty(t, sig)
}

func TestInitializer_TransactionError(t *testing.T) {
	c := newTestConfig(t)
	c.AirdropConf.Enabled = false
	failed := status(rpc.CommitmentConfirmed)
	failed.Err = map[string]any{"InstructionError": []any{0, "InvalidArgument"}}
	fc := &fakeClient{statuses: []*rpc.SignatureStatus{failed}}

	s, err := NewInitializer(c, fc, sdktypes.NewAccount())
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	assert.ErrorIs(t, err, ErrTransactionFailed)
}

func TestNewInitializer_InvalidProgramID(t *testing.T) {
	c := newTestConfig(t)
	c.ProgramID = "not-base58-0OIl"
	_, err := NewInitializer(c, &fakeClient{}, sdktypes.NewAccount())
	assert.Error(t, err)
}

func TestWaitForConfirmation_Timeout(t *testing.T) {
	fc := &fakeClient{statuses: []*rpc.SignatureStatus{status(rpc.CommitmentProcessed)}}

	err := waitForConfirmation(context.Background(), fc, "sig", rpc.CommitmentFinalized, time.Millisecond, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrConfirmTimeout)
}

func TestWaitForConfirmation_Canceled(t *testing.T) {
	fc := &fakeClient{statuses: []*rpc.SignatureStatus{status(rpc.CommitmentProcessed)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := waitForConfirmation(ctx, fc, "sig", rpc.CommitmentFinalized, time.Millisecond, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrConfirmTimeout)
}

func TestWaitForConfirmation_RpcError(t *testing.T) {
	rpcErr := errors.New("node unhealthy")
	fc := &fakeClient{statusErr: rpcErr}

	err := waitForConfirmation(context.Background(), fc, "sig", rpc.CommitmentConfirmed, time.Millisecond, time.Second)
	assert.ErrorIs(t, err, rpcErr)
}

func TestReached(t *testing.T) {
	assert.False(t, reached(nil, rpc.CommitmentProcessed))
	assert.False(t, reached(&rpc.SignatureStatus{}, rpc.CommitmentProcessed))
	assert.True(t, reached(status(rpc.CommitmentConfirmed), rpc.CommitmentProcessed))
	assert.True(t, reached(status(rpc.CommitmentConfirmed), rpc.CommitmentConfirmed))
	assert.False(t, reached(status(rpc.CommitmentConfirmed), rpc.CommitmentFinalized))
}
