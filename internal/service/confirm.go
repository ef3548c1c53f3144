package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localsolana-initmint/internal/pkg/logger"

	"github.com/blocto/solana-go-sdk/rpc"
)

var (
	ErrConfirmTimeout    = errors.New("transaction confirmation timeout")
	ErrTransactionFailed = errors.New("transaction failed")
)

func commitmentRank(c rpc.Commitment) int {
	switch c {
	case rpc.CommitmentProcessed:
		return 1
	case rpc.CommitmentConfirmed:
		return 2
	case rpc.CommitmentFinalized:
		return 3
	default:
		return 0
	}
}

// reached 判断签名状态是否已达到目标确认级别
func reached(status *rpc.SignatureStatus, target rpc.Commitment) bool {
	if status == nil || status.ConfirmationStatus == nil {
		return false
	}
	return commitmentRank(*status.ConfirmationStatus) >= commitmentRank(target)
}

// waitForConfirmation 轮询签名状态直到达到 target、链上报错或超时
func waitForConfirmation(ctx context.Context, c RpcClient, signature string, target rpc.Commitment, interval, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		status, err := c.GetSignatureStatus(ctx, signature)
		if err != nil {
			if ctx.Err() != nil {
				return contextError(ctx, signature, start)
			}
			return fmt.Errorf("GetSignatureStatus failed: signature=%s: %w", signature, err)
		}
		if status != nil && status.Err != nil {
			return fmt.Errorf("%w: signature=%s err=%v", ErrTransactionFailed, signature, status.Err)
		}
		if reached(status, target) {
			logger.Debugf("[Confirm] %s 已达到 %s, slot=%d, 耗时: %v", signature, target, status.Slot, time.Since(start))
			return nil
		}

		select {
		case <-ctx.Done():
			return contextError(ctx, signature, start)
		case <-ticker.C:
		}
	}
}

// contextError 只有超时才算 ErrConfirmTimeout，外部取消（如 SIGINT）原样返回
func contextError(ctx context.Context, signature string, start time.Time) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: signature=%s after %v", ErrConfirmTimeout, signature, time.Since(start))
	}
	return fmt.Errorf("wait for confirmation canceled: signature=%s: %w", signature, ctx.Err())
}
