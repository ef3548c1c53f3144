package svc

import (
	"localsolana-initmint/internal/config"
	"localsolana-initmint/internal/keypair"
	"localsolana-initmint/internal/pkg/logger"
	"localsolana-initmint/internal/service"

	"github.com/blocto/solana-go-sdk/client"
	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// ServiceContext 包含一次运行所需的资源
type ServiceContext struct {
	Config config.InitConfig
	Client service.RpcClient
	Signer sdktypes.Account
}

// NewServiceContext 创建 RPC 客户端并加载签名账户
func NewServiceContext(c config.InitConfig) (*ServiceContext, error) {
	// 1. 初始化 Solana RPC 客户端
	rpcClient := client.NewClient(c.RpcConf.Endpoint)

	// 2. 加载签名账户
	signer, source, err := keypair.Load(c.KeypairConf.ToKeypairOption())
	if err != nil {
		logger.Errorf("keypair 加载失败: %v", err)
		return nil, err
	}

	logger.Infof("服务上下文初始化完成, endpoint=%s signer=%s (%s)", c.RpcConf.Endpoint, signer.PublicKey.ToBase58(), source)
	return &ServiceContext{
		Config: c,
		Client: rpcClient,
		Signer: signer,
	}, nil
}
