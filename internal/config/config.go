package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"localsolana-initmint/internal/keypair"
	"localsolana-initmint/internal/pkg/logger"

	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/zeromicro/go-zero/core/conf"
	"gopkg.in/yaml.v3"
)

// 默认值写在 json tag 中，由 conf.FillDefault 填充；yaml tag 对应配置文件字段

type LogConfig struct {
	Format   string `yaml:"format" json:",default=console"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `yaml:"log_dir" json:",optional"`       // 日志目录，为空时只输出到 stderr
	Level    string `yaml:"level" json:",default=info"`     // 日志级别：debug / info / warn / error
	Compress bool   `yaml:"compress" json:",optional"`      // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// RpcConfig 节点连接与确认策略
type RpcConfig struct {
	Endpoint          string `yaml:"endpoint" json:",default=http://127.0.0.1:8899"` // JSON-RPC 地址
	Commitment        string `yaml:"commitment" json:",default=confirmed"`           // 等待的确认级别：processed / confirmed / finalized
	TimeoutSec        int    `yaml:"timeout_sec" json:",default=60"`                 // 整个流程的超时（秒）
	ConfirmTimeoutSec int    `yaml:"confirm_timeout_sec" json:",default=30"`         // 单笔交易等待确认的超时（秒）
	PollIntervalMs    int    `yaml:"poll_interval_ms" json:",default=500"`           // 查询签名状态的间隔（毫秒）
}

func (c *RpcConfig) ToCommitment() (rpc.Commitment, error) {
	switch rpc.Commitment(c.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return rpc.Commitment(c.Commitment), nil
	default:
		return "", fmt.Errorf("unsupported commitment %q", c.Commitment)
	}
}

func (c *RpcConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

func (c *RpcConfig) ConfirmTimeout() time.Duration {
	return time.Duration(c.ConfirmTimeoutSec) * time.Second
}

func (c *RpcConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// KeypairConfig 签名账户来源
type KeypairConfig struct {
	EnvVar  string `yaml:"env_var" json:",default=PRIVATE_KEY"` // base58 私钥所在的环境变量
	Path    string `yaml:"path" json:",default=keypair.json"`   // Solana CLI 格式的 keypair 文件
	Persist bool   `yaml:"persist" json:",default=true"`        // 新生成的 keypair 是否写入 Path
}

func (c *KeypairConfig) ToKeypairOption() keypair.Option {
	return keypair.Option{
		EnvVar:  c.EnvVar,
		Path:    c.Path,
		Persist: c.Persist,
	}
}

// AirdropConfig 余额不足时自动领取测试币
type AirdropConfig struct {
	Enabled            bool   `yaml:"enabled" json:",default=true"`
	MinBalanceLamports uint64 `yaml:"min_balance_lamports" json:",default=500000000"` // 低于该余额触发 airdrop
	Lamports           uint64 `yaml:"lamports" json:",default=1000000000"`            // 单次 airdrop 数量
}

// ExplorerConfig 成功后打印的浏览器链接
type ExplorerConfig struct {
	BaseURL   string `yaml:"base_url" json:",default=https://explorer.solana.com"`
	Cluster   string `yaml:"cluster" json:",default=custom"` // devnet / testnet / custom
	CustomURL string `yaml:"custom_url" json:",optional"`    // cluster=custom 时使用，为空则取 rpc.endpoint
}

// InitConfig 是主配置结构体，驱动一次 InitializeMint 提交
type InitConfig struct {
	LogConf      LogConfig      `yaml:"logger"`   // 日志配置
	RpcConf      RpcConfig      `yaml:"rpc"`      // 节点配置
	KeypairConf  KeypairConfig  `yaml:"keypair"`  // 签名账户配置
	AirdropConf  AirdropConfig  `yaml:"airdrop"`  // airdrop 配置
	ExplorerConf ExplorerConfig `yaml:"explorer"` // 浏览器链接配置

	ProgramID string `yaml:"program_id" json:",default=4QPCBtQ1qSwTmUy9yrGZoqCjZPen8eCE2HcHtKeNWYj6"` // 目标程序地址
}

// Load 先填默认值，再用配置文件覆盖；文件不存在时直接使用默认值
func Load(path string) (InitConfig, error) {
	c, err := defaultConfig()
	if err != nil {
		return InitConfig{}, err
	}
	if path == "" {
		return c, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return InitConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &c); err != nil {
		return InitConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return InitConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// defaultConfig FillDefault 不会递归进入嵌套结构体，每一段单独填充后再组装
func defaultConfig() (InitConfig, error) {
	var c InitConfig
	if err := conf.FillDefault(&c); err != nil {
		return InitConfig{}, fmt.Errorf("fill default config: %w", err)
	}

	var err error
	if c.LogConf, err = fillSection[LogConfig](); err != nil {
		return InitConfig{}, err
	}
	if c.RpcConf, err = fillSection[RpcConfig](); err != nil {
		return InitConfig{}, err
	}
	if c.KeypairConf, err = fillSection[KeypairConfig](); err != nil {
		return InitConfig{}, err
	}
	if c.AirdropConf, err = fillSection[AirdropConfig](); err != nil {
		return InitConfig{}, err
	}
	if c.ExplorerConf, err = fillSection[ExplorerConfig](); err != nil {
		return InitConfig{}, err
	}
	return c, nil
}

func fillSection[T any]() (T, error) {
	var section T
	if err := conf.FillDefault(&section); err != nil {
		return section, fmt.Errorf("fill default %T: %w", section, err)
	}
	return section, nil
}

func (c *InitConfig) Validate() error {
	if c.ProgramID == "" {
		return errors.New("program_id is empty")
	}
	if c.RpcConf.Endpoint == "" {
		return errors.New("rpc.endpoint is empty")
	}
	if _, err := c.RpcConf.ToCommitment(); err != nil {
		return err
	}
	if c.RpcConf.PollIntervalMs <= 0 || c.RpcConf.ConfirmTimeoutSec <= 0 || c.RpcConf.TimeoutSec <= 0 {
		return errors.New("rpc timeouts must be positive")
	}
	return nil
}
