package keypair

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"localsolana-initmint/internal/pkg/logger"

	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/goccy/go-json"
	"github.com/mr-tron/base58"
)

// secretKeyLength ed25519 私钥（seed + 公钥）长度
const secretKeyLength = 64

// Source 标记 keypair 的来源
type Source string

const (
	SourceEnv       Source = "env"
	SourceFile      Source = "file"
	SourceGenerated Source = "generated"
)

type Option struct {
	EnvVar  string // base58 私钥所在的环境变量，为空则跳过
	Path    string // keypair 文件路径，支持 ~/ 前缀
	Persist bool   // 生成新 keypair 后是否写入 Path
}

// Load 按 环境变量 → 文件 → 新生成 的顺序取签名账户
func Load(opt Option) (sdktypes.Account, Source, error) {
	if opt.EnvVar != "" {
		if secret := strings.TrimSpace(os.Getenv(opt.EnvVar)); secret != "" {
			account, err := FromBase58(secret)
			if err != nil {
				return sdktypes.Account{}, "", fmt.Errorf("load keypair from env %s: %w", opt.EnvVar, err)
			}
			return account, SourceEnv, nil
		}
	}

	path, err := expandHome(opt.Path)
	if err != nil {
		return sdktypes.Account{}, "", err
	}

	if path != "" {
		account, err := LoadFile(path)
		if err == nil {
			return account, SourceFile, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return sdktypes.Account{}, "", err
		}
	}

	account := sdktypes.NewAccount()
	if opt.Persist && path != "" {
		if err := SaveFile(path, account); err != nil {
			return sdktypes.Account{}, "", err
		}
		logger.Infof("[Keypair] 已生成新 keypair 并写入 %s, pubkey=%s", path, account.PublicKey.ToBase58())
	} else {
		logger.Warnf("[Keypair] 使用临时 keypair, pubkey=%s", account.PublicKey.ToBase58())
	}
	return account, SourceGenerated, nil
}

// FromBase58 解析 base58 编码的 64 字节私钥
func FromBase58(secret string) (sdktypes.Account, error) {
	raw, err := base58.Decode(secret)
	if err != nil {
		return sdktypes.Account{}, fmt.Errorf("decode base58 secret key: %w", err)
	}
	return fromBytes(raw)
}

// LoadFile 读取 Solana CLI 格式（64 个数字的 JSON 数组）的 keypair 文件
func LoadFile(path string) (sdktypes.Account, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return sdktypes.Account{}, fmt.Errorf("read keypair file %s: %w", path, err)
	}

	var ints []int
	if err := json.Unmarshal(content, &ints); err != nil {
		return sdktypes.Account{}, fmt.Errorf("parse keypair file %s: %w", path, err)
	}
	raw := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return sdktypes.Account{}, fmt.Errorf("keypair file %s: byte %d out of range: %d", path, i, v)
		}
		raw[i] = byte(v)
	}

	account, err := fromBytes(raw)
	if err != nil {
		return sdktypes.Account{}, fmt.Errorf("keypair file %s: %w", path, err)
	}
	return account, nil
}

// SaveFile 以 Solana CLI 格式写出 keypair，权限 0600
func SaveFile(path string, account sdktypes.Account) error {
	ints := make([]int, len(account.PrivateKey))
	for i, b := range account.PrivateKey {
		ints[i] = int(b)
	}
	content, err := json.Marshal(ints)
	if err != nil {
		return fmt.Errorf("encode keypair: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create keypair dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write keypair file %s: %w", path, err)
	}
	return nil
}

func fromBytes(raw []byte) (sdktypes.Account, error) {
	if len(raw) != secretKeyLength {
		return sdktypes.Account{}, fmt.Errorf("invalid secret key length: got %d, want %d", len(raw), secretKeyLength)
	}
	account, err := sdktypes.AccountFromBytes(raw)
	if err != nil {
		return sdktypes.Account{}, fmt.Errorf("invalid secret key: %w", err)
	}
	return account, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
