package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"localsolana-initmint/internal/config"
	"localsolana-initmint/internal/pkg/logger"
	"localsolana-initmint/internal/service"
	"localsolana-initmint/internal/svc"
	"localsolana-initmint/internal/tools"
)

var configFile = flag.String("f", "etc/initmint.yaml", "the config file")

func main() {
	flag.Parse()
	os.Exit(run(*configFile, os.Stdout, os.Stderr))
}

func run(path string, stdout, stderr io.Writer) int {
	c, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, c.RpcConf.Timeout())
	defer cancel()

	return execute(ctx, serviceContext, stdout, stderr)
}

// execute 执行一次 InitializeMint，成功打印浏览器链接返回 0，任何错误返回 1
func execute(ctx context.Context, serviceContext *svc.ServiceContext, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			fmt.Fprintf(stderr, "Error: panic: %v\n", r)
			code = 1
		}
	}()

	c := serviceContext.Config
	initializer, err := service.NewInitializer(&c, serviceContext.Client, serviceContext.Signer)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	signature, err := initializer.Run(ctx)
	if err != nil {
		logger.Errorf("[InitMint] 提交失败: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	customURL := c.ExplorerConf.CustomURL
	if customURL == "" {
		customURL = c.RpcConf.Endpoint
	}
	fmt.Fprintf(stdout, "Transaction: %s\n", tools.ExplorerTxURL(c.ExplorerConf.BaseURL, signature, c.ExplorerConf.Cluster, customURL))
	return 0
}
