package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/app/service"
	"pixelity_site/internal/config"
	"pixelity_site/internal/domain/entity"
	clientprovider "pixelity_site/internal/infrastructure/network/client"
	networkdefinition "pixelity_site/internal/infrastructure/network/definition"
	"pixelity_site/internal/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
)

// Коды выхода по видам ошибок подключения.
const (
	exitOK                  = 0
	exitFailure             = 1
	exitProviderUnavailable = 2
	exitUserRejected        = 3
	exitQueryFailed         = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := flag.String("config", "config/config.yml", "path to the YAML configuration file")
	rpcURL := flag.String("rpc", "", "wallet RPC endpoint; overrides wallet.rpcUrls from the config")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return exitFailure
	}
	if *rpcURL != "" {
		cfg.Wallet.RPCURLs = []string{*rpcURL}
	}

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize zap logger: %v\n", err)
		return exitFailure
	}
	defer zapLogger.Sync()

	slogLevel, ok := logger.ParseLevel(cfg.Logging.Level)
	if !ok {
		slogLevel = slog.LevelInfo
	}
	logger.Init(slogzap.Option{Level: slogLevel, Logger: zapLogger}.NewZapHandler())
	appLogger := logger.NewSlogAdapter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	netDefProvider := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Networks)

	var walletProvider port.WalletProvider
	if cfg.Wallet.Available() {
		evmProvider := clientprovider.NewEVMClientProvider(
			cfg.Wallet.RPCURLs,
			netDefProvider,
			time.Duration(cfg.Wallet.ConnectionTimeoutMs)*time.Millisecond,
			time.Duration(cfg.Wallet.RPCCallTimeoutMs)*time.Millisecond,
			appLogger,
		)
		defer evmProvider.Close()
		walletProvider = evmProvider
	}

	logger.Debug("Running one-shot connect", "providerConfigured", walletProvider != nil)
	connector := service.NewWalletConnector(walletProvider, cfg.Wallet.NativeDecimals, appLogger)
	info, err := connector.Connect(ctx)
	if err != nil {
		kind := entity.ConnectionErrorKindOf(err)
		if kind == entity.KindProviderUnavailable {
			fmt.Fprintln(os.Stderr, entity.ProviderUnavailableMessage)
		} else {
			fmt.Fprintf(os.Stderr, "connect failed: %v\n", err)
		}
		return exitCodeFor(kind)
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(info, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		return exitFailure
	}
	fmt.Println(string(out))
	return exitOK
}

func exitCodeFor(kind entity.ConnectionErrorKind) int {
	switch kind {
	case entity.KindProviderUnavailable:
		return exitProviderUnavailable
	case entity.KindUserRejected:
		return exitUserRejected
	case entity.KindQueryFailed:
		return exitQueryFailed
	default:
		return exitFailure
	}
}
