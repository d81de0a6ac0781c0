package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/app/service"
	"pixelity_site/internal/app/view"
	dex_client "pixelity_site/internal/client"
	"pixelity_site/internal/config"
	clientprovider "pixelity_site/internal/infrastructure/network/client"
	networkdefinition "pixelity_site/internal/infrastructure/network/definition"
	"pixelity_site/internal/infrastructure/restapi"
	"pixelity_site/internal/pkg/logger"
	"pixelity_site/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"golang.org/x/time/rate"
)

const defaultConfigPath = "config/config.yml"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := newZapLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	// slog поверх ядра zap, чтобы port.Logger и zap писали в один поток.
	logger.Init(zapslog.NewHandler(zapLogger.Core()))
	appLogger := logger.NewSlogAdapter()
	logger.Info("Configuration loaded", "path", cfgPath)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.MustRegisterMetrics()

	netDefProvider := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Networks)

	// A nil provider is the "no wallet installed" case, not a typed nil.
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
		appLogger.Info("Wallet provider configured", "rpcUrls", len(cfg.Wallet.RPCURLs))
	} else {
		logger.Warn("No wallet provider configured; connect requests will report ProviderUnavailable")
	}

	connector := service.NewWalletConnector(walletProvider, cfg.Wallet.NativeDecimals, appLogger)
	registry := view.NewRegistry(connector, time.Duration(cfg.Views.TTLMinutes)*time.Minute, appLogger)

	var priceService port.NativePriceService
	if cfg.DEXScreener.Enabled {
		dexClient := dex_client.NewDEXScreenerClient(
			cfg.DEXScreener.BaseURL,
			time.Duration(cfg.DEXScreener.RequestTimeoutMillis)*time.Millisecond,
			zapLogger,
			0,
		)
		priceService = service.NewNativePriceService(
			netDefProvider,
			dexClient,
			time.Duration(cfg.PriceSvc.CacheTTLMinutes)*time.Minute,
			appLogger,
		)
		appLogger.Info("Native price service enabled", "baseURL", cfg.DEXScreener.BaseURL)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit.ConnectPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.ConnectPerSecond), cfg.RateLimit.ConnectBurst)
	}

	walletHandler := restapi.NewWalletHandler(registry, netDefProvider, priceService, limiter, appLogger)
	pageHandler := restapi.NewPageHandler(registry, cfg.Site)
	router, err := restapi.SetupRouter(cfg, walletHandler, pageHandler, zapLogger)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}
	if cfg.Swagger.Enabled {
		zapLogger.Info("Swagger UI enabled", zap.String("path", cfg.Swagger.Path+"/index.html"))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}

func newZapLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = level
	return zapCfg.Build()
}
