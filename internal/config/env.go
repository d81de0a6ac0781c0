package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment override, e.g. PIXELITY_WALLET_RPC_URLS.
const EnvPrefix = "PIXELITY"

// envOverrides are the settings most often changed per deployment.
// envconfig also falls back to the unprefixed name (PORT, LOG_LEVEL, ...).
type envOverrides struct {
	Port               string   `envconfig:"PORT"`
	LogLevel           string   `envconfig:"LOG_LEVEL"`
	WalletRPCURLs      []string `envconfig:"WALLET_RPC_URLS"`
	DEXScreenerEnabled *bool    `envconfig:"DEXSCREENER_ENABLED"`
	SwaggerEnabled     *bool    `envconfig:"SWAGGER_ENABLED"`
}

func (cfg *Config) applyEnv() error {
	var o envOverrides
	if err := envconfig.Process(EnvPrefix, &o); err != nil {
		return fmt.Errorf("failed to process environment overrides: %w", err)
	}
	if o.Port != "" {
		cfg.Server.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
	if len(o.WalletRPCURLs) > 0 {
		logrus.Infof("Wallet RPC URLs overridden from environment (%d)", len(o.WalletRPCURLs))
		cfg.Wallet.RPCURLs = o.WalletRPCURLs
	}
	if o.DEXScreenerEnabled != nil {
		cfg.DEXScreener.Enabled = *o.DEXScreenerEnabled
	}
	if o.SwaggerEnabled != nil {
		cfg.Swagger.Enabled = *o.SwaggerEnabled
	}
	return nil
}
