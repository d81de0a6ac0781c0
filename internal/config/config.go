package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pixelity_site/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server      ServerConfig               `yaml:"server"`
	Logging     LoggingConfig              `yaml:"logging"`
	Wallet      WalletProviderConfig       `yaml:"wallet"`
	Networks    []entity.NetworkDefinition `yaml:"networks"`
	Views       ViewsConfig                `yaml:"views"`
	RateLimit   RateLimitConfig            `yaml:"rateLimit"`
	DEXScreener DEXScreenerConfig          `yaml:"dexScreener"`
	PriceSvc    NativePriceServiceConfig   `yaml:"priceService"`
	Swagger     SwaggerConfig              `yaml:"swagger"`
	Site        SiteConfig                 `yaml:"site"`
}

// ServerConfig holds the server-specific configuration.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	ReadTimeout    int      `yaml:"readTimeout"`
	WriteTimeout   int      `yaml:"writeTimeout"` // 0 disables it: connect may wait on the user for a long time
	IdleTimeout    int      `yaml:"idleTimeout"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level       string `yaml:"level"` // e.g., "debug", "info", "warn", "error"
	Development bool   `yaml:"development"`
}

// WalletProviderConfig describes the provider capability. With no RPC URLs the
// provider is absent and every connect fails with ProviderUnavailable.
type WalletProviderConfig struct {
	RPCURLs             []string `yaml:"rpcUrls"`
	ConnectionTimeoutMs int64    `yaml:"connectionTimeoutMs"`
	RPCCallTimeoutMs    int64    `yaml:"rpcCallTimeoutMs"` // 0 means wait indefinitely
	NativeDecimals      uint8    `yaml:"nativeDecimals"`
}

// Available reports whether a provider is configured.
func (w WalletProviderConfig) Available() bool {
	return len(w.RPCURLs) > 0
}

// ViewsConfig controls how long an idle page view is remembered.
type ViewsConfig struct {
	TTLMinutes int `yaml:"ttlMinutes"`
}

// RateLimitConfig limits connect requests across all clients.
type RateLimitConfig struct {
	ConnectPerSecond float64 `yaml:"connectPerSecond"`
	ConnectBurst     int     `yaml:"connectBurst"`
}

// DEXScreenerConfig holds the configuration for the DEX Screener client.
type DEXScreenerConfig struct {
	Enabled              bool   `yaml:"enabled"`
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// NativePriceServiceConfig holds configuration for the native price service.
type NativePriceServiceConfig struct {
	CacheTTLMinutes int `yaml:"cacheTTLMinutes"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`
	SpecFile string `yaml:"specFile"`
}

// SiteConfig is the static copy rendered on the page.
type SiteConfig struct {
	CompanyName  string        `yaml:"companyName"`
	HeroTitle    string        `yaml:"heroTitle"`
	HeroText     string        `yaml:"heroText"`
	About        string        `yaml:"about"`
	Services     []string      `yaml:"services"`
	Projects     []SiteProject `yaml:"projects"`
	Team         []TeamMember  `yaml:"team"`
	ContactEmail string        `yaml:"contactEmail"`
	ContactPhone string        `yaml:"contactPhone"`
	Footer       string        `yaml:"footer"`
}

// SiteProject is one featured project card.
type SiteProject struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TeamMember is one team card.
type TeamMember struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// LoadConfig loads configuration from a YAML file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return parse(data, true)
}

// Parse decodes YAML configuration, applies defaults and validates the result.
// Environment overrides are only applied by LoadConfig.
func Parse(data []byte) (*Config, error) {
	return parse(data, false)
}

func parse(data []byte, withEnv bool) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Errorf("Failed to unmarshal config data: %v", err)
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}
	if withEnv {
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

// Default returns a configuration with every default applied and no provider.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	cfg.Server.Port = strings.TrimPrefix(cfg.Server.Port, ":")
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if !cfg.Wallet.Available() {
		logrus.Warn("wallet.rpcUrls not set: wallet connect will report that no provider is available")
	}
	if cfg.Wallet.ConnectionTimeoutMs == 0 {
		cfg.Wallet.ConnectionTimeoutMs = 10000
	}
	if cfg.Wallet.NativeDecimals == 0 {
		cfg.Wallet.NativeDecimals = 18
	}

	if cfg.Views.TTLMinutes == 0 {
		cfg.Views.TTLMinutes = 30
	}
	if cfg.RateLimit.ConnectPerSecond == 0 {
		cfg.RateLimit.ConnectPerSecond = 5
	}
	if cfg.RateLimit.ConnectBurst == 0 {
		cfg.RateLimit.ConnectBurst = 10
	}

	if cfg.DEXScreener.BaseURL == "" {
		cfg.DEXScreener.BaseURL = "https://api.dexscreener.com"
	}
	if cfg.DEXScreener.RequestTimeoutMillis == 0 {
		cfg.DEXScreener.RequestTimeoutMillis = 10000 // Default to 10 seconds
	}
	if cfg.PriceSvc.CacheTTLMinutes == 0 {
		cfg.PriceSvc.CacheTTLMinutes = 5
	}

	if cfg.Swagger.Path == "" {
		cfg.Swagger.Path = "/swagger"
	}
	if cfg.Swagger.SpecFile == "" {
		cfg.Swagger.SpecFile = "./docs/swagger.yaml"
	}

	cfg.Site.applyDefaults()
}

func (s *SiteConfig) applyDefaults() {
	if s.CompanyName == "" {
		s.CompanyName = "Pixelity Technologies"
	}
	if s.HeroTitle == "" {
		s.HeroTitle = "Empowering the Future with Blockchain"
	}
	if s.HeroText == "" {
		s.HeroText = "Pixelity Technologies is revolutionizing crypto solutions using Bitcoin, blockchain infrastructure, and Web3 integrations for next-gen financial systems."
	}
	if s.About == "" {
		s.About = "Pixelity Technologies is a leading crypto-tech company focused on secure Bitcoin transactions, blockchain-based applications, and decentralized ecosystem development. We are passionate about transforming digital finance for the future."
	}
	if len(s.Services) == 0 {
		s.Services = []string{"Crypto Wallet Integration", "Bitcoin APIs", "Blockchain Audits", "Smart Contracts", "Web3 Integration", "Consulting"}
	}
	if len(s.Projects) == 0 {
		s.Projects = []SiteProject{
			{Title: "Decentralized Voting App", Description: "A secure on-chain voting platform built on Ethereum smart contracts."},
			{Title: "Pixelity Wallet", Description: "A cross-platform wallet for Bitcoin and Ethereum with NFT support."},
		}
	}
	if len(s.Team) == 0 {
		s.Team = []TeamMember{
			{Name: "Ayush Parmar", Role: "Full Stack & Blockchain Developer"},
			{Name: "Riya Shah", Role: "UI/UX Designer"},
			{Name: "Kunal Patel", Role: "Smart Contract Auditor"},
		}
	}
	if s.ContactEmail == "" {
		s.ContactEmail = "contact@pixelity.tech"
	}
	if s.ContactPhone == "" {
		s.ContactPhone = "+91 98765 43210"
	}
	if s.Footer == "" {
		s.Footer = "© 2025 Pixelity Technologies. All rights reserved."
	}
}

// Validate reports configuration that cannot work.
func (cfg *Config) Validate() error {
	var errs []error
	for i, u := range cfg.Wallet.RPCURLs {
		if strings.TrimSpace(u) == "" {
			errs = append(errs, fmt.Errorf("wallet.rpcUrls[%d] is empty", i))
		}
	}
	if cfg.Wallet.RPCCallTimeoutMs < 0 {
		errs = append(errs, errors.New("wallet.rpcCallTimeoutMs must not be negative"))
	}
	for i, n := range cfg.Networks {
		if n.ChainID == 0 {
			errs = append(errs, fmt.Errorf("networks[%d] (%s) has no chainId", i, n.Identifier))
		}
	}
	if cfg.RateLimit.ConnectPerSecond < 0 || cfg.RateLimit.ConnectBurst < 0 {
		errs = append(errs, errors.New("rateLimit values must not be negative"))
	}
	if cfg.Views.TTLMinutes < 0 {
		errs = append(errs, errors.New("views.ttlMinutes must not be negative"))
	}
	return errors.Join(errs...)
}
