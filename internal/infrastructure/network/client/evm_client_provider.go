package client

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"pixelity_site/internal/app/port"
)

const (
	defaultProviderConnectionTimeout = 10 * time.Second
)

// EVMClientProvider implements port.WalletProvider by dialing the configured endpoint
// on first use and reusing the connection afterwards. A failed dial is not cached,
// so the next connect tries again.
type EVMClientProvider struct {
	rpcURLs           []string
	networks          ChainNamer
	logger            port.Logger
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration

	mu     sync.Mutex
	client *EVMWalletProvider
}

// NewEVMClientProvider creates a lazily dialing provider for rpcURLs (primary first).
func NewEVMClientProvider(rpcURLs []string, networks ChainNamer, connectionTimeout, rpcCallTimeout time.Duration, l port.Logger) *EVMClientProvider {
	if connectionTimeout <= 0 {
		connectionTimeout = defaultProviderConnectionTimeout
	}
	return &EVMClientProvider{
		rpcURLs:           rpcURLs,
		networks:          networks,
		logger:            l.With("component", "evm_client_provider"),
		connectionTimeout: connectionTimeout,
		rpcCallTimeout:    rpcCallTimeout,
	}
}

// GetClient returns the cached client, dialing it if needed.
func (p *EVMClientProvider) GetClient(ctx context.Context) (*EVMWalletProvider, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if len(p.rpcURLs) == 0 {
		return nil, fmt.Errorf("failed to dial wallet provider: no RPC URLs configured")
	}

	p.logger.Info("Dialing wallet provider", "rpc_primary", p.rpcURLs[0], "fallbacks", len(p.rpcURLs)-1)
	c, err := DialEVMWalletProvider(ctx, p.rpcURLs, p.networks, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.logger.Error("Failed to dial wallet provider", "error", err)
		return nil, fmt.Errorf("failed to dial wallet provider: %w", err)
	}
	p.client = c
	return c, nil
}

// RequestAccounts implements port.WalletProvider.
func (p *EVMClientProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	c, err := p.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.RequestAccounts(ctx)
}

// GetBalance implements port.WalletProvider.
func (p *EVMClientProvider) GetBalance(ctx context.Context, account string) (*big.Int, error) {
	c, err := p.GetClient(ctx)
	if err != nil {
		return nil, err
	}
	return c.GetBalance(ctx, account)
}

// NetworkName implements port.WalletProvider.
func (p *EVMClientProvider) NetworkName(ctx context.Context) (string, error) {
	c, err := p.GetClient(ctx)
	if err != nil {
		return "", err
	}
	return c.NetworkName(ctx)
}

// Close drops the cached connection.
func (p *EVMClientProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}
