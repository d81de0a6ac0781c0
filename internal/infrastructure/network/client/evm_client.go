package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"pixelity_site/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// JSON-RPC error codes the provider understands.
const (
	// codeUserRejected is EIP-1193's "User Rejected Request".
	codeUserRejected = 4001
	// codeUnauthorized is EIP-1193's "Unauthorized": the account was never approved.
	codeUnauthorized = 4100

	codeMethodNotFound = -32601
)

// ChainNamer maps a chain ID to the network name shown to the user.
type ChainNamer interface {
	NameForChainID(chainID uint64) string
}

// EVMWalletProvider implements port.WalletProvider over an EIP-1193 style JSON-RPC
// endpoint, e.g. a local signer or a development node holding unlocked accounts.
type EVMWalletProvider struct {
	rpcClient      *rpc.Client
	ethClient      *ethclient.Client
	networks       ChainNamer
	rpcCallTimeout time.Duration // applied to data queries only; authorization waits for the user
}

// NewEVMWalletProvider wraps an already dialed RPC client.
func NewEVMWalletProvider(rpcClient *rpc.Client, networks ChainNamer, rpcCallTimeout time.Duration) *EVMWalletProvider {
	return &EVMWalletProvider{
		rpcClient:      rpcClient,
		ethClient:      ethclient.NewClient(rpcClient),
		networks:       networks,
		rpcCallTimeout: rpcCallTimeout,
	}
}

// DialEVMWalletProvider tries each URL in order and returns a provider for the first that connects.
func DialEVMWalletProvider(ctx context.Context, rpcURLs []string, networks ChainNamer, connectionTimeout, rpcCallTimeout time.Duration) (*EVMWalletProvider, error) {
	if len(rpcURLs) == 0 {
		return nil, errors.New("no RPC URLs configured")
	}
	var lastErr error
	for _, rpcURL := range rpcURLs {
		dialCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
		rpcClient, err := rpc.DialContext(dialCtx, rpcURL)
		cancel()
		if err == nil {
			return NewEVMWalletProvider(rpcClient, networks, rpcCallTimeout), nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	return nil, fmt.Errorf("all RPC connection attempts failed: %w", lastErr)
}

// RequestAccounts asks the endpoint to authorize accounts. Endpoints that do not know
// eth_requestAccounts are asked for eth_accounts instead. Accounts come back EIP-55 checksummed.
func (p *EVMWalletProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []common.Address
	err := p.rpcClient.CallContext(ctx, &accounts, "eth_requestAccounts")
	if rpcErrorCode(err) == codeMethodNotFound {
		err = p.rpcClient.CallContext(ctx, &accounts, "eth_accounts")
	}
	if err != nil {
		switch rpcErrorCode(err) {
		case codeUserRejected, codeUnauthorized:
			return nil, fmt.Errorf("%w: %v", entity.ErrUserRejected, err)
		}
		return nil, fmt.Errorf("eth_requestAccounts: %w", err)
	}

	out := make([]string, len(accounts))
	for i, account := range accounts {
		out[i] = account.Hex()
	}
	return out, nil
}

// GetBalance returns the latest balance of account in wei.
func (p *EVMWalletProvider) GetBalance(ctx context.Context, account string) (*big.Int, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("invalid account address %q", account)
	}
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	balance, err := p.ethClient.BalanceAt(ctx, common.HexToAddress(account), nil)
	if err != nil {
		return nil, fmt.Errorf("eth_getBalance: %w", err)
	}
	return balance, nil
}

// NetworkName resolves eth_chainId to a network name; unknown chains are "unknown".
func (p *EVMWalletProvider) NetworkName(ctx context.Context) (string, error) {
	ctx, cancel := p.queryContext(ctx)
	defer cancel()

	chainID, err := p.ethClient.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("eth_chainId: %w", err)
	}
	if !chainID.IsUint64() || p.networks == nil {
		return entity.UnknownNetworkName, nil
	}
	return p.networks.NameForChainID(chainID.Uint64()), nil
}

// Close releases the underlying connection.
func (p *EVMWalletProvider) Close() {
	p.rpcClient.Close()
}

func (p *EVMWalletProvider) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.rpcCallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.rpcCallTimeout)
}

func rpcErrorCode(err error) int {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode()
	}
	return 0
}
