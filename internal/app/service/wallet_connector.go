package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/domain/entity"
	"pixelity_site/internal/pkg/metrics"
	"pixelity_site/internal/pkg/utils"

	"golang.org/x/sync/singleflight"
)

// DefaultNativeDecimals is the number of smallest units per whole coin on EVM chains.
const DefaultNativeDecimals uint8 = 18

const connectFlightKey = "connect"

// WalletConnectorImpl implements port.WalletConnector.
//
// Overlapping Connect calls share a single provider exchange and its result.
// The exchange ignores caller cancellation; a cancelled caller only stops waiting.
type WalletConnectorImpl struct {
	provider port.WalletProvider
	decimals uint8
	logger   port.Logger
	group    singleflight.Group
}

// NewWalletConnector creates a connector. A nil provider is allowed and makes every
// Connect fail with ProviderUnavailable.
func NewWalletConnector(provider port.WalletProvider, decimals uint8, l port.Logger) *WalletConnectorImpl {
	if decimals == 0 {
		decimals = DefaultNativeDecimals
	}
	return &WalletConnectorImpl{
		provider: provider,
		decimals: decimals,
		logger:   l.With("component", "wallet_connector"),
	}
}

// Connect authorizes an account, then reads its balance and the network name.
// Nothing is cached: each call that does not overlap another goes back to the provider.
func (c *WalletConnectorImpl) Connect(ctx context.Context) (entity.ConnectionInfo, error) {
	if c.provider == nil {
		err := entity.NewConnectionError(entity.KindProviderUnavailable, entity.StepProvider, nil)
		c.logger.Warn("Wallet connect requested without a provider", "kind", err.Kind)
		metrics.RecordConnect(string(err.Kind), 0)
		return entity.ConnectionInfo{}, err
	}

	// The shared exchange must not die with whichever caller started it.
	ch := c.group.DoChan(connectFlightKey, func() (any, error) {
		return c.connect(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Shared {
			c.logger.Debug("Wallet connect coalesced with an in-flight request")
		}
		if res.Err != nil {
			return entity.ConnectionInfo{}, res.Err
		}
		return res.Val.(entity.ConnectionInfo), nil
	case <-ctx.Done():
		c.logger.Info("Caller stopped waiting for wallet connect", "error", ctx.Err())
		return entity.ConnectionInfo{}, entity.NewConnectionError(entity.KindQueryFailed, entity.StepProvider, ctx.Err())
	}
}

func (c *WalletConnectorImpl) connect(ctx context.Context) (entity.ConnectionInfo, error) {
	start := time.Now()

	accounts, err := c.provider.RequestAccounts(ctx)
	metrics.RecordProviderCall(string(entity.StepAccounts), err == nil)
	if err != nil {
		kind := entity.KindQueryFailed
		if errors.Is(err, entity.ErrUserRejected) {
			kind = entity.KindUserRejected
		}
		return entity.ConnectionInfo{}, c.fail(start, kind, entity.StepAccounts, err)
	}
	if len(accounts) == 0 {
		return entity.ConnectionInfo{}, c.fail(start, entity.KindUserRejected, entity.StepAccounts,
			errors.New("provider authorized no accounts"))
	}
	address := accounts[0]

	balance, err := c.provider.GetBalance(ctx, address)
	metrics.RecordProviderCall(string(entity.StepBalance), err == nil)
	if err != nil {
		return entity.ConnectionInfo{}, c.fail(start, entity.KindQueryFailed, entity.StepBalance,
			fmt.Errorf("balance of %s: %w", address, err))
	}
	if balance == nil {
		return entity.ConnectionInfo{}, c.fail(start, entity.KindQueryFailed, entity.StepBalance,
			fmt.Errorf("balance of %s: provider returned no value", address))
	}

	networkName, err := c.provider.NetworkName(ctx)
	metrics.RecordProviderCall(string(entity.StepNetwork), err == nil)
	if err != nil {
		return entity.ConnectionInfo{}, c.fail(start, entity.KindQueryFailed, entity.StepNetwork, err)
	}

	info := entity.ConnectionInfo{
		Address:        address,
		BalanceDisplay: utils.FormatUnits(balance, c.decimals),
		NetworkName:    networkName,
	}
	metrics.RecordConnect(metrics.OutcomeSuccess, time.Since(start))
	c.logger.Info("Wallet connected",
		"address", address,
		"balance", info.BalanceDisplay,
		"network", networkName)
	return info, nil
}

func (c *WalletConnectorImpl) fail(start time.Time, kind entity.ConnectionErrorKind, step entity.ConnectStep, cause error) error {
	err := entity.NewConnectionError(kind, step, cause)
	metrics.RecordConnect(string(kind), time.Since(start))
	c.logger.Error("Wallet connect failed", "kind", kind, "step", step, "error", cause)
	return err
}
