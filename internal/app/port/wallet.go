package port

import (
	"context"
	"math/big"

	"pixelity_site/internal/domain/entity"
)

// WalletProvider is the provider capability the connector talks to: something that
// brokers access to the user's accounts and reports chain data for them.
// Every call may block on user interaction or the network.
type WalletProvider interface {
	// RequestAccounts asks for account authorization and returns the authorized
	// account identifiers. A user refusal must satisfy errors.Is(err, entity.ErrUserRejected).
	RequestAccounts(ctx context.Context) ([]string, error)

	// GetBalance returns the account balance in the smallest native unit.
	GetBalance(ctx context.Context, account string) (*big.Int, error)

	// NetworkName returns the descriptive name of the active network.
	NetworkName(ctx context.Context) (string, error)
}

// WalletConnector runs the connect flow against a provider.
type WalletConnector interface {
	Connect(ctx context.Context) (entity.ConnectionInfo, error)
}

// ViewRegistry owns the per-page-view presentation state.
type ViewRegistry interface {
	Open() entity.View
	Get(viewID string) (entity.View, error)
	Connect(ctx context.Context, viewID string) (entity.View, error)
	SetHover(viewID string, visible bool) (entity.View, error)
}
