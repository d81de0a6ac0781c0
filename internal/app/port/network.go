package port

import (
	"context"

	"pixelity_site/internal/domain/entity"
)

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetNetworkDefinitionByName returns a network definition by its identifier.
	GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool)
}

// NativePriceService reports the USD price of a network's native coin.
// It is display-only: callers treat any failure as "no price".
type NativePriceService interface {
	GetNativePriceUSD(ctx context.Context, networkName string) (float64, bool)
}
