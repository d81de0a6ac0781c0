package entity

// NetworkDefinition holds the configuration for a specific blockchain network.
type NetworkDefinition struct {
	ChainID      uint64 `json:"chainId" yaml:"chainId"`
	Name         string `json:"name" yaml:"name"`
	Identifier   string `json:"identifier" yaml:"identifier"`
	Alias        string `json:"alias" yaml:"alias"` // short network name reported to the UI, e.g. "mainnet"
	NativeSymbol string `json:"nativeSymbol" yaml:"nativeSymbol"`
	Decimals     uint8  `json:"decimals" yaml:"decimals"`

	DEXScreenerChainID        string `json:"dexScreenerChainId,omitempty" yaml:"dexScreenerChainId,omitempty"`
	WrappedNativeTokenAddress string `json:"wrappedNativeTokenAddress,omitempty" yaml:"wrappedNativeTokenAddress,omitempty"`
}

// UnknownNetworkName is reported for chains without a definition.
const UnknownNetworkName = "unknown"

// DisplayName returns the alias used as the connection's network name.
func (d NetworkDefinition) DisplayName() string {
	if d.Alias != "" {
		return d.Alias
	}
	if d.Identifier != "" {
		return d.Identifier
	}
	return UnknownNetworkName
}
