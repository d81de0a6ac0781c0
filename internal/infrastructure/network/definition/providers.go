package networkdefinition

import (
	"fmt"
	"strings"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/domain/entity"
)

// NetworkDefinitionProvider resolves chain IDs to network definitions.
type NetworkDefinitionProvider struct {
	logger  port.Logger
	byChain map[uint64]entity.NetworkDefinition
}

// Predefined network definitions. Alias values follow the short names wallets
// and ethers-style libraries report ("mainnet", "matic", ...).
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = entity.NetworkDefinition{
		ChainID:                   1,
		Name:                      "Ethereum Mainnet",
		Identifier:                "ethereum",
		Alias:                     "mainnet",
		NativeSymbol:              "ETH",
		Decimals:                  18,
		DEXScreenerChainID:        "ethereum",
		WrappedNativeTokenAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", // WETH
	}
	Sepolia = entity.NetworkDefinition{
		ChainID:      11155111,
		Name:         "Sepolia Testnet",
		Identifier:   "sepolia",
		Alias:        "sepolia",
		NativeSymbol: "ETH",
		Decimals:     18,
	}
	Holesky = entity.NetworkDefinition{
		ChainID:      17000,
		Name:         "Holesky Testnet",
		Identifier:   "holesky",
		Alias:        "holesky",
		NativeSymbol: "ETH",
		Decimals:     18,
	}
	BSC = entity.NetworkDefinition{
		ChainID:                   56,
		Name:                      "BNB Smart Chain",
		Identifier:                "bsc",
		Alias:                     "bnb",
		NativeSymbol:              "BNB",
		Decimals:                  18,
		DEXScreenerChainID:        "bsc",
		WrappedNativeTokenAddress: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", // WBNB
	}
	Polygon = entity.NetworkDefinition{
		ChainID:                   137,
		Name:                      "Polygon PoS",
		Identifier:                "polygon",
		Alias:                     "matic",
		NativeSymbol:              "POL",
		Decimals:                  18,
		DEXScreenerChainID:        "polygon",
		WrappedNativeTokenAddress: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", // WMATIC
	}
	Arbitrum = entity.NetworkDefinition{
		ChainID:                   42161,
		Name:                      "Arbitrum One",
		Identifier:                "arbitrum",
		Alias:                     "arbitrum",
		NativeSymbol:              "ETH",
		Decimals:                  18,
		DEXScreenerChainID:        "arbitrum",
		WrappedNativeTokenAddress: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", // WETH on Arbitrum
	}
	Avalanche = entity.NetworkDefinition{
		ChainID:                   43114,
		Name:                      "Avalanche C-Chain",
		Identifier:                "avalanche",
		Alias:                     "avalanche",
		NativeSymbol:              "AVAX",
		Decimals:                  18,
		DEXScreenerChainID:        "avalanche",
		WrappedNativeTokenAddress: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", // WAVAX
	}
	Base = entity.NetworkDefinition{
		ChainID:                   8453,
		Name:                      "Base Mainnet",
		Identifier:                "base",
		Alias:                     "base",
		NativeSymbol:              "ETH",
		Decimals:                  18,
		DEXScreenerChainID:        "base",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006", // WETH on Base
	}
	Gnosis = entity.NetworkDefinition{
		ChainID:      100,
		Name:         "Gnosis Chain",
		Identifier:   "gnosis",
		Alias:        "xdai",
		NativeSymbol: "XDAI",
		Decimals:     18,
	}
	Linea = entity.NetworkDefinition{
		ChainID:                   59144,
		Name:                      "Linea Mainnet",
		Identifier:                "linea",
		Alias:                     "linea",
		NativeSymbol:              "ETH",
		Decimals:                  18,
		DEXScreenerChainID:        "linea",
		WrappedNativeTokenAddress: "0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f", // WETH on Linea
	}
	Optimism = entity.NetworkDefinition{
		ChainID:                   10,
		Name:                      "OP Mainnet",
		Identifier:                "optimism",
		Alias:                     "optimism",
		NativeSymbol:              "ETH",
		Decimals:                  18,
		DEXScreenerChainID:        "optimism",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006", // WETH on OP
	}
)

var allKnownDefinitions = []entity.NetworkDefinition{ //nolint:gochecknoglobals
	Ethereum, Sepolia, Holesky, BSC, Polygon, Arbitrum, Avalanche, Base, Gnosis, Linea, Optimism,
}

// NewNetworkDefinitionProvider creates a provider seeded with the built-in definitions.
// overrides replace or extend them by chain ID; empty fields in an override keep the built-in value.
func NewNetworkDefinitionProvider(log port.Logger, overrides []entity.NetworkDefinition) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:  log,
		byChain: make(map[uint64]entity.NetworkDefinition, len(allKnownDefinitions)+len(overrides)),
	}
	for _, def := range allKnownDefinitions {
		p.byChain[def.ChainID] = def
	}

	for _, o := range overrides {
		if o.ChainID == 0 {
			p.logger.Warn("Skipping network override without chainId", "identifier", o.Identifier)
			continue
		}
		base, known := p.byChain[o.ChainID]
		p.byChain[o.ChainID] = mergeDefinition(base, o)
		if known {
			p.logger.Debug(fmt.Sprintf("Network %d overridden from config", o.ChainID), "alias", p.byChain[o.ChainID].Alias)
		} else {
			p.logger.Debug(fmt.Sprintf("Network %d added from config", o.ChainID), "alias", p.byChain[o.ChainID].Alias)
		}
	}

	p.logger.Info("NetworkDefinitionProvider initialized", "networks", len(p.byChain))
	return p
}

func mergeDefinition(base, o entity.NetworkDefinition) entity.NetworkDefinition {
	out := base
	out.ChainID = o.ChainID
	if o.Name != "" {
		out.Name = o.Name
	}
	if o.Identifier != "" {
		out.Identifier = o.Identifier
	}
	if o.Alias != "" {
		out.Alias = o.Alias
	}
	if o.NativeSymbol != "" {
		out.NativeSymbol = o.NativeSymbol
	}
	if o.Decimals != 0 {
		out.Decimals = o.Decimals
	}
	if o.DEXScreenerChainID != "" {
		out.DEXScreenerChainID = o.DEXScreenerChainID
	}
	if o.WrappedNativeTokenAddress != "" {
		out.WrappedNativeTokenAddress = o.WrappedNativeTokenAddress
	}
	if out.Decimals == 0 {
		out.Decimals = 18
	}
	return out
}

// GetNetworkDefinitionByName matches either the identifier ("ethereum") or the alias ("mainnet"), case-insensitively.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(name string) (entity.NetworkDefinition, bool) {
	if p == nil || name == "" {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.byChain {
		if strings.EqualFold(def.Identifier, name) || strings.EqualFold(def.Alias, name) {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}

// GetNetworkDefinitionByChainID returns the definition for chainID.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByChainID(chainID uint64) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	def, ok := p.byChain[chainID]
	return def, ok
}

// NameForChainID returns the alias for chainID, or "unknown".
func (p *NetworkDefinitionProvider) NameForChainID(chainID uint64) string {
	def, ok := p.GetNetworkDefinitionByChainID(chainID)
	if !ok {
		return entity.UnknownNetworkName
	}
	return def.DisplayName()
}
