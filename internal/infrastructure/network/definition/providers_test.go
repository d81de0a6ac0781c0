package networkdefinition

import (
	"testing"

	"pixelity_site/internal/domain/entity"
	"pixelity_site/internal/pkg/logger"
)

func TestNameForChainID(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.Nop(), nil)
	tests := map[uint64]string{
		1:        "mainnet",
		11155111: "sepolia",
		56:       "bnb",
		137:      "matic",
		100:      "xdai",
		31337:    entity.UnknownNetworkName,
	}
	for chainID, want := range tests {
		if got := p.NameForChainID(chainID); got != want {
			t.Fatalf("NameForChainID(%d) = %q, want %q", chainID, got, want)
		}
	}
}

func TestOverridesMergeAndExtend(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.Nop(), []entity.NetworkDefinition{
		{ChainID: 1, Name: "Ethereum (local fork)"},
		{ChainID: 31337, Identifier: "hardhat", Alias: "hardhat"},
		{Identifier: "broken"},
	})

	eth, ok := p.GetNetworkDefinitionByChainID(1)
	if !ok || eth.Name != "Ethereum (local fork)" || eth.Alias != "mainnet" || eth.WrappedNativeTokenAddress == "" {
		t.Fatalf("merged mainnet = %+v", eth)
	}
	if got := p.NameForChainID(31337); got != "hardhat" {
		t.Fatalf("NameForChainID(31337) = %q", got)
	}
	hh, _ := p.GetNetworkDefinitionByChainID(31337)
	if hh.Decimals != 18 {
		t.Fatalf("added network decimals = %d, want default 18", hh.Decimals)
	}
	if _, ok := p.GetNetworkDefinitionByName("broken"); ok {
		t.Fatalf("override without chainId must be skipped")
	}
}

func TestGetNetworkDefinitionByName(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.Nop(), nil)
	for _, name := range []string{"mainnet", "ethereum", "MAINNET"} {
		def, ok := p.GetNetworkDefinitionByName(name)
		if !ok || def.ChainID != 1 {
			t.Fatalf("GetNetworkDefinitionByName(%q) = %+v, %v", name, def, ok)
		}
	}
	if _, ok := p.GetNetworkDefinitionByName(""); ok {
		t.Fatalf("empty name must not match")
	}
}
