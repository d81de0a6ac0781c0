package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pixelity_site/internal/domain/entity"
	dex_types "pixelity_site/internal/entity"
	"pixelity_site/internal/pkg/logger"
)

type stubNetworks struct {
	defs map[string]entity.NetworkDefinition
}

func (s stubNetworks) GetNetworkDefinitionByName(name string) (entity.NetworkDefinition, bool) {
	d, ok := s.defs[name]
	return d, ok
}

type stubDEX struct {
	pairs []dex_types.PairData
	err   error
	calls int
}

func (s *stubDEX) GetTokenPairsByAddresses(context.Context, string, []string) ([]dex_types.PairData, error) {
	s.calls++
	return s.pairs, s.err
}

const weth = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

func priceNetworks() stubNetworks {
	return stubNetworks{defs: map[string]entity.NetworkDefinition{
		"mainnet": {ChainID: 1, Alias: "mainnet", DEXScreenerChainID: "ethereum", WrappedNativeTokenAddress: weth},
		"devnet":  {ChainID: 1337, Alias: "devnet"},
	}}
}

func TestNativePricePrefersLiquidStablecoinPair(t *testing.T) {
	dex := &stubDEX{pairs: []dex_types.PairData{
		{BaseToken: dex_types.DEXToken{Address: weth}, QuoteToken: dex_types.DEXToken{Symbol: "WBTC"}, PriceUsd: "3100", Liquidity: &dex_types.DEXLiquidity{Usd: 9e9}},
		{BaseToken: dex_types.DEXToken{Address: weth}, QuoteToken: dex_types.DEXToken{Symbol: "USDC"}, PriceUsd: "3000.5", Liquidity: &dex_types.DEXLiquidity{Usd: 1e6}},
		{BaseToken: dex_types.DEXToken{Address: weth}, QuoteToken: dex_types.DEXToken{Symbol: "usdt"}, PriceUsd: "2999", Liquidity: &dex_types.DEXLiquidity{Usd: 5e5}},
		{BaseToken: dex_types.DEXToken{Address: "0xother"}, QuoteToken: dex_types.DEXToken{Symbol: "USDC"}, PriceUsd: "1", Liquidity: &dex_types.DEXLiquidity{Usd: 1e12}},
	}}
	svc := NewNativePriceService(priceNetworks(), dex, time.Minute, logger.Nop())

	price, ok := svc.GetNativePriceUSD(context.Background(), "mainnet")
	if !ok || price != 3000.5 {
		t.Fatalf("price = %v, %v; want 3000.5", price, ok)
	}
	if _, ok := svc.GetNativePriceUSD(context.Background(), "mainnet"); !ok {
		t.Fatalf("cached price missing")
	}
	if dex.calls != 1 {
		t.Fatalf("DEX Screener called %d times, want 1", dex.calls)
	}
}

func TestNativePriceFallsBackToMostLiquidPair(t *testing.T) {
	dex := &stubDEX{pairs: []dex_types.PairData{
		{BaseToken: dex_types.DEXToken{Address: weth}, QuoteToken: dex_types.DEXToken{Symbol: "WBTC"}, PriceUsd: "3100", Liquidity: &dex_types.DEXLiquidity{Usd: 10}},
		{BaseToken: dex_types.DEXToken{Address: weth}, QuoteToken: dex_types.DEXToken{Symbol: "ARB"}, PriceUsd: "3050", Liquidity: nil},
	}}
	svc := NewNativePriceService(priceNetworks(), dex, time.Minute, logger.Nop())
	if price, ok := svc.GetNativePriceUSD(context.Background(), "mainnet"); !ok || price != 3100 {
		t.Fatalf("price = %v, %v; want 3100", price, ok)
	}
}

func TestNativePriceUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		network string
		dex     *stubDEX
	}{
		{"unknown network", "nowhere", &stubDEX{}},
		{"network without price source", "devnet", &stubDEX{}},
		{"client error", "mainnet", &stubDEX{err: errors.New("timeout")}},
		{"no pairs", "mainnet", &stubDEX{}},
		{"garbage price", "mainnet", &stubDEX{pairs: []dex_types.PairData{{BaseToken: dex_types.DEXToken{Address: weth}, PriceUsd: "n/a"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNativePriceService(priceNetworks(), tt.dex, time.Minute, logger.Nop())
			if price, ok := svc.GetNativePriceUSD(context.Background(), tt.network); ok {
				t.Fatalf("unexpected price %v", price)
			}
		})
	}
}
