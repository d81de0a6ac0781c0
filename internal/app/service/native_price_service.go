package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"pixelity_site/internal/app/port"
	"pixelity_site/internal/client"
	dex_types "pixelity_site/internal/entity"
	"pixelity_site/internal/pkg/utils"

	"github.com/patrickmn/go-cache"
)

var stablecoinSymbols = map[string]struct{}{
	"USDC": {},
	"USDT": {},
	"DAI":  {},
}

// NativePriceServiceImpl implements port.NativePriceService on top of DEX Screener,
// pricing a network's native coin through its wrapped token.
type NativePriceServiceImpl struct {
	networks    port.NetworkDefinitionProvider
	dexClient   client.DEXScreenerClient
	logger      port.Logger
	pricesCache *cache.Cache // key "dexChainID_wrappedAddress" -> float64
}

// NewNativePriceService creates a price service whose cached prices live for ttl.
func NewNativePriceService(
	networks port.NetworkDefinitionProvider,
	dexClient client.DEXScreenerClient,
	ttl time.Duration,
	l port.Logger,
) *NativePriceServiceImpl {
	return &NativePriceServiceImpl{
		networks:    networks,
		dexClient:   dexClient,
		logger:      l.With("component", "native_price_service"),
		pricesCache: cache.New(ttl, 2*ttl),
	}
}

// GetNativePriceUSD returns the USD price of the native coin of networkName.
// ok is false whenever the price is not known; errors are logged, not returned.
func (s *NativePriceServiceImpl) GetNativePriceUSD(ctx context.Context, networkName string) (float64, bool) {
	def, found := s.networks.GetNetworkDefinitionByName(networkName)
	if !found || def.DEXScreenerChainID == "" || def.WrappedNativeTokenAddress == "" {
		s.logger.Debug("No price source for network", "network", networkName)
		return 0, false
	}

	cacheKey := def.DEXScreenerChainID + "_" + strings.ToLower(def.WrappedNativeTokenAddress)
	if cached, ok := s.pricesCache.Get(cacheKey); ok {
		return cached.(float64), true
	}

	pairs, err := s.dexClient.GetTokenPairsByAddresses(ctx, def.DEXScreenerChainID, []string{def.WrappedNativeTokenAddress})
	if err != nil {
		s.logger.Warn("Failed to fetch native price", "network", networkName, "error", err)
		return 0, false
	}

	priceStr := s.selectBestPriceFromPairs(pairs, def.WrappedNativeTokenAddress)
	if priceStr == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		s.logger.Warn("Unusable native price", "network", networkName, "priceUsd", priceStr, "error", err)
		return 0, false
	}

	s.pricesCache.Set(cacheKey, price, cache.DefaultExpiration)
	s.logger.Debug("Native price cached", "network", networkName, "symbol", def.NativeSymbol, "price", price)
	return price, true
}

// selectBestPriceFromPairs prefers the most liquid stablecoin-quoted pair, then the most liquid pair overall.
func (s *NativePriceServiceImpl) selectBestPriceFromPairs(pairs []dex_types.PairData, baseTokenAddress string) string {
	var bestOverallPair *dex_types.PairData
	var bestStablecoinPair *dex_types.PairData

	liquidityUSD := func(l dex_types.DEXLiquidity) float64 { return l.Usd }
	moreLiquid := func(a, b *dex_types.PairData) bool {
		return utils.SafeDerefFloat64(a.Liquidity, liquidityUSD) > utils.SafeDerefFloat64(b.Liquidity, liquidityUSD)
	}

	for i := range pairs {
		pair := &pairs[i]
		if !strings.EqualFold(pair.BaseToken.Address, baseTokenAddress) {
			continue
		}
		if pair.PriceUsd == "" || pair.PriceUsd == "0" {
			continue
		}

		if _, isStablecoin := stablecoinSymbols[strings.ToUpper(pair.QuoteToken.Symbol)]; isStablecoin {
			if bestStablecoinPair == nil || moreLiquid(pair, bestStablecoinPair) {
				bestStablecoinPair = pair
			}
		}
		if bestOverallPair == nil || moreLiquid(pair, bestOverallPair) {
			bestOverallPair = pair
		}
	}

	switch {
	case bestStablecoinPair != nil:
		return bestStablecoinPair.PriceUsd
	case bestOverallPair != nil:
		return bestOverallPair.PriceUsd
	}
	s.logger.Warn("No suitable price found from pairs",
		"baseTokenAddress", baseTokenAddress,
		"evaluatedPairCount", len(pairs))
	return ""
}
