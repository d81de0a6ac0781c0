package utils

import (
	"testing"

	dexscreener_entity "pixelity_site/internal/entity"
)

func TestSafeDerefFloat64(t *testing.T) {
	usd := func(l dexscreener_entity.DEXLiquidity) float64 { return l.Usd }
	if got := SafeDerefFloat64(nil, usd); got != 0 {
		t.Fatalf("nil liquidity = %v", got)
	}
	if got := SafeDerefFloat64(&dexscreener_entity.DEXLiquidity{Usd: 12.5}, usd); got != 12.5 {
		t.Fatalf("liquidity = %v", got)
	}
}
