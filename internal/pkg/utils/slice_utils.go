package utils

import (
	dexscreener_entity "pixelity_site/internal/entity"
)

// SafeDerefFloat64 безопасно разыменовывает указатель и получает float64.
// Принимает указатель на DEXLiquidity и функцию-геттер.
func SafeDerefFloat64(liquidity *dexscreener_entity.DEXLiquidity, getter func(dexscreener_entity.DEXLiquidity) float64) float64 {
	if liquidity == nil {
		return 0.0
	}
	return getter(*liquidity)
}
