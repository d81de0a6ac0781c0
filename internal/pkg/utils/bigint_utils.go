package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatUnits converts an integer amount of smallest units into a decimal string
// in whole units. Exact: no floating point is involved.
// Example: amount=2500000000000000000, decimals=18 => "2.5"
// The result always carries at least one fractional digit ("1.0", "0.0").
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0.0"
	}

	abs := new(big.Int).Abs(amount)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(abs, scale, new(big.Int))

	fracStr := ""
	if decimals > 0 {
		fracStr = frac.String()
		if pad := int(decimals) - len(fracStr); pad > 0 {
			fracStr = strings.Repeat("0", pad) + fracStr
		}
		fracStr = strings.TrimRight(fracStr, "0")
	}
	if fracStr == "" {
		fracStr = "0"
	}

	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	return sign + whole.String() + "." + fracStr
}

// ParseUnits is the inverse of FormatUnits: "2.5" with decimals=18 => 2500000000000000000.
// It rejects values with more fractional digits than decimals.
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil, fmt.Errorf("empty decimal value")
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("invalid decimal value %q", value)
	}

	wholeStr, fracStr, _ := strings.Cut(s, ".")
	if wholeStr == "" {
		wholeStr = "0"
	}
	if !isDigits(wholeStr) || (fracStr != "" && !isDigits(fracStr)) {
		return nil, fmt.Errorf("invalid decimal value %q", value)
	}

	fracStr = strings.TrimRight(fracStr, "0")
	if len(fracStr) > int(decimals) {
		return nil, fmt.Errorf("value %q has more than %d fractional digits", value, decimals)
	}
	fracStr += strings.Repeat("0", int(decimals)-len(fracStr))

	result, ok := new(big.Int).SetString(wholeStr+fracStr, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal value %q", value)
	}
	if negative {
		result.Neg(result)
	}
	return result, nil
}

// ShortenAddress renders an account as "0x1234...abcd" for compact display.
func ShortenAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
