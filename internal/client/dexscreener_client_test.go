package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestGetTokenPairsByAddressesDecodesArray(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"chainId":"ethereum","pairAddress":"0xpair","baseToken":{"address":"0xweth","symbol":"WETH"},"quoteToken":{"symbol":"USDC"},"priceUsd":"3000.1","liquidity":{"usd":1000}}]`))
	}))
	defer srv.Close()

	c := NewDEXScreenerClient(srv.URL+"/", 2*time.Second, zap.NewNop(), 30)
	pairs, err := c.GetTokenPairsByAddresses(context.Background(), "ethereum", []string{"0xweth"})
	if err != nil {
		t.Fatalf("GetTokenPairsByAddresses: %v", err)
	}
	if gotPath != "/tokens/v1/ethereum/0xweth" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(pairs) != 1 || pairs[0].PriceUsd != "3000.1" || pairs[0].Liquidity == nil || pairs[0].Liquidity.Usd != 1000 {
		t.Fatalf("pairs = %+v", pairs)
	}
}

func TestGetTokenPairsByAddressesDecodesWrappedObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schemaVersion":"1.0.0","pairs":[{"priceUsd":"1.5"}]}`))
	}))
	defer srv.Close()

	pairs, err := NewDEXScreenerClient(srv.URL, time.Second, zap.NewNop(), 30).
		GetTokenPairsByAddresses(context.Background(), "bsc", []string{"0xwbnb"})
	if err != nil {
		t.Fatalf("GetTokenPairsByAddresses: %v", err)
	}
	if len(pairs) != 1 || pairs[0].PriceUsd != "1.5" {
		t.Fatalf("pairs = %+v", pairs)
	}
}

func TestGetTokenPairsByAddressesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewDEXScreenerClient(srv.URL, time.Second, zap.NewNop(), 2)
	if _, err := c.GetTokenPairsByAddresses(context.Background(), "ethereum", nil); err == nil {
		t.Fatalf("expected error for empty address list")
	}
	if _, err := c.GetTokenPairsByAddresses(context.Background(), "ethereum", []string{"a", "b", "c"}); err == nil {
		t.Fatalf("expected error above batch limit")
	}
	_, err := c.GetTokenPairsByAddresses(context.Background(), "ethereum", []string{"a"})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}
