package entity

import (
	"errors"
	"fmt"
	"testing"
)

func TestConnectionErrorMatchesKindSentinels(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		kind    ConnectionErrorKind
		matches error
		others  []error
	}{
		{KindProviderUnavailable, ErrProviderUnavailable, []error{ErrUserRejected, ErrQueryFailed}},
		{KindUserRejected, ErrUserRejected, []error{ErrProviderUnavailable, ErrQueryFailed}},
		{KindQueryFailed, ErrQueryFailed, []error{ErrProviderUnavailable, ErrUserRejected}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := fmt.Errorf("outer: %w", NewConnectionError(tt.kind, StepBalance, cause))
			if !errors.Is(err, tt.matches) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.matches)
			}
			for _, other := range tt.others {
				if errors.Is(err, other) {
					t.Fatalf("errors.Is(%v, %v) = true", err, other)
				}
			}
			if !errors.Is(err, cause) {
				t.Fatalf("cause not reachable through Unwrap")
			}
			if got := ConnectionErrorKindOf(err); got != tt.kind {
				t.Fatalf("ConnectionErrorKindOf = %q, want %q", got, tt.kind)
			}
		})
	}
}

func TestConnectionErrorKindOfPlainError(t *testing.T) {
	if got := ConnectionErrorKindOf(errors.New("plain")); got != "" {
		t.Fatalf("ConnectionErrorKindOf(plain) = %q, want empty", got)
	}
}

func TestConnectionStateString(t *testing.T) {
	if Disconnected.String() != "disconnected" || Connected.String() != "connected" {
		t.Fatalf("unexpected labels: %s, %s", Disconnected, Connected)
	}
	var zero ConnectionState
	if zero != Disconnected {
		t.Fatalf("zero value must be Disconnected")
	}
}

func TestNetworkDefinitionDisplayName(t *testing.T) {
	if got := (NetworkDefinition{Alias: "mainnet", Identifier: "ethereum"}).DisplayName(); got != "mainnet" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := (NetworkDefinition{Identifier: "zora"}).DisplayName(); got != "zora" {
		t.Fatalf("DisplayName = %q", got)
	}
	if got := (NetworkDefinition{}).DisplayName(); got != UnknownNetworkName {
		t.Fatalf("DisplayName = %q", got)
	}
}
