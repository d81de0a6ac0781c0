package entity

import (
	"errors"
	"fmt"
)

// ConnectionErrorKind classifies why a connect attempt failed.
type ConnectionErrorKind string

const (
	KindProviderUnavailable ConnectionErrorKind = "ProviderUnavailable"
	KindUserRejected        ConnectionErrorKind = "UserRejected"
	KindQueryFailed         ConnectionErrorKind = "QueryFailed"
)

var (
	// ErrProviderUnavailable means no provider capability is present.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrUserRejected means the user declined account authorization.
	ErrUserRejected = errors.New("user rejected the connection")
	// ErrQueryFailed means a balance or network lookup failed after authorization.
	ErrQueryFailed = errors.New("wallet query failed")
)

// ProviderUnavailableMessage is shown to the user when no provider is present.
const ProviderUnavailableMessage = "No wallet provider is available. Install and configure a wallet to use this feature."

// ConnectStep names the step of the connect flow an error came from.
type ConnectStep string

const (
	StepProvider ConnectStep = "provider"
	StepAccounts ConnectStep = "accounts"
	StepBalance  ConnectStep = "balance"
	StepNetwork  ConnectStep = "network"
)

// ConnectionError is returned by the wallet connector for every failed attempt.
type ConnectionError struct {
	Kind ConnectionErrorKind
	Step ConnectStep
	Err  error
}

// NewConnectionError wraps err with the given kind and step.
func NewConnectionError(kind ConnectionErrorKind, step ConnectStep, err error) *ConnectionError {
	return &ConnectionError{Kind: kind, Step: step, Err: err}
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("connect %s: %s", e.Step, e.Kind)
	}
	return fmt.Sprintf("connect %s: %s: %v", e.Step, e.Kind, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, ErrUserRejected) works
// regardless of the underlying cause.
func (e *ConnectionError) Is(target error) bool {
	switch target {
	case ErrProviderUnavailable:
		return e.Kind == KindProviderUnavailable
	case ErrUserRejected:
		return e.Kind == KindUserRejected
	case ErrQueryFailed:
		return e.Kind == KindQueryFailed
	}
	return false
}

// ConnectionErrorKindOf extracts the kind from err, or "" if err is not a ConnectionError.
func ConnectionErrorKindOf(err error) ConnectionErrorKind {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return connErr.Kind
	}
	return ""
}
