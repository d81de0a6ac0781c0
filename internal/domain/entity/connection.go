package entity

import "time"

// ConnectionState is the wallet state of a single page view.
type ConnectionState int

const (
	// Disconnected is the initial state; there is no explicit way back to it.
	Disconnected ConnectionState = iota
	// Connected is entered only after a fully successful connect.
	Connected
)

// String returns the lowercase state label used in API responses.
func (s ConnectionState) String() string {
	switch s {
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// MarshalText lets the state appear as a label in JSON.
func (s ConnectionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ConnectionInfo is what the provider reported for the authorized account.
type ConnectionInfo struct {
	Address        string `json:"address"`
	BalanceDisplay string `json:"balanceDisplay"`
	NetworkName    string `json:"networkName"`
}

// View is the presentation state of one page view.
// Info is only meaningful when State is Connected.
type View struct {
	ID        string          `json:"id"`
	State     ConnectionState `json:"state"`
	Info      *ConnectionInfo `json:"info,omitempty"`
	Hover     bool            `json:"hover"`
	CreatedAt time.Time       `json:"createdAt"`
}
