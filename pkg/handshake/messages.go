package handshake

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/parley-protocol/parley-go/pkg/compat"
)

// Handshake message types.
const (
	// MsgVersionCheck announces the sender's compatibility version.
	MsgVersionCheck uint8 = 1

	// MsgVersionAck answers a version check with a verdict.
	MsgVersionAck uint8 = 2
)

// Version ack error codes.
const (
	AckOK           uint8 = 0
	AckIncompatible uint8 = 1
	AckMalformed    uint8 = 2
)

// Message errors.
var (
	ErrInvalidMessage = errors.New("invalid handshake message")
)

// VersionCheck announces the sender's compatibility version.
// CBOR: { 1: msgType, 2: exchangeID, 3: version }
type VersionCheck struct {
	MsgType    uint8  `cbor:"1,keyasint"`
	ExchangeID string `cbor:"2,keyasint"`
	Version    string `cbor:"3,keyasint"` // wire-format compatibility version
}

// NewVersionCheck builds a version check carrying this process's own
// compatibility version and a fresh exchange ID.
func NewVersionCheck() *VersionCheck {
	return &VersionCheck{
		MsgType:    MsgVersionCheck,
		ExchangeID: uuid.NewString(),
		Version:    compat.Current().String(),
	}
}

// Validate checks the message envelope. The version string itself is
// never validated here; malformed peer versions are absorbed by the
// compatibility check, not rejected at the message boundary.
func (m *VersionCheck) Validate() error {
	if m.MsgType != MsgVersionCheck {
		return fmt.Errorf("%w: unexpected message type %d", ErrInvalidMessage, m.MsgType)
	}
	if m.ExchangeID == "" {
		return fmt.Errorf("%w: missing exchange ID", ErrInvalidMessage)
	}
	return nil
}

// VersionAck answers a version check with the responder's own version
// and an accept/reject verdict.
// CBOR: { 1: msgType, 2: exchangeID, 3: version, 4: accepted, 5: errorCode }
type VersionAck struct {
	MsgType    uint8  `cbor:"1,keyasint"`
	ExchangeID string `cbor:"2,keyasint"`
	Version    string `cbor:"3,keyasint"`
	Accepted   bool   `cbor:"4,keyasint"`
	ErrorCode  uint8  `cbor:"5,keyasint"`
}

// Validate checks the message envelope.
func (m *VersionAck) Validate() error {
	if m.MsgType != MsgVersionAck {
		return fmt.Errorf("%w: unexpected message type %d", ErrInvalidMessage, m.MsgType)
	}
	if m.ExchangeID == "" {
		return fmt.Errorf("%w: missing exchange ID", ErrInvalidMessage)
	}
	return nil
}
