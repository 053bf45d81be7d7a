package handshake

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for handshake messages.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for handshake messages.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical, // Deterministic key ordering
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix, // Unix timestamps
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to be lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet, // Ignore duplicate keys (last wins)
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// EncodeVersionCheck encodes a version check message to CBOR bytes.
func EncodeVersionCheck(msg *VersionCheck) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid version check: %w", err)
	}
	return Marshal(msg)
}

// DecodeVersionCheck decodes a version check message from CBOR bytes.
func DecodeVersionCheck(data []byte) (*VersionCheck, error) {
	var msg VersionCheck
	if err := Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decoding version check: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid version check: %w", err)
	}
	return &msg, nil
}

// EncodeVersionAck encodes a version ack message to CBOR bytes.
func EncodeVersionAck(msg *VersionAck) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid version ack: %w", err)
	}
	return Marshal(msg)
}

// DecodeVersionAck decodes a version ack message from CBOR bytes.
func DecodeVersionAck(data []byte) (*VersionAck, error) {
	var msg VersionAck
	if err := Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decoding version ack: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid version ack: %w", err)
	}
	return &msg, nil
}
