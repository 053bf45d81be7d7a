package log

import (
	"time"
)

// Event represents a negotiation log event. CBOR encoding uses integer
// keys for compactness so hosts can persist events in wire form.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ExchangeID correlates the request/response pair (UUID).
	ExchangeID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// LocalVersion is our own wire-format version string.
	LocalVersion string `cbor:"5,keyasint,omitempty"`

	// PeerVersion is the peer's wire-format version string as received.
	PeerVersion string `cbor:"6,keyasint,omitempty"`

	// Feature names the feature the verdict applies to.
	Feature string `cbor:"7,keyasint,omitempty"`

	// Compatible is the verdict, set on CategoryVerdict events.
	Compatible bool `cbor:"8,keyasint,omitempty"`

	// Error carries the failure description on CategoryError events.
	Error string `cbor:"9,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a version-exchange message.
	CategoryMessage Category = 0
	// CategoryVerdict indicates a compatibility decision.
	CategoryVerdict Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryVerdict:
		return "VERDICT"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
