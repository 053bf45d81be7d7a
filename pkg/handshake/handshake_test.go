package handshake

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-protocol/parley-go/pkg/compat"
	"github.com/parley-protocol/parley-go/pkg/feature"
	"github.com/parley-protocol/parley-go/pkg/log"
)

// captureLogger records events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(e log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureLogger) byCategory(cat log.Category) []log.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []log.Event
	for _, e := range c.events {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func TestNewVersionCheck(t *testing.T) {
	check := NewVersionCheck()

	require.NoError(t, check.Validate())
	assert.Equal(t, MsgVersionCheck, check.MsgType)
	assert.Equal(t, compat.Current().String(), check.Version)

	_, err := uuid.Parse(check.ExchangeID)
	assert.NoError(t, err, "exchange ID should be a UUID")
}

func TestVersionCheck_EncodeDecode(t *testing.T) {
	check := NewVersionCheck()

	data, err := EncodeVersionCheck(check)
	require.NoError(t, err)

	decoded, err := DecodeVersionCheck(data)
	require.NoError(t, err)
	assert.Equal(t, check, decoded)
}

func TestVersionCheck_Validate(t *testing.T) {
	tests := []struct {
		name string
		msg  VersionCheck
	}{
		{"wrong type", VersionCheck{MsgType: MsgVersionAck, ExchangeID: "x"}},
		{"missing exchange ID", VersionCheck{MsgType: MsgVersionCheck}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.msg.Validate(), ErrInvalidMessage)
		})
	}
}

func TestVersionAck_EncodeDecode(t *testing.T) {
	ack := &VersionAck{
		MsgType:    MsgVersionAck,
		ExchangeID: uuid.NewString(),
		Version:    "1.0.0;1.0.0;1.0.0",
		Accepted:   true,
		ErrorCode:  AckOK,
	}

	data, err := EncodeVersionAck(ack)
	require.NoError(t, err)

	decoded, err := DecodeVersionAck(data)
	require.NoError(t, err)
	assert.Equal(t, ack, decoded)
}

func TestResponder_Handle_Compatible(t *testing.T) {
	logger := &captureLogger{}
	responder := NewResponder(feature.Translation, compat.Unbounded(), logger)

	check := &VersionCheck{
		MsgType:    MsgVersionCheck,
		ExchangeID: uuid.NewString(),
		Version:    compat.Current().String(),
	}

	ack, err := responder.Handle(check)
	require.NoError(t, err)
	assert.True(t, ack.Accepted)
	assert.Equal(t, AckOK, ack.ErrorCode)
	assert.Equal(t, check.ExchangeID, ack.ExchangeID)
	assert.Equal(t, compat.Current().String(), ack.Version)

	verdicts := logger.byCategory(log.CategoryVerdict)
	require.Len(t, verdicts, 1)
	assert.True(t, verdicts[0].Compatible)
	assert.Equal(t, log.DirectionOut, verdicts[0].Direction)
	assert.Equal(t, feature.Translation.String(), verdicts[0].Feature)
}

func TestResponder_Handle_Incompatible(t *testing.T) {
	responder := NewResponder(feature.Translation, compat.Unbounded(), nil)

	check := &VersionCheck{
		MsgType:    MsgVersionCheck,
		ExchangeID: uuid.NewString(),
		Version:    "9.0.0;1.0.0;1.0.0", // root major mismatch
	}

	ack, err := responder.Handle(check)
	require.NoError(t, err)
	assert.False(t, ack.Accepted)
	assert.Equal(t, AckIncompatible, ack.ErrorCode)
}

func TestResponder_Handle_BlankVersion(t *testing.T) {
	responder := NewResponder(feature.Root, compat.Unbounded(), nil)

	ack, err := responder.Handle(&VersionCheck{
		MsgType:    MsgVersionCheck,
		ExchangeID: uuid.NewString(),
	})
	require.NoError(t, err)
	assert.False(t, ack.Accepted)
	assert.Equal(t, AckMalformed, ack.ErrorCode)
}

func TestResponder_Handle_LegacyPeer(t *testing.T) {
	responder := NewResponder(feature.Translation, compat.Unbounded(), nil)

	ack, err := responder.Handle(&VersionCheck{
		MsgType:    MsgVersionCheck,
		ExchangeID: uuid.NewString(),
		Version:    "yes",
	})
	require.NoError(t, err)
	assert.True(t, ack.Accepted, "legacy sentinel peers are 1.0.0 across the board")
}

func TestEvaluate(t *testing.T) {
	current := compat.Current().String()

	tests := []struct {
		name string
		ack  VersionAck
		want bool
	}{
		{"accepted and compatible", VersionAck{Accepted: true, Version: current}, true},
		{"rejected by responder", VersionAck{Accepted: false, Version: current}, false},
		{"accepted but incompatible", VersionAck{Accepted: true, Version: "9.9.9"}, false},
		{"accepted with blank version", VersionAck{Accepted: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(&tt.ack, feature.Translation, compat.Unbounded())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandshake_EndToEnd(t *testing.T) {
	// Client builds a check, server answers, client evaluates.
	check := NewVersionCheck()
	wire, err := EncodeVersionCheck(check)
	require.NoError(t, err)

	received, err := DecodeVersionCheck(wire)
	require.NoError(t, err)

	responder := NewResponder(feature.Icons, compat.Unbounded(), nil)
	ack, err := responder.Handle(received)
	require.NoError(t, err)

	ackWire, err := EncodeVersionAck(ack)
	require.NoError(t, err)
	ackReceived, err := DecodeVersionAck(ackWire)
	require.NoError(t, err)

	ok, err := Evaluate(ackReceived, feature.Icons, compat.Unbounded())
	require.NoError(t, err)
	assert.True(t, ok)
}
