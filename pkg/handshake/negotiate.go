package handshake

import (
	"time"

	"github.com/parley-protocol/parley-go/pkg/compat"
	"github.com/parley-protocol/parley-go/pkg/feature"
	"github.com/parley-protocol/parley-go/pkg/log"
)

// Responder evaluates incoming version checks against this process's
// own compatibility version. Responders are immutable and safe for
// concurrent use.
type Responder struct {
	feature    feature.ID
	acceptable compat.Range
	logger     log.Logger
}

// NewResponder creates a responder gating interop on the given feature
// and acceptable peer range. A nil logger disables logging.
func NewResponder(f feature.ID, acceptable compat.Range, logger log.Logger) *Responder {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Responder{feature: f, acceptable: acceptable, logger: logger}
}

// Handle evaluates a version check and builds the ack to send back.
// The only error is a strict-mode verification failure; production
// builds always answer, rejecting incompatible or malformed peers via
// the ack's error code.
func (r *Responder) Handle(check *VersionCheck) (*VersionAck, error) {
	r.logger.Log(log.Event{
		Timestamp:   time.Now(),
		ExchangeID:  check.ExchangeID,
		Direction:   log.DirectionIn,
		Category:    log.CategoryMessage,
		PeerVersion: check.Version,
	})

	ack := &VersionAck{
		MsgType:    MsgVersionAck,
		ExchangeID: check.ExchangeID,
		Version:    compat.Current().String(),
	}

	compatible, err := compat.CurrentCompatibleString(check.Version, r.feature, r.acceptable)
	if err != nil {
		r.logger.Log(log.Event{
			Timestamp:  time.Now(),
			ExchangeID: check.ExchangeID,
			Direction:  log.DirectionIn,
			Category:   log.CategoryError,
			Error:      err.Error(),
		})
		return nil, err
	}

	ack.Accepted = compatible
	switch {
	case compatible:
		ack.ErrorCode = AckOK
	case check.Version == "":
		ack.ErrorCode = AckMalformed
	default:
		ack.ErrorCode = AckIncompatible
	}

	r.logger.Log(log.Event{
		Timestamp:    time.Now(),
		ExchangeID:   check.ExchangeID,
		Direction:    log.DirectionOut,
		Category:     log.CategoryVerdict,
		LocalVersion: ack.Version,
		PeerVersion:  check.Version,
		Feature:      r.feature.String(),
		Compatible:   compatible,
	})

	return ack, nil
}

// Evaluate is the initiator-side check of a received ack. Interop
// requires both verdicts: the responder must have accepted us, and the
// responder's announced version must be compatible with ours for the
// requested feature.
func Evaluate(ack *VersionAck, f feature.ID, acceptable compat.Range) (bool, error) {
	if !ack.Accepted {
		return false, nil
	}
	return compat.CurrentCompatibleString(ack.Version, f, acceptable)
}
