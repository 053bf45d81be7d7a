// negotiate-example runs a complete version exchange in-process:
// a client builds a version check, a server evaluates it, and the
// client evaluates the ack. Protocol events go to stderr via slog.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/parley-protocol/parley-go/pkg/compat"
	"github.com/parley-protocol/parley-go/pkg/feature"
	"github.com/parley-protocol/parley-go/pkg/handshake"
	"github.com/parley-protocol/parley-go/pkg/log"
)

func main() {
	peerWire := ""
	if len(os.Args) > 1 {
		peerWire = os.Args[1]
	}

	slogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	logger := log.NewSlogAdapter(slogger)

	// Client side: announce our version, or a caller-supplied one to
	// simulate a foreign peer.
	check := handshake.NewVersionCheck()
	if peerWire != "" {
		check.Version = peerWire
	}
	wire, err := handshake.EncodeVersionCheck(check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding version check: %v\n", err)
		os.Exit(1)
	}

	// Server side: decode and answer.
	received, err := handshake.DecodeVersionCheck(wire)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decoding version check: %v\n", err)
		os.Exit(1)
	}
	responder := handshake.NewResponder(feature.Translation, compat.Unbounded(), logger)
	ack, err := responder.Handle(received)
	if err != nil {
		fmt.Fprintf(os.Stderr, "handling version check: %v\n", err)
		os.Exit(1)
	}

	// Client side again: both verdicts gate interop.
	ok, err := handshake.Evaluate(ack, feature.Translation, compat.Unbounded())
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluating ack: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("local version:  %s\n", compat.Current())
	fmt.Printf("peer version:   %s\n", check.Version)
	fmt.Printf("server verdict: accepted=%v code=%d\n", ack.Accepted, ack.ErrorCode)
	fmt.Printf("client verdict: compatible=%v\n", ok)

	if !ok {
		os.Exit(2)
	}
}
