// Package logging wires up zap, the structured logger SPEC_FULL.md's
// ambient stack names. No teacher file set up a logger (its services
// returned errors and let callers decide), so this follows zap's own
// documented production-config pattern: JSON encoding, ISO8601 timestamps,
// one global *zap.Logger built once at startup.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production zap logger, or a development one when
// development is true. Secrets (mnemonics, passphrases,
// private keys) must never be passed to it — callers log chain_type,
// index, and derived addresses, never seed material.
func New(development bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
