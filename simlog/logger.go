// Package simlog provides the structured logger shared by every package in
// the simulator. It wraps logrus so log lines from a single battle run can
// be correlated by the battle's UUID and filtered by round/actor.
package simlog

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger configured for CLI use: text formatting, full
// timestamps, and the given level. Pass logrus.InfoLevel for normal runs
// and logrus.DebugLevel to trace every scheduler decision.
func New(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

// Discard returns a logger that writes nowhere, for tests that want to
// exercise logging call sites without polluting `go test -v` output.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Fields builds the common field set attached to most battle log lines.
func Fields(battleID string, round int, actorID string) logrus.Fields {
	return logrus.Fields{
		"battle_id": battleID,
		"round":     round,
		"actor_id":  actorID,
	}
}
