package sms

import (
	"context"
	"log/slog"

	"carflow/internal/notify"
)

// LogSender writes messages to the log instead of a provider. Used when no
// API key is configured.
type LogSender struct{}

func NewLogSender() notify.Sender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, pattern, recipient string, params []string) error {
	slog.Info("sms (log only)",
		"pattern", pattern,
		"recipient", recipient,
		"params", params)
	return nil
}
