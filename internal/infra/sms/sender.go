package sms

import (
	"carflow/internal/notify"
	"carflow/internal/pkg/config"
)

// NewSender picks the delivery backend from configuration: the HTTP gateway
// when an API key is present, otherwise a logging sender for local
// development.
func NewSender(cfg config.SMSConfig) notify.Sender {
	if cfg.APIKey == "" {
		return NewLogSender()
	}
	return NewGateway(cfg)
}
