package service

import (
	"context"
)

// Account event types.
const (
	EventAccountRegistered = "account.registered"
)

// AccountEvent is published for other platform services (e.g. the notifier
// that greets new subscribers) whenever an account changes.
type AccountEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Login     string `json:"login"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for async processing
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
