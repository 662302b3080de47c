package service

import (
	"context"
	"time"
)

// Domain event types.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventShopCreated        = "shop.created"
	EventShopApproved       = "shop.approved"
	EventShopRejected       = "shop.rejected"
	EventShopDeactivated    = "shop.deactivated"
	EventRoleAssigned       = "role.assigned"
)

// DomainEvent is a fact emitted after a committed state change.
type DomainEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        string         `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	ShopID      string         `json:"shop_id,omitempty"`
	UserID      string         `json:"user_id,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a domain event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
