package queue

import (
	"context"
	"time"
)

// Audit actions recorded by the service layer.
const (
	ActionSectionSaved = "SECTION_SAVED"
	ActionSearch       = "SEARCH"
	ActionDelete       = "DELETE"
)

// AuditEvent describes one read or write handed to the audit
// collaborator. The core never depends on delivery succeeding.
type AuditEvent struct {
	ID            string    `json:"id"`
	Action        string    `json:"action"`
	OwnerID       string    `json:"owner_id"`
	Entity        string    `json:"entity"`
	EntityID      string    `json:"entity_id"`
	Justification string    `json:"justification,omitempty"`
	At            time.Time `json:"at"`
}

// AuditQueue publishes audit events. Publish is fire-and-forget at the
// call site: errors are logged by the caller and dropped.
type AuditQueue interface {
	Publish(ctx context.Context, event *AuditEvent) error
	Close()
}
