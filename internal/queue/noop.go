package queue

import "context"

var _ AuditQueue = (*Noop)(nil)

// Noop drops every event. Used by the CLI and in tests where no broker
// is running.
type Noop struct {
}

func NewNoop() *Noop {
	return &Noop{}
}

func (n *Noop) Publish(ctx context.Context, event *AuditEvent) error {
	return nil
}

func (n *Noop) Close() {
}
