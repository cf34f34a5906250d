package services

import (
	"context"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notifier is the user notification sink. Delivery is fire-and-forget:
// implementations must never fail the calling operation.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}
