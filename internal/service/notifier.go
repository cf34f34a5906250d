package service

import (
	"context"
	"log/slog"

	"castindex/internal/domain/services"
)

// logNotifier reports user notifications through the structured log. It
// stands in for the host's notification UI; delivery never fails the caller.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *slog.Logger) services.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, severity services.Severity, message string) {
	switch severity {
	case services.SeverityWarning:
		n.logger.Warn(message, "notification", true)
	default:
		n.logger.Info(message, "notification", true)
	}
}
