package alerting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/whatsapp"
)

// Source is the alerts surface of the backend.
type Source interface {
	PendingAlerts(ctx context.Context) ([]models.Alert, error)
	SetAlertStatus(ctx context.Context, id string, status models.AlertStatus) (*models.Alert, error)
}

// Forwarder pushes pending backend alerts to a WhatsApp recipient.
type Forwarder struct {
	source Source
	sender whatsapp.Sender
	to     string
	logger *zap.Logger
}

// NewForwarder wires a new alert forwarder.
func NewForwarder(source Source, sender whatsapp.Sender, to string, logger *zap.Logger) *Forwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forwarder{source: source, sender: sender, to: to, logger: logger}
}

// ForwardPending sends every pending alert and marks it sent. It keeps going
// after a failed alert and returns the first error with the number sent.
func (f *Forwarder) ForwardPending(ctx context.Context) (int, error) {
	alerts, err := f.source.PendingAlerts(ctx)
	if err != nil {
		return 0, fmt.Errorf("load pending alerts: %w", err)
	}

	var firstErr error
	sent := 0
	for _, alert := range alerts {
		if err := f.forward(ctx, alert); err != nil {
			f.logger.Error("failed to forward alert", zap.String("alert_id", alert.ID), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sent++
	}

	if sent > 0 {
		f.logger.Info("alerts forwarded", zap.Int("sent", sent), zap.Int("pending", len(alerts)))
	}
	return sent, firstErr
}

func (f *Forwarder) forward(ctx context.Context, alert models.Alert) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := f.sender.SendText(ctxWithTimeout, f.to, FormatAlert(alert)); err != nil {
		return err
	}
	if _, err := f.source.SetAlertStatus(ctx, alert.ID, models.AlertSent); err != nil {
		return fmt.Errorf("mark alert %s sent: %w", alert.ID, err)
	}
	return nil
}

// FormatAlert renders an alert as a short text message.
func FormatAlert(alert models.Alert) string {
	var b strings.Builder
	b.WriteString("[Alerta] ")
	b.WriteString(alert.Title)
	if alert.Message != "" {
		b.WriteString("\n")
		b.WriteString(alert.Message)
	}
	if alert.ScheduledAt != nil {
		b.WriteString("\nFecha: ")
		b.WriteString(alert.ScheduledAt.Format("2006-01-02 15:04"))
	}
	return b.String()
}
