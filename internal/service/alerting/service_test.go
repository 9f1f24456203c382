package alerting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

type fakeSource struct {
	alerts  []models.Alert
	listErr error
	marked  []string
}

func (f *fakeSource) PendingAlerts(context.Context) ([]models.Alert, error) {
	return f.alerts, f.listErr
}

func (f *fakeSource) SetAlertStatus(_ context.Context, id string, status models.AlertStatus) (*models.Alert, error) {
	f.marked = append(f.marked, id+":"+string(status))
	return &models.Alert{ID: id, Status: status}, nil
}

type fakeSender struct {
	failFor string
	bodies  []string
}

func (f *fakeSender) SendText(_ context.Context, _, body string) (string, error) {
	if f.failFor != "" && body == f.failFor {
		return "", errors.New("send failed")
	}
	f.bodies = append(f.bodies, body)
	return "id", nil
}

func TestForwardPending(t *testing.T) {
	t.Parallel()
	src := &fakeSource{alerts: []models.Alert{
		{ID: "1", Title: "Vacunación"},
		{ID: "2", Title: "Pesaje"},
		{ID: "3", Title: "Revisión"},
	}}
	sender := &fakeSender{failFor: "[Alerta] Pesaje"}
	fw := NewForwarder(src, sender, "591", nil)

	sent, err := fw.ForwardPending(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"1:sent", "3:sent"}, src.marked)
}

func TestForwardPending_ListError(t *testing.T) {
	t.Parallel()
	fw := NewForwarder(&fakeSource{listErr: errors.New("down")}, &fakeSender{}, "591", nil)

	sent, err := fw.ForwardPending(context.Background())
	require.Error(t, err)
	assert.Zero(t, sent)
}

func TestFormatAlert(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

	got := FormatAlert(models.Alert{Title: "Vacunación", Message: "Lote 3", ScheduledAt: &at})
	assert.Equal(t, "[Alerta] Vacunación\nLote 3\nFecha: 2024-06-01 08:30", got)
}
