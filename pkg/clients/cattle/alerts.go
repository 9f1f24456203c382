package cattle

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

const (
	alertsPath       = "/api/v1/alerts"
	alertNotFoundMsg = "Alerta no encontrada"
)

// AlertFilter narrows an alert listing.
type AlertFilter struct {
	FarmID string
	Status models.AlertStatus
	Type   string
}

// ListAlerts returns one page of alerts.
func (c *Client) ListAlerts(ctx context.Context, q OffsetQuery, f AlertFilter) (models.Page[models.Alert], error) {
	v := q.values()
	setIf(v, "farm_id", f.FarmID)
	setIf(v, "status", string(f.Status))
	setIf(v, "type", f.Type)
	return getPage[models.Alert](ctx, c, alertsPath, "alerts", v, alertNotFoundMsg)
}

// PendingAlerts returns alerts that are due and not yet delivered.
func (c *Client) PendingAlerts(ctx context.Context) ([]models.Alert, error) {
	page, err := getPage[models.Alert](ctx, c, alertsPath+"/pending", "alerts", nil, alertNotFoundMsg)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateAlert validates the input and creates the alert.
func (c *Client) CreateAlert(ctx context.Context, in models.AlertInput) (*models.Alert, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Alert](ctx, c, http.MethodPost, alertsPath, in, alertNotFoundMsg)
}

// UpdateAlert updates an alert.
func (c *Client) UpdateAlert(ctx context.Context, id string, in models.AlertInput) (*models.Alert, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Alert](ctx, c, http.MethodPut, alertsPath+"/"+url.PathEscape(id), in, alertNotFoundMsg)
}

// SetAlertStatus patches only the status of an alert.
func (c *Client) SetAlertStatus(ctx context.Context, id string, status models.AlertStatus) (*models.Alert, error) {
	body := map[string]models.AlertStatus{"status": status}
	return send[models.Alert](ctx, c, http.MethodPatch, alertsPath+"/"+url.PathEscape(id), body, alertNotFoundMsg)
}

// DeleteAlert removes an alert.
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.remove(ctx, alertsPath+"/"+url.PathEscape(id), alertNotFoundMsg)
}
