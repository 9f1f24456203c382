package cattle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

// GenerateReport asks the backend to render a report and returns the binary
// document.
func (c *Client) GenerateReport(ctx context.Context, req models.ReportRequest) ([]byte, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode report request: %w", err)
	}

	data, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/v1/reports/" + url.PathEscape(req.Type),
		body:     body,
		notFound: "Reporte no encontrado",
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
