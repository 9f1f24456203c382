package cattle

import (
	"context"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// MLStatus reports which estimation models the backend has loaded.
func (c *Client) MLStatus(ctx context.Context) (*models.MLStatus, error) {
	return getOne[models.MLStatus](ctx, c, "/api/v1/ml/models/status", "Modelo no encontrado")
}
