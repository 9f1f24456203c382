package cattle

import (
	"context"
	"net/http"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

const syncPath = "/api/v1/sync"

type syncBatch[T any] struct {
	Items    []T    `json:"items"`
	DeviceID string `json:"device_id"`
}

// SyncAnimals pushes a batch of animals recorded offline.
func (c *Client) SyncAnimals(ctx context.Context, deviceID string, animals []models.Animal) (*models.SyncResult, error) {
	body := syncBatch[models.Animal]{Items: animals, DeviceID: deviceID}
	return send[models.SyncResult](ctx, c, http.MethodPost, syncPath+"/animals", body, "")
}

// SyncWeightEstimations pushes a batch of estimations recorded offline.
func (c *Client) SyncWeightEstimations(ctx context.Context, deviceID string, estimations []models.WeightEstimation) (*models.SyncResult, error) {
	body := syncBatch[models.WeightEstimation]{Items: estimations, DeviceID: deviceID}
	return send[models.SyncResult](ctx, c, http.MethodPost, syncPath+"/weighings", body, "")
}

// SyncHealth probes the sync subsystem.
func (c *Client) SyncHealth(ctx context.Context) (*models.SyncHealth, error) {
	return getOne[models.SyncHealth](ctx, c, syncPath+"/health", "")
}
