package cattle

import (
	"context"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

const (
	estimationsPath       = "/api/v1/weighings"
	estimationNotFoundMsg = "Estimación de peso no encontrada"
)

// EstimationFilter narrows a weight-estimation listing.
type EstimationFilter struct {
	AnimalID string
}

// ListWeightEstimations returns one page of weight estimations.
func (c *Client) ListWeightEstimations(ctx context.Context, q PageQuery, f EstimationFilter) (models.Page[models.WeightEstimation], error) {
	v := q.values()
	setIf(v, "animal_id", f.AnimalID)
	return getPage[models.WeightEstimation](ctx, c, estimationsPath, "weighings", v, estimationNotFoundMsg)
}

// ListWeightEstimationsByAnimal returns one page of an animal's history.
func (c *Client) ListWeightEstimationsByAnimal(ctx context.Context, animalID string, q PageQuery) (models.Page[models.WeightEstimation], error) {
	path := estimationsPath + "/animal/" + url.PathEscape(animalID)
	return getPage[models.WeightEstimation](ctx, c, path, "weighings", q.values(), animalNotFoundMsg)
}

// GetWeightEstimation fetches a single estimation.
func (c *Client) GetWeightEstimation(ctx context.Context, id string) (*models.WeightEstimation, error) {
	return getOne[models.WeightEstimation](ctx, c, estimationsPath+"/"+url.PathEscape(id), estimationNotFoundMsg)
}

// DeleteWeightEstimation removes an estimation.
func (c *Client) DeleteWeightEstimation(ctx context.Context, id string) error {
	return c.remove(ctx, estimationsPath+"/"+url.PathEscape(id), estimationNotFoundMsg)
}
