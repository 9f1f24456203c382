package cattle

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

const (
	farmsPath       = "/farm"
	farmNotFoundMsg = "Finca no encontrada"
)

// FarmFilter narrows a farm listing.
type FarmFilter struct {
	OwnerID string
}

// ListFarms returns one page of farms.
func (c *Client) ListFarms(ctx context.Context, q OffsetQuery, f FarmFilter) (models.Page[models.Farm], error) {
	v := q.values()
	setIf(v, "owner_id", f.OwnerID)
	return getPage[models.Farm](ctx, c, farmsPath, "farms", v, farmNotFoundMsg)
}

// GetFarm fetches a single farm.
func (c *Client) GetFarm(ctx context.Context, id string) (*models.Farm, error) {
	return getOne[models.Farm](ctx, c, farmsPath+"/"+url.PathEscape(id), farmNotFoundMsg)
}

// CreateFarm validates the input and creates the farm. Invalid input never
// reaches the network.
func (c *Client) CreateFarm(ctx context.Context, in models.FarmInput) (*models.Farm, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Farm](ctx, c, http.MethodPost, farmsPath, in, farmNotFoundMsg)
}

// UpdateFarm validates the input and updates the farm.
func (c *Client) UpdateFarm(ctx context.Context, id string, in models.FarmInput) (*models.Farm, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Farm](ctx, c, http.MethodPut, farmsPath+"/"+url.PathEscape(id), in, farmNotFoundMsg)
}

// DeleteFarm removes a farm.
func (c *Client) DeleteFarm(ctx context.Context, id string) error {
	return c.remove(ctx, farmsPath+"/"+url.PathEscape(id), farmNotFoundMsg)
}
