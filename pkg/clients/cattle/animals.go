package cattle

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

const (
	animalsPath       = "/api/v1/animals"
	animalNotFoundMsg = "Animal no encontrado"
)

// AnimalFilter narrows an animal listing.
type AnimalFilter struct {
	FarmID string
	Breed  models.Breed
	Status models.AnimalStatus
	Search string
}

// ListAnimals returns one page of animals.
func (c *Client) ListAnimals(ctx context.Context, q PageQuery, f AnimalFilter) (models.Page[models.Animal], error) {
	v := q.values()
	setIf(v, "farm_id", f.FarmID)
	setIf(v, "breed", string(f.Breed))
	setIf(v, "status", string(f.Status))
	setIf(v, "search", f.Search)
	return getPage[models.Animal](ctx, c, animalsPath, "animals", v, animalNotFoundMsg)
}

// GetAnimal fetches a single animal.
func (c *Client) GetAnimal(ctx context.Context, id string) (*models.Animal, error) {
	return getOne[models.Animal](ctx, c, animalsPath+"/"+url.PathEscape(id), animalNotFoundMsg)
}

// CreateAnimal validates the input and registers the animal.
func (c *Client) CreateAnimal(ctx context.Context, in models.AnimalInput) (*models.Animal, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Animal](ctx, c, http.MethodPost, animalsPath, in, animalNotFoundMsg)
}

// UpdateAnimal validates the input and updates the animal.
func (c *Client) UpdateAnimal(ctx context.Context, id string, in models.AnimalInput) (*models.Animal, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Animal](ctx, c, http.MethodPut, animalsPath+"/"+url.PathEscape(id), in, animalNotFoundMsg)
}

// DeleteAnimal removes an animal.
func (c *Client) DeleteAnimal(ctx context.Context, id string) error {
	return c.remove(ctx, animalsPath+"/"+url.PathEscape(id), animalNotFoundMsg)
}
