package cattle

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

const (
	rolesPath       = "/role"
	roleNotFoundMsg = "Rol no encontrado"
)

// ListRoles returns one page of roles.
func (c *Client) ListRoles(ctx context.Context, q OffsetQuery) (models.Page[models.Role], error) {
	return getPage[models.Role](ctx, c, rolesPath, "roles", q.values(), roleNotFoundMsg)
}

// GetRole fetches a single role.
func (c *Client) GetRole(ctx context.Context, id string) (*models.Role, error) {
	return getOne[models.Role](ctx, c, rolesPath+"/"+url.PathEscape(id), roleNotFoundMsg)
}

// CreateRole validates the input and creates the role.
func (c *Client) CreateRole(ctx context.Context, in models.RoleInput) (*models.Role, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Role](ctx, c, http.MethodPost, rolesPath, in, roleNotFoundMsg)
}

// UpdateRole validates the input and updates the role.
func (c *Client) UpdateRole(ctx context.Context, id string, in models.RoleInput) (*models.Role, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.Role](ctx, c, http.MethodPut, rolesPath+"/"+url.PathEscape(id), in, roleNotFoundMsg)
}

// DeleteRole removes a role.
func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.remove(ctx, rolesPath+"/"+url.PathEscape(id), roleNotFoundMsg)
}
