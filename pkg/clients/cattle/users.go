package cattle

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

const (
	usersPath       = "/user"
	userNotFoundMsg = "Usuario no encontrado"
)

// UserFilter narrows a user listing.
type UserFilter struct {
	RoleID string
	FarmID string
	Search string
}

// ListUsers returns one page of users using the legacy skip/limit paging.
func (c *Client) ListUsers(ctx context.Context, q OffsetQuery, f UserFilter) (models.Page[models.User], error) {
	v := q.values()
	setIf(v, "role_id", f.RoleID)
	setIf(v, "farm_id", f.FarmID)
	setIf(v, "search", f.Search)
	return getPage[models.User](ctx, c, usersPath, "users", v, userNotFoundMsg)
}

// GetUser fetches a single user.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	return getOne[models.User](ctx, c, usersPath+"/"+url.PathEscape(id), userNotFoundMsg)
}

// CreateUser validates the input and creates the user.
func (c *Client) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.User](ctx, c, http.MethodPost, usersPath, in, userNotFoundMsg)
}

// UpdateUser validates the input and replaces the user's editable fields.
func (c *Client) UpdateUser(ctx context.Context, id string, in models.UserInput) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return send[models.User](ctx, c, http.MethodPut, usersPath+"/"+url.PathEscape(id), in, userNotFoundMsg)
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.remove(ctx, usersPath+"/"+url.PathEscape(id), userNotFoundMsg)
}
