package cattle

import (
	"context"
	"net/http"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/validation"
)

// Login exchanges credentials for an access token. The token is not stored
// on the client; callers decide via the session state.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Token, error) {
	if err := validation.Struct(creds); err != nil {
		return nil, err
	}
	token := new(models.Token)
	if _, err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/v1/auth/login",
		body:     creds,
		result:   token,
		notFound: "Usuario no encontrado",
	}); err != nil {
		return nil, err
	}
	return token, nil
}

// Me returns the user owning the current token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	user := new(models.User)
	if _, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/v1/auth/me",
		result:   user,
		notFound: "Usuario no encontrado",
	}); err != nil {
		return nil, err
	}
	return user, nil
}
