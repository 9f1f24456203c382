package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/session"
)

type loginRequest struct {
	models.Credentials
	Remember bool `json:"remember"`
}

// Login starts a session and optionally remembers the credentials in a
// cookie for seven days.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.session.Login(c.Request.Context(), req.Credentials)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if req.Remember {
		value, err := session.EncodeRemembered(req.Credentials, time.Now())
		if err == nil {
			c.SetCookie(session.RememberCookie, value, int(session.RememberFor.Seconds()), "/", "", false, true)
		}
	} else {
		c.SetCookie(session.RememberCookie, "", -1, "/", "", false, true)
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout ends the session.
func (h *Handler) Logout(c *gin.Context) {
	h.session.Logout()
	c.Status(http.StatusNoContent)
}

// Me returns the signed-in user.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.session.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Remembered returns credentials saved by a previous "remember me" login so
// the login form can be prefilled.
func (h *Handler) Remembered(c *gin.Context) {
	value, err := c.Cookie(session.RememberCookie)
	if err != nil || value == "" {
		c.Status(http.StatusNoContent)
		return
	}
	creds, err := session.DecodeRemembered(value, time.Now())
	if err != nil {
		c.SetCookie(session.RememberCookie, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, creds)
}
