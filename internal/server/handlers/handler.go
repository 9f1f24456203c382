package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/views"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// ViewService is the admin panel view layer.
type ViewService interface {
	FarmDetail(ctx context.Context, id string) (*models.FarmDetail, error)
	RoleDetail(ctx context.Context, id string) (*models.RoleDetail, error)
	UserDetail(ctx context.Context, id string) (*models.UserDetail, error)
	ListFarms(ctx context.Context, st views.ListState, f cattle.FarmFilter) (views.ListResult[models.Farm], error)
	ListUsers(ctx context.Context, st views.ListState, f cattle.UserFilter) (views.ListResult[models.User], error)
	ListRoles(ctx context.Context, st views.ListState) (views.ListResult[models.Role], error)
	ListAnimals(ctx context.Context, st views.ListState, f cattle.AnimalFilter) (views.ListResult[models.Animal], error)
	ListAlerts(ctx context.Context, st views.ListState, f cattle.AlertFilter) (views.ListResult[models.Alert], error)
	Estimations(ctx context.Context, q views.EstimationQuery) (views.ListResult[models.WeightEstimation], error)
	DeleteEstimation(ctx context.Context, id string) error
	CreateFarm(ctx context.Context, in models.FarmInput) (*models.Farm, error)
	UpdateFarm(ctx context.Context, id string, in models.FarmInput) (*models.Farm, error)
	DeleteFarm(ctx context.Context, id string) error
}

// SessionService is the signed-in operator state.
type SessionService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.User, error)
	Logout()
	Current() (*models.User, error)
	Active() bool
}

// ReportService renders report downloads.
type ReportService interface {
	Download(ctx context.Context, req models.ReportRequest) (*models.Report, error)
}

// CacheService clears cached data.
type CacheService interface {
	Clear(ctx context.Context) error
}

// StatusService exposes backend health probes.
type StatusService interface {
	MLStatus(ctx context.Context) (*models.MLStatus, error)
	SyncHealth(ctx context.Context) (*models.SyncHealth, error)
}

// Handler adapts the view layer to HTTP.
type Handler struct {
	views   ViewService
	session SessionService
	reports ReportService
	cache   CacheService
	status  StatusService
	logger  *zap.Logger
}

// New constructs the HTTP handler adapter.
func New(v ViewService, s SessionService, r ReportService, c CacheService, st StatusService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{views: v, session: s, reports: r, cache: c, status: st, logger: logger}
}

var kindStatus = map[apperr.Kind]int{
	apperr.KindValidation:   http.StatusBadRequest,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindNetwork:      http.StatusBadGateway,
	apperr.KindServer:       http.StatusBadGateway,
}

// writeError renders err as {"error": message[, "field": name]}. A backend
// authorization failure ends the local session.
func (h *Handler) writeError(c *gin.Context, err error) {
	var de *apperr.Error
	if !errors.As(err, &de) {
		h.logger.Error("unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.MsgServer})
		return
	}

	if de.Kind == apperr.KindUnauthorized {
		h.session.Logout()
	}

	status, ok := kindStatus[de.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := gin.H{"error": de.Message, "kind": de.Kind}
	if de.Field != "" {
		body["field"] = de.Field
	}
	if status >= http.StatusBadGateway {
		h.logger.Warn("request failed", zap.String("path", c.FullPath()), zap.String("kind", string(de.Kind)), zap.Error(err))
	}
	c.JSON(status, body)
}

// RequireSession rejects requests without a signed-in operator.
func (h *Handler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.session.Active() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.MsgUnauthorized, "kind": apperr.KindUnauthorized})
			return
		}
		c.Next()
	}
}

func (h *Handler) bindList(c *gin.Context) (views.ListState, bool) {
	var st views.ListState
	if err := c.ShouldBindQuery(&st); err != nil {
		h.writeError(c, apperr.Validation("page", "%s", apperr.MsgInvalidInput))
		return st, false
	}
	return st, true
}

func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Debug("invalid request body", zap.Error(err))
		h.writeError(c, apperr.New(apperr.KindValidation, apperr.MsgInvalidInput))
		return false
	}
	return true
}
