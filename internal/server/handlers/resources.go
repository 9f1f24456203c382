package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/views"
	"github.com/Angello-27/bovine-weight-estimation-sub001/pkg/clients/cattle"
)

// ListFarms serves the farm table.
func (h *Handler) ListFarms(c *gin.Context) {
	st, ok := h.bindList(c)
	if !ok {
		return
	}
	res, err := h.views.ListFarms(c.Request.Context(), st, cattle.FarmFilter{OwnerID: c.Query("owner_id")})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetFarm serves the farm detail view.
func (h *Handler) GetFarm(c *gin.Context) {
	detail, err := h.views.FarmDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateFarm validates and creates a farm.
func (h *Handler) CreateFarm(c *gin.Context) {
	var in models.FarmInput
	if !h.bindJSON(c, &in) {
		return
	}
	farm, err := h.views.CreateFarm(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, farm)
}

// UpdateFarm validates and updates a farm.
func (h *Handler) UpdateFarm(c *gin.Context) {
	var in models.FarmInput
	if !h.bindJSON(c, &in) {
		return
	}
	farm, err := h.views.UpdateFarm(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, farm)
}

// DeleteFarm removes a farm.
func (h *Handler) DeleteFarm(c *gin.Context) {
	if err := h.views.DeleteFarm(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers serves the user table.
func (h *Handler) ListUsers(c *gin.Context) {
	st, ok := h.bindList(c)
	if !ok {
		return
	}
	f := cattle.UserFilter{RoleID: c.Query("role_id"), FarmID: c.Query("farm_id"), Search: c.Query("search")}
	res, err := h.views.ListUsers(c.Request.Context(), st, f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUser serves the user detail view.
func (h *Handler) GetUser(c *gin.Context) {
	detail, err := h.views.UserDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListRoles serves the role table.
func (h *Handler) ListRoles(c *gin.Context) {
	st, ok := h.bindList(c)
	if !ok {
		return
	}
	res, err := h.views.ListRoles(c.Request.Context(), st)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetRole serves the role detail view.
func (h *Handler) GetRole(c *gin.Context) {
	detail, err := h.views.RoleDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListAnimals serves the animal table.
func (h *Handler) ListAnimals(c *gin.Context) {
	st, ok := h.bindList(c)
	if !ok {
		return
	}
	f := cattle.AnimalFilter{
		FarmID: c.Query("farm_id"),
		Breed:  models.Breed(c.Query("breed")),
		Status: models.AnimalStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	res, err := h.views.ListAnimals(c.Request.Context(), st, f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListAlerts serves the alert table.
func (h *Handler) ListAlerts(c *gin.Context) {
	st, ok := h.bindList(c)
	if !ok {
		return
	}
	f := cattle.AlertFilter{FarmID: c.Query("farm_id"), Status: models.AlertStatus(c.Query("status")), Type: c.Query("type")}
	res, err := h.views.ListAlerts(c.Request.Context(), st, f)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListEstimations serves the estimation browser.
func (h *Handler) ListEstimations(c *gin.Context) {
	var q views.EstimationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperr.New(apperr.KindValidation, apperr.MsgInvalidInput))
		return
	}
	res, err := h.views.Estimations(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteEstimation removes an estimation.
func (h *Handler) DeleteEstimation(c *gin.Context) {
	if err := h.views.DeleteEstimation(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearEstimationCache drops the cached estimation list.
func (h *Handler) ClearEstimationCache(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
