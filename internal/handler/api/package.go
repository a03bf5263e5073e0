package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tourdesk/internal/handler/dto/request"
	resdto "tourdesk/internal/handler/dto/response"
	"tourdesk/internal/handler/httperr"
	"tourdesk/internal/pkg/errs"
	"tourdesk/internal/usecase/commands"
	"tourdesk/internal/usecase/queries"
)

type PackageHandler struct {
	cmds commands.PackageCommands
	q    queries.PackageQueries
}

func NewPackageHandler(cmds commands.PackageCommands, q queries.PackageQueries) *PackageHandler {
	return &PackageHandler{cmds: cmds, q: q}
}

// @Summary Create package
// @Description Create a tour package with its full pricing table
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Create package request"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /packages [post]
func (h *PackageHandler) Create(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreatePackage(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.abortWithCommandError(c, err, "Create package failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.PackageID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load package", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPackageView(view))
}

// @Summary Get package
// @Description Get a package with its pricing table
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /packages/{id} [get]
func (h *PackageHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrPackageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary List packages
// @Description List packages newest first
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PackageListItemResponse
// @Failure 500 {object} map[string]string
// @Router /packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": resdto.FromPackageList(items)})
}

// @Summary Update package pricing
// @Description Replace the pricing table and bump the package version
// @Tags packages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.UpdatePricingRequest true "Update pricing request"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /packages/{id}/pricing [put]
func (h *PackageHandler) UpdatePricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdatePricingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if _, err = h.cmds.UpdatePricing(c.Request.Context(), id, req.ToCommand()); err != nil {
		h.abortWithCommandError(c, err, "Update pricing failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load package", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Delete package
// @Description Delete a package that no quote links to
// @Tags packages
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /packages/{id} [delete]
func (h *PackageHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeletePackage(c.Request.Context(), id); err != nil {
		h.abortWithCommandError(c, err, "Delete package failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PackageHandler) abortWithCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errors.Is(err, errs.ErrPackageInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Package is linked by existing quotes", nil)
	case errors.Is(err, errs.ErrVersionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Package was edited concurrently", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Pricing table validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
