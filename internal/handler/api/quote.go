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

type QuoteHandler struct {
	cmds commands.QuoteCommands
	q    queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{cmds: cmds, q: q}
}

// @Summary Create quote
// @Description Create a quote for a customer, optionally with a manual price
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuoteRequest true "Create quote request"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateQuote(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.abortWithCommandError(c, err, "Create quote failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.QuoteID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quote", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQuoteView(view))
}

// @Summary Get quote
// @Description Get a quote with sync status and price breakdown
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrQuoteNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary List quotes
// @Description List quotes newest first
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QuoteListItemResponse
// @Failure 500 {object} map[string]string
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": resdto.FromQuoteList(items)})
}

// @Summary Update quote
// @Description Partially update customer name and trip parameters. Parameter
// @Description edits on a linked quote return out-of-sync with a debounced
// @Description recomputation running behind.
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.UpdateQuoteRequest true "Update quote request"
// @Success 200 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes/{id} [patch]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateQuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	state, err := h.cmds.UpdateQuote(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.abortWithCommandError(c, err, "Update quote failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingState(id, state))
}

// @Summary Set manual price
// @Description Set a human-entered total price; diverging from the resolved
// @Description price marks the quote custom
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.SetManualPriceRequest true "Manual price request"
// @Success 200 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/price [patch]
func (h *QuoteHandler) SetManualPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.SetManualPriceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	state, err := h.cmds.SetManualPrice(c.Request.Context(), id, req.AmountCents)
	if err != nil {
		h.abortWithCommandError(c, err, "Set manual price failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingState(id, state))
}

// @Summary Link package
// @Description Link a package to the quote and resolve its price; waits for
// @Description the resolution to settle
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Param request body reqdto.LinkPackageRequest true "Link package request"
// @Success 200 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/link [post]
func (h *QuoteHandler) Link(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.LinkPackageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	state, err := h.cmds.LinkPackage(c.Request.Context(), id, req.PackageID)
	if err != nil {
		h.abortWithCommandError(c, err, "Link package failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingState(id, state))
}

// @Summary Unlink package
// @Description Detach the linked package, keeping all other quote fields
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 200 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id}/unlink [post]
func (h *QuoteHandler) Unlink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	state, err := h.cmds.UnlinkPackage(c.Request.Context(), id)
	if err != nil {
		h.abortWithCommandError(c, err, "Unlink package failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricingState(id, state))
}

// @Summary Recalculate price
// @Description Re-run resolution with current parameters, also valid from
// @Description custom and error states
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 202 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/recalculate [post]
func (h *QuoteHandler) Recalculate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	state, err := h.cmds.Recalculate(c.Request.Context(), id)
	if err != nil {
		h.abortWithCommandError(c, err, "Recalculate failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromPricingState(id, state))
}

// @Summary Reset to calculated price
// @Description Abandon a manual override and re-derive the price
// @Tags quotes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 202 {object} resdto.QuoteSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotes/{id}/reset-price [post]
func (h *QuoteHandler) ResetPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	state, err := h.cmds.ResetToCalculated(c.Request.Context(), id)
	if err != nil {
		h.abortWithCommandError(c, err, "Reset price failed")
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromPricingState(id, state))
}

// @Summary Delete quote
// @Description Delete a quote
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteQuote(c.Request.Context(), id); err != nil {
		h.abortWithCommandError(c, err, "Delete quote failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuoteHandler) abortWithCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrQuoteNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quote not found", nil)
	case errors.Is(err, errs.ErrPackageNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
	case errors.Is(err, errs.ErrQuoteNotLinked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Quote is not linked to a package", nil)
	case errors.Is(err, errs.ErrArrivalInPast):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Arrival date must be in the future", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
