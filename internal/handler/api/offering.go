package api

import (
	"errors"
	"net/http"

	reqdto "ramillete/internal/handler/dto/request"
	resdto "ramillete/internal/handler/dto/response"
	"ramillete/internal/handler/httperr"
	"ramillete/internal/pkg/errs"
	"ramillete/internal/usecase/commands"
	"ramillete/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferingHandler struct {
	cmds commands.OfferingCommands
	q    queries.OfferingQueries
}

func NewOfferingHandler(cmds commands.OfferingCommands, q queries.OfferingQueries) *OfferingHandler {
	return &OfferingHandler{cmds: cmds, q: q}
}

// @Summary Create offering
// @Description Add an offering to a recipient's bouquet
// @Tags offerings
// @Accept json
// @Produce json
// @Param id path string true "Recipient ID"
// @Param request body reqdto.CreateOfferingRequest true "Create offering request"
// @Success 201 {object} resdto.OfferingCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /recipients/{id}/offerings [post]
func (h *OfferingHandler) Create(c *gin.Context) {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
		return
	}
	var req reqdto.CreateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.OfferingBindReason(err))
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), recipientID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRecipientNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offering data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create offering")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.NewOfferingCreated(view))
}

// @Summary List offerings
// @Description List a recipient's offerings, newest first
// @Tags offerings
// @Produce json
// @Param id path string true "Recipient ID"
// @Success 200 {array} resdto.OfferingResponse
// @Failure 404 {object} httperr.Response
// @Router /recipients/{id}/offerings [get]
func (h *OfferingHandler) List(c *gin.Context) {
	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
		return
	}
	items, err := h.q.ListByRecipient(c.Request.Context(), recipientID)
	if err != nil {
		if errors.Is(err, queries.ErrRecipientNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offerings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferingList(items))
}
