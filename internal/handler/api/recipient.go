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

type RecipientHandler struct {
	cmds commands.RecipientCommands
	q    queries.RecipientQueries
}

func NewRecipientHandler(cmds commands.RecipientCommands, q queries.RecipientQueries) *RecipientHandler {
	return &RecipientHandler{cmds: cmds, q: q}
}

// @Summary Create recipient
// @Description Create a new bouquet recipient
// @Tags recipients
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRecipientRequest true "Create recipient request"
// @Success 201 {object} resdto.RecipientCreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /recipients [post]
func (h *RecipientHandler) Create(c *gin.Context) {
	var req reqdto.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.RecipientBindReason(err))
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateRecipient):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Recipient already exists")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid recipient name")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create recipient")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.NewRecipientCreated(view))
}

// @Summary Get recipient
// @Description Get a recipient by ID
// @Tags recipients
// @Produce json
// @Param id path string true "Recipient ID"
// @Success 200 {object} resdto.RecipientResponse
// @Failure 404 {object} httperr.Response
// @Router /recipients/{id} [get]
func (h *RecipientHandler) Get(c *gin.Context) {
	// An unparseable id cannot match any recipient, so it reads as absent
	// rather than malformed.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRecipientNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Recipient not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load recipient")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecipientView(view))
}
