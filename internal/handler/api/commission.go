package api

import (
	"net/http"

	reqdto "storefront-partners/internal/handler/dto/request"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CommissionHandler struct {
	cmds commands.CommissionCommands
}

func NewCommissionHandler(cmds commands.CommissionCommands) *CommissionHandler {
	return &CommissionHandler{cmds: cmds}
}

// @Summary Record commission
// @Description Credit a partner for an order. Repeating the same order and partner is a no-op.
// @Tags commissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordCommissionRequest true "Order credit"
// @Success 201 {object} resdto.CommissionResponse
// @Success 200 {object} resdto.CommissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/commissions [post]
func (h *CommissionHandler) Record(c *gin.Context) {
	var req reqdto.RecordCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.Record(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCommission(result.Commission))
}

// @Summary Review commission
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Commission ID"
// @Param request body reqdto.ReviewCommissionRequest true "APPROVE or REJECT"
// @Success 200 {object} resdto.CommissionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/commissions/{id}/review [post]
func (h *CommissionHandler) Review(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid commission id")
		return
	}
	var req reqdto.ReviewCommissionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.BadRequest(c, bindErr, "Invalid request")
		return
	}
	reviewed, err := h.cmds.Review(c.Request.Context(), id, req.Decision)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommission(reviewed))
}
