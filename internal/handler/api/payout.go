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

type PayoutHandler struct {
	cmds commands.PayoutCommands
}

func NewPayoutHandler(cmds commands.PayoutCommands) *PayoutHandler {
	return &PayoutHandler{cmds: cmds}
}

// @Summary Run payout cycle
// @Description Pay every partner whose unpaid commissions reach the threshold
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RunPayoutCycleRequest false "Optional threshold override"
// @Success 200 {object} resdto.PayoutCycleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/payouts/run [post]
func (h *PayoutHandler) RunCycle(c *gin.Context) {
	var req reqdto.RunPayoutCycleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request")
			return
		}
	}
	result, err := h.cmds.RunCycle(c.Request.Context(), req.Threshold)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayoutCycle(result))
}

// @Summary Confirm settlement
// @Description Settlement callback. Success marks the payout and its commissions paid.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payout ID"
// @Param request body reqdto.SettlementCallbackRequest true "Outcome"
// @Success 200 {object} resdto.PayoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/payouts/{id}/settlement [post]
func (h *PayoutHandler) ConfirmSettlement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid payout id")
		return
	}
	var req reqdto.SettlementCallbackRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.BadRequest(c, bindErr, "Invalid request")
		return
	}
	p, err := h.cmds.ConfirmSettlement(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayout(p))
}
