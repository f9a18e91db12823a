package api

import (
	"net/http"

	reqdto "storefront-partners/internal/handler/dto/request"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	attribution commands.AttributionCommands
	orders      commands.OrderCommands
}

func NewOrderHandler(attribution commands.AttributionCommands, orders commands.OrderCommands) *OrderHandler {
	return &OrderHandler{attribution: attribution, orders: orders}
}

// @Summary Resolve attribution
// @Description Report which partner an order would be credited to, without writing anything
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResolveAttributionRequest true "Session, user and coupon"
// @Success 200 {object} resdto.AttributionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/attribution/resolve [post]
func (h *OrderHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveAttributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.attribution.Resolve(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolveResult(result))
}

// @Summary Finalize order
// @Description Redeem the coupon, attribute the order and record its commission once.
// @Description Replays return the stored outcome with 200.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FinalizeOrderRequest true "Paid order"
// @Success 201 {object} resdto.FinalizeOrderResponse
// @Success 200 {object} resdto.FinalizeOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders/finalize [post]
func (h *OrderHandler) Finalize(c *gin.Context) {
	var req reqdto.FinalizeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.orders.Finalize(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromFinalizeResult(result))
}
