package api

import (
	"net/http"

	reqdto "storefront-partners/internal/handler/dto/request"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	cmds commands.CouponCommands
}

func NewCouponHandler(cmds commands.CouponCommands) *CouponHandler {
	return &CouponHandler{cmds: cmds}
}

// @Summary Validate coupon
// @Description Price a coupon against a cart subtotal without redeeming it
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon and subtotal"
// @Success 200 {object} resdto.CouponQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	quote, err := h.cmds.Validate(c.Request.Context(), req.Code, req.Subtotal)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponQuote(quote))
}

// @Summary Create coupon
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}
