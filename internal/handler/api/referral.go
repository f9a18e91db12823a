package api

import (
	"net/http"

	reqdto "storefront-partners/internal/handler/dto/request"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/pkg/config"
	"storefront-partners/internal/pkg/cookie"
	"storefront-partners/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReferralHandler struct {
	cmds      commands.ReferralCommands
	cookieCfg config.CookieConfig
}

func NewReferralHandler(cmds commands.ReferralCommands, cfg config.Config) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, cookieCfg: cfg.Cookie}
}

// @Summary Record referral click
// @Description Bind the browsing session to a partner for the attribution window
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body reqdto.RecordClickRequest true "Click"
// @Success 201 {object} resdto.ClickResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/referrals/clicks [post]
func (h *ReferralHandler) RecordClick(c *gin.Context) {
	var req reqdto.RecordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	cmd := req.ToCommand(cookie.GetReferralSession(c))
	if cmd.SessionID == "" {
		cmd.SessionID = uuid.NewString()
	}

	result, err := h.cmds.RecordClick(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetReferralSession(c, h.cookieCfg, result.Session.SessionID())
	c.JSON(http.StatusCreated, resdto.FromClickResult(result))
}
