package api

import (
	"net/http"

	reqdto "storefront-partners/internal/handler/dto/request"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/handler/httperr"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PartnerHandler struct {
	cmds commands.PartnerCommands
	q    queries.PartnerQueries
}

func NewPartnerHandler(cmds commands.PartnerCommands, q queries.PartnerQueries) *PartnerHandler {
	return &PartnerHandler{cmds: cmds, q: q}
}

// @Summary Register partner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePartnerRequest true "Partner"
// @Success 201 {object} resdto.PartnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/partners [post]
func (h *PartnerHandler) Create(c *gin.Context) {
	var req reqdto.CreatePartnerRequest
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
	c.Header("Location", "/api/admin/partners/"+created.Code().String())
	c.JSON(http.StatusCreated, resdto.FromPartner(created))
}

// @Summary Change partner status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Partner code"
// @Param request body reqdto.ChangePartnerStatusRequest true "ACTIVE, SUSPENDED or INACTIVE"
// @Success 200 {object} resdto.PartnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/partners/{code}/status [patch]
func (h *PartnerHandler) ChangeStatus(c *gin.Context) {
	var req reqdto.ChangePartnerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	updated, err := h.cmds.ChangeStatus(c.Request.Context(), c.Param("code"), req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartner(updated))
}

// @Summary Update partner profile
// @Description Omitted fields keep their stored values. Bank details must end up complete or empty.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Partner code"
// @Param request body reqdto.UpdatePartnerProfileRequest true "Profile patch"
// @Success 200 {object} resdto.PartnerResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/partners/{code} [patch]
func (h *PartnerHandler) UpdateProfile(c *gin.Context) {
	var req reqdto.UpdatePartnerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	updated, err := h.cmds.UpdateProfile(c.Request.Context(), c.Param("code"), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartner(updated))
}

// @Summary Get partner
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Partner code"
// @Success 200 {object} resdto.PartnerResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/partners/{code} [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	view, err := h.q.GetPartner(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnerView(view))
}

// @Summary List partner commissions
// @Description Newest first, keyset paginated
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Partner code"
// @Param status query string false "PENDING, APPROVED, REJECTED or PAID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.CommissionPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/partners/{code}/commissions [get]
func (h *PartnerHandler) ListCommissions(c *gin.Context) {
	var query reqdto.ListCommissionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}
	items, next, err := h.q.ListCommissions(
		c.Request.Context(),
		c.Param("code"),
		queries.CommissionFilters{Status: query.Status},
		&queries.Cursor{After: query.After},
		query.Limit,
	)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionPage(items, next))
}

// @Summary Partner balance
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param code path string true "Partner code"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/partners/{code}/balance [get]
func (h *PartnerHandler) GetBalance(c *gin.Context) {
	balance, err := h.q.GetBalance(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalance(balance))
}
