//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/handler/api"
	resdto "storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/pkg/ptr"
	"storefront-partners/internal/usecase/commands"
	"storefront-partners/internal/usecase/queries"
	"storefront-partners/tests/common/builder"
	"storefront-partners/tests/common/httptest"
	"storefront-partners/tests/common/testutil"
	commandsmock "storefront-partners/tests/mock/commands"
	queriesmock "storefront-partners/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PartnerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPartnerCommands
	mockQueries  *queriesmock.MockPartnerQueries
}

func (s *PartnerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPartnerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPartnerQueries(s.mockCtrl)
	h := api.NewPartnerHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/partners", h.Create)
	s.router.GET("/partners/:code", h.Get)
	s.router.PATCH("/partners/:code", h.UpdateProfile)
	s.router.PATCH("/partners/:code/status", h.ChangeStatus)
	s.router.GET("/partners/:code/commissions", h.ListCommissions)
	s.router.GET("/partners/:code/balance", h.GetBalance)
}

func (s *PartnerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPartnerHandlerSuite(t *testing.T) {
	suite.Run(t, new(PartnerHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PartnerHandlerTestSuite) TestCreate() {
	url := "/partners"
	b := builder.NewPartnerBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: 201 with masked bank account and Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreatePartnerRequest{
			Code:          "OPTIC01",
			Name:          "Optic Reviews Blog",
			Level:         "AFFILIATE",
			BankName:      "Mizuho",
			AccountNumber: "1234567",
			AccountHolder: "Optic Reviews LLC",
		}).Return(b.MustBuild(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin")

		var body resdto.PartnerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("OPTIC01", body.Code)
		s.Equal("***4567", body.BankAccountMasked)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/admin/partners/OPTIC01"})
	})

	s.Run("error: 400 on validation errors", func() {
		for _, field := range []string{"code", "name", "level"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "admin")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 on duplicate code", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, partner.ErrDuplicateCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "partner code already registered")
	})
}

// ================================================================================
// TestGet / TestUpdate
// ================================================================================

func (s *PartnerHandlerTestSuite) TestGet() {
	view := builder.NewPartnerBuilder().BuildView()

	s.Run("success: 200 with view", func() {
		s.mockQueries.EXPECT().GetPartner(gomock.Any(), "optic01").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/optic01", nil, "admin")
		var body resdto.PartnerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.BankAccountMasked, body.BankAccountMasked)
	})

	s.Run("error: 404 for unknown code", func() {
		s.mockQueries.EXPECT().GetPartner(gomock.Any(), "GHOST").Return(nil, partner.ErrPartnerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/GHOST", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "partner not found")
	})
}

func (s *PartnerHandlerTestSuite) TestUpdate() {
	s.Run("success: status change", func() {
		suspended := builder.NewPartnerBuilder().AsSuspended().MustBuild()
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), "OPTIC01", "SUSPENDED").Return(suspended, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/partners/OPTIC01/status",
			map[string]any{"status": "SUSPENDED"}, "admin")
		var body resdto.PartnerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("SUSPENDED", body.Status)
	})

	s.Run("success: profile patch passes only given fields", func() {
		updated := builder.NewPartnerBuilder().MustBuild()
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), "OPTIC01", commands.UpdatePartnerProfileRequest{
			AccountNumber: ptr.To("9999999"),
		}).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/partners/OPTIC01",
			map[string]any{"account_number": "9999999"}, "admin")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for incomplete bank details", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, partner.ErrIncompleteBankInfo).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/partners/OPTIC01",
			map[string]any{"bank_name": "Resona"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "must be given together")
	})
}

// ================================================================================
// TestListCommissions / TestGetBalance
// ================================================================================

func (s *PartnerHandlerTestSuite) TestListCommissions() {
	items := []*queries.CommissionListItem{
		{ID: uuid.New(), OrderID: "ORD-2", Amount: 500, Status: "APPROVED"},
		{ID: uuid.New(), OrderID: "ORD-1", Amount: 250, Status: "APPROVED"},
	}

	s.Run("success: page with next cursor and filters passed through", func() {
		s.mockQueries.EXPECT().ListCommissions(gomock.Any(), "OPTIC01",
			queries.CommissionFilters{Status: ptr.To("APPROVED")}, &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/partners/OPTIC01/commissions?status=APPROVED&after=abc&limit=2", nil, "admin")

		var body resdto.CommissionPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("ORD-2", body.Items[0].OrderID)
		s.Equal("next", body.NextCursor)
	})

	s.Run("error: 400 on a limit above the maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/OPTIC01/commissions?limit=500", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on a tampered cursor", func() {
		s.mockQueries.EXPECT().ListCommissions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/OPTIC01/commissions?after=zzz", nil, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid pagination cursor")
	})
}

func (s *PartnerHandlerTestSuite) TestGetBalance() {
	s.mockQueries.EXPECT().GetBalance(gomock.Any(), "OPTIC01").Return(&queries.PartnerBalance{
		Code: "OPTIC01", PendingAmount: 1000, ApprovedAmount: 199000, UnpaidAmount: 200000,
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/partners/OPTIC01/balance", nil, "admin")

	var body resdto.BalanceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(int64(200000), body.UnpaidAmount)
}
