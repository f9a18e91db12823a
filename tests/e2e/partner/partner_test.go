//go:build e2e

package partner_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"storefront-partners/internal/handler/dto/request"
	"storefront-partners/internal/handler/dto/response"
	"storefront-partners/internal/pkg/ptr"
	"storefront-partners/tests/common/authtest"
	"storefront-partners/tests/common/dbtest"
	"storefront-partners/tests/common/httptest"
	"storefront-partners/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	partnersURL    = "/api/admin/partners"
	partnerURL     = "/api/admin/partners/%s"
	statusURL      = "/api/admin/partners/%s/status"
	commissionsURL = "/api/admin/partners/%s/commissions"
	balanceURL     = "/api/admin/partners/%s/balance"
	reviewURL      = "/api/admin/commissions/%s/review"
)

type PartnerSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *PartnerSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *PartnerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPartnerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PartnerSuite))
}

// =============================================================================
// Partner directory
// =============================================================================

func (s *PartnerSuite) TestCreatePartner() {
	s.Run("Normal case: admin registers a partner and reads it back masked", func() {
		t := s.T()
		token := s.jwt.AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, partnersURL, request.CreatePartnerRequest{
			Code:          "lensguide",
			Name:          "Lens Guide",
			Level:         "AGENT",
			BankName:      "MUFG",
			AccountNumber: "7654321",
			AccountHolder: "Lens Guide KK",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Location": "/api/admin/partners/LENSGUIDE"})

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(partnerURL, "LENSGUIDE"), nil, token)
		var got response.PartnerResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &got)

		want := response.PartnerResponse{
			Code:              "LENSGUIDE",
			Name:              "Lens Guide",
			Level:             "AGENT",
			Status:            "ACTIVE",
			BankName:          "MUFG",
			BankAccountMasked: "***4321",
		}
		opts := cmpopts.IgnoreFields(response.PartnerResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("partner mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: duplicate code", func() {
		t := s.T()
		dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, partnersURL,
			request.CreatePartnerRequest{Code: "OPTIC01", Name: "Copy", Level: "AFFILIATE"}, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "partner code already registered")
	})

	s.Run("Error case: partial bank details", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, partnersURL,
			request.CreatePartnerRequest{Code: "HALF01", Name: "Half", Level: "AFFILIATE", BankName: "MUFG"}, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "must be given together")
	})

	s.Run("Auth test: service token cannot reach admin routes", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, partnersURL,
			request.CreatePartnerRequest{Code: "NOPE01", Name: "Nope", Level: "AFFILIATE"}, s.jwt.ServiceToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *PartnerSuite) TestChangeStatusAndProfile() {
	s.Run("Normal case: suspend then reactivate", func() {
		t := s.T()
		dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})
		token := s.jwt.AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, "OPTIC01"),
			request.ChangePartnerStatusRequest{Status: "SUSPENDED"}, token)
		var res response.PartnerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "SUSPENDED", res.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, "OPTIC01"),
			request.ChangePartnerStatusRequest{Status: "SUSPENDED"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already has this status")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, "OPTIC01"),
			request.ChangePartnerStatusRequest{Status: "ACTIVE"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Normal case: adding bank details to a partner without them", func() {
		t := s.T()
		dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(partnerURL, "OPTIC01"),
			request.UpdatePartnerProfileRequest{
				BankName:      ptr.To("Resona"),
				AccountNumber: ptr.To("11112222"),
				AccountHolder: ptr.To("Optic Reviews"),
			}, s.jwt.AdminToken(t))
		var res response.PartnerResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "Resona", res.BankName)
		assert.Equal(t, "****2222", res.BankAccountMasked)
	})

	s.Run("Error case: unknown partner", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(partnerURL, "GHOST01"), nil, s.jwt.AdminToken(t))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "partner not found")
	})
}

// =============================================================================
// Commission listing, review and balance
// =============================================================================

func (s *PartnerSuite) TestCommissionsAndBalance() {
	s.Run("Normal case: keyset pages walk newest first", func() {
		t := s.T()
		id := dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})
		base := time.Now().Add(-time.Hour)
		for i, order := range []string{"ORD-1", "ORD-2", "ORD-3"} {
			dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{
				PartnerID: id, OrderID: order, Amount: 100, CreatedAt: base.Add(time.Duration(i) * time.Minute),
			})
		}
		token := s.jwt.AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(commissionsURL, "OPTIC01")+"?limit=2", nil, token)
		var page response.CommissionPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 2)
		assert.Equal(t, "ORD-3", page.Items[0].OrderID)
		assert.Equal(t, "ORD-2", page.Items[1].OrderID)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(commissionsURL, "OPTIC01")+"?limit=2&after="+page.NextCursor, nil, token)
		var next response.CommissionPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &next)
		require.Len(t, next.Items, 1)
		assert.Equal(t, "ORD-1", next.Items[0].OrderID)
		assert.Empty(t, next.NextCursor)
	})

	s.Run("Normal case: review moves amounts between balance buckets", func() {
		t := s.T()
		id := dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})
		pending := dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{PartnerID: id, Amount: 700, Status: "PENDING"})
		dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{PartnerID: id, Amount: 300, Status: "PENDING"})
		dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{PartnerID: id, Amount: 1000, Status: "PAID"})
		token := s.jwt.AdminToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reviewURL, pending),
			request.ReviewCommissionRequest{Decision: "APPROVE"}, token)
		var reviewed response.CommissionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviewed)
		assert.Equal(t, "APPROVED", reviewed.Status)
		assert.NotNil(t, reviewed.ReviewedAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reviewURL, pending),
			request.ReviewCommissionRequest{Decision: "REJECT"}, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		bw := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(balanceURL, "OPTIC01"), nil, token)
		var balance response.BalanceResponse
		httptest.AssertSuccessResponse(t, bw, http.StatusOK, &balance)
		assert.Equal(t, int64(300), balance.PendingAmount)
		assert.Equal(t, int64(700), balance.ApprovedAmount)
		assert.Equal(t, int64(1000), balance.PaidAmount)
		assert.Equal(t, int64(1000), balance.UnpaidAmount)
		assert.Equal(t, int64(3), balance.CommissionCount)
	})

	s.Run("Normal case: status filter", func() {
		t := s.T()
		id := dbtest.CreateTestPartner(t, s.DB, dbtest.PartnerFixture{Code: "OPTIC01"})
		dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{PartnerID: id, Amount: 100, Status: "PENDING"})
		dbtest.CreateTestCommission(t, s.DB, dbtest.CommissionFixture{PartnerID: id, Amount: 200, Status: "REJECTED"})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(commissionsURL, "OPTIC01")+"?status=rejected", nil, s.jwt.AdminToken(t))
		var page response.CommissionPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(200), page.Items[0].Amount)
	})
}
