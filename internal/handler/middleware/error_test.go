//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"storefront-partners/internal/domain/partner"
	"storefront-partners/internal/handler/middleware"
	"storefront-partners/internal/pkg/errs"
	"storefront-partners/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		expectCode int
		expectMsg  string
	}{
		{
			name:       "categorized error attached without a response",
			handler:    func(c *gin.Context) { _ = c.Error(errs.Wrap(partner.ErrPartnerNotFound, "load partner")) },
			expectCode: http.StatusNotFound,
			expectMsg:  "partner not found",
		},
		{
			name:       "uncategorized error stays opaque",
			handler:    func(c *gin.Context) { _ = c.Error(errs.New("pq: connection reset")) },
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
		{
			name:       "panic is recovered",
			handler:    func(*gin.Context) { panic("boom") },
			expectCode: http.StatusInternalServerError,
			expectMsg:  "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
			router.GET("/x", tc.handler)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/x", nil, "")
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
		})
	}
}
