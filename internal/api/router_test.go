package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kal1-linux/CouponCo/internal/api/dto"
	v1 "github.com/Kal1-linux/CouponCo/internal/api/v1"
	"github.com/Kal1-linux/CouponCo/internal/auth"
	"github.com/Kal1-linux/CouponCo/internal/service"
	"github.com/Kal1-linux/CouponCo/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	_ "github.com/Kal1-linux/CouponCo/docs/swagger"
)

type RouterSuite struct {
	testutil.BaseServiceTestSuite
	engine     *gin.Engine
	adminToken string
}

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	params := service.ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		Cache:          s.GetCache(),
		StoreRepo:      stores.StoreRepo,
		CouponRepo:     stores.CouponRepo,
		RedemptionRepo: stores.RedemptionRepo,
		CategoryRepo:   stores.CategoryRepo,
		EventRepo:      stores.EventRepo,
	}

	handlers := Handlers{
		Health:   v1.NewHealthHandler(),
		Store:    v1.NewStoreHandler(service.NewStoreService(params), service.NewMediaService(params), s.GetLogger()),
		Coupon:   v1.NewCouponHandler(service.NewCouponService(params), s.GetLogger()),
		Category: v1.NewCategoryHandler(service.NewCategoryService(params), s.GetLogger()),
		Event:    v1.NewEventHandler(service.NewEventService(params), s.GetLogger()),
	}
	s.engine = NewRouter(handlers, s.GetConfig(), s.GetLogger())

	token, err := auth.NewService(s.GetConfig()).GenerateToken("user_admin", true)
	s.Require().NoError(err)
	s.adminToken = token
}

func (s *RouterSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) createStore() string {
	rec := s.do(http.MethodPost, "/v1/admin/stores", dto.CreateStoreRequest{Name: "Acme"}, s.adminToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created dto.StoreResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	return created.ID
}

func (s *RouterSuite) TestStoreCouponRoutes() {
	storeID := s.createStore()

	// The coupon is created under the store in the path, no store_id in the body
	rec := s.do(http.MethodPost, fmt.Sprintf("/v1/admin/stores/%s/coupons", storeID), map[string]any{
		"title":    "10% off",
		"code":     "SAVE10",
		"kind":     "Codes",
		"due_date": time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}, s.adminToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, fmt.Sprintf("/v1/stores/%s/coupons", storeID), nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var listed dto.ListCouponsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Equal(1, listed.Total)
	s.Equal("SAVE10", listed.Items[0].Code)

	// The single-store read carries the same coupons
	rec = s.do(http.MethodGet, "/v1/stores/"+storeID, nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var got dto.StoreResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Coupons, 1)
	s.Equal("10% off", got.Coupons[0].Title)
}

func (s *RouterSuite) TestStoreFAQRoute() {
	storeID := s.createStore()

	rec := s.do(http.MethodPut, fmt.Sprintf("/v1/admin/stores/%s/faqs", storeID), map[string]any{
		"faq": []map[string]string{
			{"question": "Do codes stack?", "answer": "No"},
		},
	}, s.adminToken)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *RouterSuite) TestEventRoutes() {
	rec := s.do(http.MethodPost, "/v1/admin/events", dto.CreateEventRequest{Name: "Black Friday"}, s.adminToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/v1/events", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var listed dto.ListEventsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Equal(1, listed.Total)
	s.Equal("Black Friday", listed.Items[0].Name)
}

func (s *RouterSuite) TestAdminRoutesRequireToken() {
	rec := s.do(http.MethodPost, "/v1/admin/events", dto.CreateEventRequest{Name: "Black Friday"}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *RouterSuite) TestSwaggerDocServed() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"/stores/{id}/coupons"`)
}
