package reportdelivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/gigpay/internal/domain"
	"github.com/gigpay/gigpay/internal/middleware"
	"github.com/gigpay/gigpay/pkg/errorspkg"
)

type stubProfiles struct {
	profiles map[int64]domain.Profile
}

func (s stubProfiles) Get(ctx context.Context, id int64) (domain.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return domain.Profile{}, domain.ErrProfileNotFound
	}

	return p, nil
}

func newTestServer(h *Handler, profiles stubProfiles) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()

	authRoutes := server.Group("/").Use(middleware.ProfileAuth(profiles))
	authRoutes.GET("/admin/best-profession", h.BestProfessions)
	authRoutes.GET("/admin/best-clients", h.BestClients)
	authRoutes.GET("/balances/outstanding", h.Outstanding)

	return server
}

func testProfiles() stubProfiles {
	return stubProfiles{profiles: map[int64]domain.Profile{
		1: {ID: 1, Type: domain.TypeClient},
	}}
}

func TestBestProfessionsAPI(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		buildStubs func(service *MockService)
		wantCode   int
	}{
		{
			name: "MissingStart",
			url:  "/admin/best-profession?end=2020-08-21",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestProfessions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "BadDateFormat",
			url:  "/admin/best-profession?start=21-08-2020&end=2020-08-21",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestProfessions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "InvertedRange",
			url:  "/admin/best-profession?start=2020-08-21&end=2020-08-01",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestProfessions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			url:  "/admin/best-profession?start=2020-08-01&end=2020-08-21",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestProfessions(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "OK",
			url:  "/admin/best-profession?start=2020-08-01&end=2020-08-21",
			buildStubs: func(service *MockService) {
				start := time.Date(2020, time.August, 1, 0, 0, 0, 0, time.UTC)
				end := time.Date(2020, time.August, 21, 0, 0, 0, 0, time.UTC)
				service.EXPECT().BestProfessions(gomock.Any(), gomock.Eq(start), gomock.Eq(end)).
					Times(1).
					Return([]domain.ProfessionEarnings{
						{Profession: "programmer", TotalEarned: decimal.RequireFromString("2683")},
					}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(NewHandler(service), testProfiles())

			request := httptest.NewRequest(http.MethodGet, tc.url, nil)
			request.Header.Set(middleware.ProfileHeaderKey, "1")

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantCode, recorder.Code, recorder.Body.String())
		})
	}
}

func TestBestClientsAPI(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		buildStubs func(service *MockService)
		wantCode   int
	}{
		{
			name: "DefaultLimit",
			url:  "/admin/best-clients?start=2020-08-01&end=2020-08-21",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int32(2))).
					Times(1).
					Return([]domain.ClientPayments{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "ExplicitLimit",
			url:  "/admin/best-clients?start=2020-08-01&end=2020-08-21&limit=5",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int32(5))).
					Times(1).
					Return([]domain.ClientPayments{
						{ID: 4, FullName: "Ash Ketchum", TotalPaid: decimal.RequireFromString("2020")},
					}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "InvalidLimit",
			url:  "/admin/best-clients?start=2020-08-01&end=2020-08-21&limit=0",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			url:  "/admin/best-clients?start=2020-08-01&end=2020-08-21",
			buildStubs: func(service *MockService) {
				service.EXPECT().BestClients(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(NewHandler(service), testProfiles())

			request := httptest.NewRequest(http.MethodGet, tc.url, nil)
			request.Header.Set(middleware.ProfileHeaderKey, "1")

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantCode, recorder.Code, recorder.Body.String())
		})
	}
}

func TestOutstandingAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().TotalOutstanding(gomock.Any(), gomock.Eq(int64(1))).
		Times(1).
		Return(decimal.RequireFromString("800"), nil)

	server := newTestServer(NewHandler(service), testProfiles())

	request := httptest.NewRequest(http.MethodGet, "/balances/outstanding", nil)
	request.Header.Set(middleware.ProfileHeaderKey, "1")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	require.Contains(t, recorder.Body.String(), "800")
}
