package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bistro/api-gateway/internal/gateway"
	"bistro/api-gateway/internal/mocks"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantURL   string
		wantCode  int
		setHeader bool
	}{
		{name: "menu", method: http.MethodGet, path: "/api/menu", wantURL: "http://order-svc/api/menu", wantCode: http.StatusOK},
		{name: "cart with session", method: http.MethodPost, path: "/api/cart/items", wantURL: "http://order-svc/api/cart/items", wantCode: http.StatusCreated, setHeader: true},
		{name: "checkout", method: http.MethodPost, path: "/api/checkout", wantURL: "http://order-svc/api/checkout", wantCode: http.StatusCreated, setHeader: true},
		{name: "dashboard with query", method: http.MethodGet, path: "/api/dashboard/top-items?period=week", wantURL: "http://dashboard-svc/api/dashboard/top-items?period=week", wantCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				OrderSvcURL:     "http://order-svc",
				DashboardSvcURL: "http://dashboard-svc",
			}, mockClient)

			mockResp := &http.Response{
				StatusCode: testCase.wantCode,
				Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
				Header:     make(http.Header),
			}
			mockResp.Header.Set("Content-Type", "application/json")

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				if req.URL.String() != testCase.wantURL || req.Method != testCase.method {
					return false
				}
				return !testCase.setHeader || req.Header.Get("X-Session-ID") == "s1"
			})).Return(mockResp, nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			if testCase.setHeader {
				req.Header.Set("X-Session-ID", "s1")
			}
			rr := httptest.NewRecorder()

			gw.RouteHandler(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), `"ok":true`)
		})
	}
}

func TestGateway_RouteHandler_NonAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}
