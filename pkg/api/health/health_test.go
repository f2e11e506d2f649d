package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LambdaTest/coverage-bridge/pkg/global"
	"github.com/gin-gonic/gin"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name             string
		httpRequest      *http.Request
		wantResponseCode int
		wantStatusText   string
	}{
		{"Test handler health route for success", httptest.NewRequest(http.MethodGet, "/health", nil), 200, http.StatusText(http.StatusOK)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/health", Handler)
			router.ServeHTTP(resp, tt.httpRequest)

			if resp.Code != tt.wantResponseCode {
				t.Errorf("Handler() responseCode = %v, want = %v", resp.Code, tt.wantResponseCode)
				return
			}
			if resp.Body.String() != tt.wantStatusText {
				t.Errorf("Handler() statusText = %v, want = %v", resp.Body.String(), tt.wantStatusText)
			}
			if got := resp.Header().Get(VersionHeader); got != global.BinaryVersion {
				t.Errorf("Handler() version = %v, want = %v", got, global.BinaryVersion)
			}
		})
	}
}
