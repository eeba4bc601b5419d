package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"docshelf_app_echo/internal/loader"
	"docshelf_app_echo/internal/services"
)

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "session resolution failure maps to 401",
			err:      &loader.SessionResolutionError{Err: services.ErrNoSession},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bare missing session maps to 401",
			err:      services.ErrNoSession,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "listing fetch failure maps to 502",
			err:      &loader.ListingFetchError{FolderID: "f-1", Err: errors.New("backend down")},
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "missing node maps to 404",
			err:      services.ErrNodeNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			// Loading an unknown or foreign folder wraps not-found in the
			// fetch error; the missing node wins over the 502 mapping.
			name:     "fetch of missing folder maps to 404",
			err:      &loader.ListingFetchError{FolderID: "f-2", Err: services.ErrNodeNotFound},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "move into own subtree maps to 400",
			err:      services.ErrInvalidMove,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing record maps to 404",
			err:      gorm.ErrRecordNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "http error passes through",
			err:      echo.NewHTTPError(http.StatusForbidden, "nope"),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/inbox", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			CustomErrorHandler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantCode)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("response body has no error message")
			}
		})
	}
}
