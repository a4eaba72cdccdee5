package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHTTPErrorHandlerRouteNotFound(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	req := httptest.NewRequest(http.MethodGet, "/api/v1/none-such", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != true {
		t.Error("envelope error flag not set")
	}
	if body["message"] != "Route not found" {
		t.Errorf("message = %v", body["message"])
	}
	if body["data"] != nil {
		t.Errorf("data = %v, want null", body["data"])
	}
}

func TestHTTPErrorHandlerGenericError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != true {
		t.Error("envelope error flag not set")
	}
}
