package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestAccountIDFromPath проверяет разбор идентификатора счета из пути.
func TestAccountIDFromPath(t *testing.T) {
	e := echo.New()
	want := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("accountId")
	c.SetParamValues(want.String())

	got, err := accountIDFromPath(c)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

// TestAccountIDFromPathInvalid проверяет отказ на мусорном идентификаторе.
func TestAccountIDFromPathInvalid(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("accountId")
	c.SetParamValues("not-a-uuid")

	if _, err := accountIDFromPath(c); err == nil {
		t.Fatal("expected error for invalid uuid")
	}
}
