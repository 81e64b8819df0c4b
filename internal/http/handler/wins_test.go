package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"momentum/internal/auth"
	"momentum/internal/http/handler"
)

func postWin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	// validation failures return before the service is touched
	h := &handler.WinHandler{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wins", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-user-id", "00000000-0000-0000-0000-000000000001")

	auth.RequireUser(http.HandlerFunc(h.Create)).ServeHTTP(rec, req)
	return rec
}

func TestCreateWinValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing title", `{"goalAreaId":"physical_health","occurredAt":"2026-08-26T10:00:00Z"}`},
		{"missing goal area", `{"title":"Morning run","occurredAt":"2026-08-26T10:00:00Z"}`},
		{"unknown goal area", `{"goalAreaId":"pottery","title":"Morning run","occurredAt":"2026-08-26T10:00:00Z"}`},
		{"bad timestamp", `{"goalAreaId":"physical_health","title":"Morning run","occurredAt":"yesterday"}`},
		{"energy boost out of range", `{"goalAreaId":"physical_health","title":"Morning run","energyBoost":7,"occurredAt":"2026-08-26T10:00:00Z"}`},
		{"negative duration", `{"goalAreaId":"physical_health","title":"Morning run","duration":-5,"occurredAt":"2026-08-26T10:00:00Z"}`},
		{"bad capture method", `{"goalAreaId":"physical_health","title":"Morning run","captureMethod":"telepathy","occurredAt":"2026-08-26T10:00:00Z"}`},
		{"title too long", `{"goalAreaId":"physical_health","title":"` + strings.Repeat("a", 501) + `","occurredAt":"2026-08-26T10:00:00Z"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postWin(t, tc.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}

			var body struct {
				Success bool `json:"success"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not json: %v", err)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestCreateWinRequiresUser(t *testing.T) {
	h := &handler.WinHandler{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wins", strings.NewReader(`{}`))

	auth.RequireUser(http.HandlerFunc(h.Create)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
