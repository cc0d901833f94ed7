package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMockRoutes(t *testing.T) {
	tests := []struct {
		name       string
		down       bool
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"species", false, http.MethodGet, "/api/v2/pokemon-species/pikachu", "", http.StatusOK},
		{"unknown species", false, http.MethodGet, "/api/v2/pokemon-species/missingno", "", http.StatusNotFound},
		{"translation", false, http.MethodPost, "/translate/yoda.json", `{"text":"hello"}`, http.StatusOK},
		{"translation down", true, http.MethodPost, "/translate/yoda.json", `{"text":"hello"}`, http.StatusTooManyRequests},
		{"health", false, http.MethodGet, "/healthz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			newMux(tt.down).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, rec.Code, tt.wantStatus)
			}
		})
	}
}
