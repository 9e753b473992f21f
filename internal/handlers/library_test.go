// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/thatcatcamp/autotheme/internal/auth"
	"github.com/thatcatcamp/autotheme/internal/db"
)

func issueTestToken(t *testing.T) string {
	t.Helper()
	signed, _, err := auth.IssueToken(db.GetDB(), "tester")
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return signed
}

func TestCreateThemeRequiresToken(t *testing.T) {
	db.SetDB(setupHandlerTestDB(t))
	r := newTestRouter(t)

	w := doRequest(r, "POST", "/api/themes", `{"name":"grape","color":"#a855f7"}`,
		map[string]string{"Content-Type": "application/json"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	w = doRequest(r, "DELETE", "/api/themes/grape", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}
}

func TestThemeLibraryLifecycle(t *testing.T) {
	db.SetDB(setupHandlerTestDB(t))
	r := newTestRouter(t)
	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + issueTestToken(t),
	}

	// Create
	w := doRequest(r, "POST", "/api/themes", `{"name":"grape","color":"#a855f7","out":"oklch","dark":true}`, headers)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeJSON(t, w)
	meta := created["meta"].(map[string]interface{})
	if meta["createdBy"] != "tester" || meta["colorType"] != "oklch" {
		t.Errorf("Unexpected meta %v", meta)
	}

	// Duplicate
	w = doRequest(r, "POST", "/api/themes", `{"name":"grape","color":"#000000"}`, headers)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate, got %d", w.Code)
	}

	// List
	w = doRequest(r, "GET", "/api/themes", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"grape"`) {
		t.Errorf("List failed: %d %s", w.Code, w.Body.String())
	}

	// Show
	w = doRequest(r, "GET", "/api/themes/grape", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	shown := decodeJSON(t, w)
	theme := shown["theme"].(map[string]interface{})
	if theme["colorType"] != "oklch" {
		t.Errorf("Expected oklch theme, got %v", theme["colorType"])
	}

	// CSS uses the stored dark mode
	w = doRequest(r, "GET", "/api/themes/grape/css", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "--color-primary-500: oklch(") {
		t.Errorf("CSS failed: %d %s", w.Code, w.Body.String())
	}

	// Delete
	w = doRequest(r, "DELETE", "/api/themes/grape", "", headers)
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", w.Code)
	}
	w = doRequest(r, "GET", "/api/themes/grape", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
	w = doRequest(r, "DELETE", "/api/themes/grape", "", headers)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 on second delete, got %d", w.Code)
	}
}

func TestCreateThemeValidation(t *testing.T) {
	db.SetDB(setupHandlerTestDB(t))
	r := newTestRouter(t)
	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + issueTestToken(t),
	}

	bodies := map[string]int{
		`{"color":"#a855f7"}`:                          http.StatusBadRequest,
		`{"name":"Bad Name","color":"#a855f7"}`:        http.StatusBadRequest,
		`{"name":"grape"}`:                             http.StatusBadRequest,
		`{"name":"grape","color":"#fff","out":"cmyk"}`: http.StatusBadRequest,
		`{"name":"grape","preset":"plaid"}`:            http.StatusBadRequest,
		`not json`:                                     http.StatusBadRequest,
		`{"name":"teal","preset":"teal"}`:              http.StatusCreated,
	}
	for body, want := range bodies {
		w := doRequest(r, "POST", "/api/themes", body, headers)
		if w.Code != want {
			t.Errorf("%s: expected %d, got %d (%s)", body, want, w.Code, w.Body.String())
		}
	}
}

func TestGetThemeNotFound(t *testing.T) {
	db.SetDB(setupHandlerTestDB(t))
	r := newTestRouter(t)

	for _, target := range []string{"/api/themes/missing", "/api/themes/missing/css"} {
		w := doRequest(r, "GET", target, "", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, w.Code)
		}
	}
}
