package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestRegisterLoginAndRecoveryFlow(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "flow@example.com",
		"password": "StrongPass1",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	var registered struct {
		UserID       uint   `json:"user_id"`
		RecoveryCode string `json:"recovery_code"`
	}
	decodeJSONBody(t, response, &registered)
	if registered.UserID == 0 {
		t.Fatal("expected user id in register response")
	}
	if !strings.HasPrefix(registered.RecoveryCode, "FITG-") || len(registered.RecoveryCode) != 19 {
		t.Fatalf("expected FITG-XXXX-XXXX-XXXX recovery code, got %q", registered.RecoveryCode)
	}

	// Wrong password is rejected without leaking which part failed.
	response = doJSONRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "flow@example.com",
		"password": "WrongPass1",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected login status 401, got %d", response.StatusCode)
	}

	// The recovery code resets the password and rotates to a new code.
	response = doJSONRequest(t, app, http.MethodPost, "/api/auth/forgot-password", "", map[string]any{
		"email":         "flow@example.com",
		"recovery_code": strings.ToLower(registered.RecoveryCode),
		"new_password":  "FreshPass2",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected forgot-password status 200, got %d", response.StatusCode)
	}
	var reset struct {
		RecoveryCode string `json:"recovery_code"`
	}
	decodeJSONBody(t, response, &reset)
	if reset.RecoveryCode == registered.RecoveryCode || !strings.HasPrefix(reset.RecoveryCode, "FITG-") {
		t.Fatalf("expected rotated recovery code, got %q", reset.RecoveryCode)
	}

	// Old code is dead, new password works.
	response = doJSONRequest(t, app, http.MethodPost, "/api/auth/forgot-password", "", map[string]any{
		"recovery_code": registered.RecoveryCode,
		"new_password":  "AnotherPass3",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected replayed recovery code to fail, got %d", response.StatusCode)
	}

	cookie := loginAndExtractAuthCookie(t, app, "flow@example.com", "FreshPass2")
	if cookie == "" {
		t.Fatal("expected login with reset password to succeed")
	}
}

func TestOnboardingGateBlocksAPI(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "gated@example.com", "StrongPass1", false)
	cookie := loginAndExtractAuthCookie(t, app, "gated@example.com", "StrongPass1")

	response := doJSONRequest(t, app, http.MethodGet, "/api/entries", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 before onboarding, got %d", response.StatusCode)
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/profile/onboarding", cookie, map[string]any{
		"age":            28,
		"gender":         "female",
		"height_feet":    5,
		"height_inches":  6,
		"weight_lbs":     160,
		"activity_level": "light",
		"goal":           "lose_weight",
		"zipcode":        "85004",
		"household_size": 1,
	})
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected onboarding status 200, got %d", response.StatusCode)
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/entries", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected entries to open after onboarding, got %d", response.StatusCode)
	}
}

func TestProfileValidationRejectsOutOfRange(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "bounds@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "bounds@example.com", "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPut, "/api/profile", cookie, map[string]any{
		"age":            12,
		"gender":         "male",
		"height_cm":      178,
		"weight_lbs":     200,
		"activity_level": "moderate",
		"goal":           "maintain",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for under-age profile, got %d", response.StatusCode)
	}
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "change@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "change@example.com", "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/change-password", cookie, map[string]any{
		"current_password": "WrongPass1",
		"new_password":     "NextPass2",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", response.StatusCode)
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/auth/change-password", cookie, map[string]any{
		"current_password": "StrongPass1",
		"new_password":     "NextPass2",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected change-password status 200, got %d", response.StatusCode)
	}

	loginAndExtractAuthCookie(t, app, "change@example.com", "NextPass2")
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodGet, "/api/calculator/targets", "", nil)
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", response.StatusCode)
	}
}
