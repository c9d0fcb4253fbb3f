package api

import (
	"bytes"
	"encoding/csv"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitgenius/internal/services"
)

func TestCoachEndpointsAlwaysAnswer(t *testing.T) {
	// No generator configured: every reply must be the deterministic fallback.
	app, database := newTestApp(t)
	createTestUser(t, database, "coach@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "coach@example.com", "StrongPass1")

	for _, path := range []string{"/api/coach/meal-plan", "/api/coach/workout"} {
		response := doJSONRequest(t, app, http.MethodPost, path, cookie, map[string]any{})
		var reply services.CoachReply
		decodeJSONBody(t, response, &reply)
		if !reply.Fallback || reply.Text == "" {
			t.Fatalf("expected fallback reply from %s, got %+v", path, reply)
		}
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/coach/ask", cookie, map[string]any{
		"question": "How much protein should I eat?",
	})
	var reply services.CoachReply
	decodeJSONBody(t, response, &reply)
	if reply.Text == "" {
		t.Fatal("expected non-empty coach answer")
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/coach/ask", cookie, map[string]any{
		"question": "   ",
	})
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank question, got %d", response.StatusCode)
	}
}

func TestEntriesCSVExport(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "export@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "export@example.com", "StrongPass1")

	for _, entry := range []map[string]any{
		{"date": "2026-07-01", "weight_lbs": 205.0},
		{"date": "2026-08-01", "weight_lbs": 201.5},
	} {
		response := doJSONRequest(t, app, http.MethodPost, "/api/entries", cookie, entry)
		response.Body.Close()
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("expected entry status 201, got %d", response.StatusCode)
		}
	}

	response := doJSONRequest(t, app, http.MethodGet, "/api/entries/export.csv", cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected export status 200, got %d", response.StatusCode)
	}

	records, err := csv.NewReader(response.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[1][0] != "2026-07-01" {
		t.Fatalf("expected oldest entry first, got %s", records[1][0])
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/entries/export.csv?from=2026-08-01", cookie, nil)
	defer response.Body.Close()
	records, err = csv.NewReader(response.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse filtered csv export: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus 1 row after filter, got %d", len(records))
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/entries/export.csv?from=oops", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date filter, got %d", response.StatusCode)
	}
}

func TestPhotoUploadAndFetch(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "photo@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "photo@example.com", "StrongPass1")

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("photo", "progress.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake png bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/photos", &buffer)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected upload status 201, got %d", response.StatusCode)
	}

	var uploaded struct {
		PhotoID string `json:"photo_id"`
	}
	decodeJSONBody(t, response, &uploaded)
	if uploaded.PhotoID == "" {
		t.Fatal("expected photo id in upload response")
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/photos/"+uploaded.PhotoID, cookie, nil)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected photo fetch status 200, got %d", response.StatusCode)
	}
	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read photo body: %v", err)
	}
	if string(content) != "fake png bytes" {
		t.Fatalf("unexpected photo content %q", content)
	}

	// Another user cannot fetch it.
	createTestUser(t, database, "other@example.com", "StrongPass1", true)
	otherCookie := loginAndExtractAuthCookie(t, app, "other@example.com", "StrongPass1")
	response = doJSONRequest(t, app, http.MethodGet, "/api/photos/"+uploaded.PhotoID, otherCookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for other user's photo, got %d", response.StatusCode)
	}
}

func TestLibraryListsAndCustomMeal(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "library@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "library@example.com", "StrongPass1")

	response := doJSONRequest(t, app, http.MethodGet, "/api/library/meals", cookie, nil)
	var meals struct {
		Meals []struct {
			Name string `json:"Name"`
		} `json:"meals"`
	}
	decodeJSONBody(t, response, &meals)
	if len(meals.Meals) < 17 {
		t.Fatalf("expected seeded meal library, got %d meals", len(meals.Meals))
	}

	response = doJSONRequest(t, app, http.MethodPost, "/api/library/meals", cookie, map[string]any{
		"name":        "My Custom Bowl",
		"slot":        "lunch",
		"calories":    500,
		"protein_g":   35,
		"carbs_g":     50,
		"fat_g":       15,
		"ingredients": []string{"chicken breast", "quinoa", "spinach"},
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected custom meal status 201, got %d", response.StatusCode)
	}
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodGet, "/api/library/workouts", cookie, nil)
	var workouts struct {
		Workouts []struct {
			Name string `json:"Name"`
		} `json:"workouts"`
	}
	decodeJSONBody(t, response, &workouts)
	if len(workouts.Workouts) < 12 {
		t.Fatalf("expected seeded workout library, got %d workouts", len(workouts.Workouts))
	}
}

func TestDeleteAccountRemovesData(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "gone@example.com", "StrongPass1", true)
	cookie := loginAndExtractAuthCookie(t, app, "gone@example.com", "StrongPass1")

	response := doJSONRequest(t, app, http.MethodPost, "/api/entries", cookie, map[string]any{
		"weight_lbs": 199.0,
	})
	response.Body.Close()

	response = doJSONRequest(t, app, http.MethodDelete, "/api/account", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected delete account status 200, got %d", response.StatusCode)
	}

	var count int64
	if err := database.Table("users").Where("id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatal("expected user row deleted")
	}
	if err := database.Table("progress_entries").Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 0 {
		t.Fatal("expected progress entries deleted")
	}

	response = doJSONRequest(t, app, http.MethodGet, "/api/entries", cookie, nil)
	response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected stale session rejected, got %d", response.StatusCode)
	}
}
