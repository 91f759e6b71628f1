package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"volunteerhub_backend/internals/configs"
	attRepo "volunteerhub_backend/internals/features/attendance/attendance/repository"
	attService "volunteerhub_backend/internals/features/attendance/attendance/service"
	eventRepo "volunteerhub_backend/internals/features/events/events/repository"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	regRepo "volunteerhub_backend/internals/features/events/registrations/repository"
	regService "volunteerhub_backend/internals/features/events/registrations/service"
	dashService "volunteerhub_backend/internals/features/home/dashboard/service"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
	userService "volunteerhub_backend/internals/features/users/user/service"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	configs.JWTSecret = "test-secret"
	configs.UseMockDB = true

	users := userRepo.NewMemoryUserRepository()
	events := eventRepo.NewMemoryEventRepository()
	registrations := regRepo.NewMemoryRegistrationRepository()
	attendance := attRepo.NewMemoryAttendanceRepository()

	userSvc := userService.NewUserService(users, events, registrations, attendance)

	services := &Services{
		Auth:          authService.NewAuthService(users),
		Users:         userSvc,
		Events:        eventService.NewEventService(events, users, registrations, attendance, 20),
		Registrations: regService.NewRegistrationService(events, registrations),
		Attendance:    attService.NewAttendanceService(attendance, events),
		Dashboard:     dashService.NewDashboardService(userSvc),
	}

	app := fiber.New()
	SetupRoutes(app, services)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return resp.StatusCode, decoded
}

func registerAndLogin(t *testing.T, app *fiber.App, name, email, role string) (token string, userID string) {
	t.Helper()

	code, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "volunteer123",
		"role":     role,
	})
	if code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, code)
	}

	code, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "volunteer123",
	})
	if code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, code)
	}
	token, _ = body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response %v", email, body)
	}
	user, _ := body["user"].(map[string]interface{})
	userID, _ = user["id"].(string)
	if userID == "" {
		t.Fatalf("login %s: no user id in response %v", email, body)
	}
	return token, userID
}

func TestVolunteerFlow(t *testing.T) {
	app := setupTestApp(t)

	organizerToken, organizerID := registerAndLogin(t, app, "Dana Whitfield", "dana@example.com", "organizer")
	studentToken, studentID := registerAndLogin(t, app, "Alice Tran", "alice@example.com", "student")

	// organizer creates an event
	code, body := doJSON(t, app, http.MethodPost, "/api/events", organizerToken, fiber.Map{
		"title":         "Beach Cleanup",
		"date":          "2026-09-05",
		"location":      "North Shore",
		"maxVolunteers": 10,
		"organizerId":   organizerID,
	})
	if code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d (%v)", code, body)
	}
	event, _ := body["event"].(map[string]interface{})
	eventID, _ := event["id"].(string)
	if eventID == "" {
		t.Fatalf("create event: no id in response %v", body)
	}

	// a student may not create events
	code, _ = doJSON(t, app, http.MethodPost, "/api/events", studentToken, fiber.Map{
		"title":       "Rogue Event",
		"organizerId": studentID,
	})
	if code != http.StatusForbidden {
		t.Errorf("student event creation: expected 403, got %d", code)
	}

	// student registers, then checks in and out
	code, _ = doJSON(t, app, http.MethodPost, "/api/events/"+eventID+"/register", studentToken, fiber.Map{
		"userId": studentID,
	})
	if code != http.StatusOK {
		t.Fatalf("event registration: expected 200, got %d", code)
	}

	code, _ = doJSON(t, app, http.MethodPost, "/api/attendance/check-in", studentToken, fiber.Map{
		"userId":      studentID,
		"eventId":     eventID,
		"checkInTime": "2026-09-05T09:00:00Z",
	})
	if code != http.StatusOK {
		t.Fatalf("check-in: expected 200, got %d", code)
	}

	code, body = doJSON(t, app, http.MethodPost, "/api/attendance/check-out", studentToken, fiber.Map{
		"userId":       studentID,
		"eventId":      eventID,
		"checkOutTime": "2026-09-05T11:30:00Z",
	})
	if code != http.StatusOK {
		t.Fatalf("check-out: expected 200, got %d", code)
	}
	if hours, _ := body["hours"].(float64); hours != 2.5 {
		t.Errorf("check-out: expected 2.5 hours, got %v", body["hours"])
	}

	// profile reflects the completed session
	code, body = doJSON(t, app, http.MethodGet, "/api/users/"+studentID, studentToken, nil)
	if code != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", code)
	}
	data, _ := body["data"].(map[string]interface{})
	user, _ := data["user"].(map[string]interface{})
	if hours, _ := user["hoursCompleted"].(float64); hours != 2.5 {
		t.Errorf("profile: expected 2.5 hours completed, got %v", user["hoursCompleted"])
	}

	// organizer sees the roster
	code, body = doJSON(t, app, http.MethodGet, "/api/organizer/events/"+eventID+"/attendance", organizerToken, nil)
	if code != http.StatusOK {
		t.Fatalf("roster: expected 200, got %d (%v)", code, body)
	}
}

func TestPublicAndProtectedRoutes(t *testing.T) {
	app := setupTestApp(t)

	// the event list and the leaderboard are public
	code, _ := doJSON(t, app, http.MethodGet, "/api/events", "", nil)
	if code != http.StatusOK {
		t.Errorf("public event list: expected 200, got %d", code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/users/leaderboard/top", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("public leaderboard: expected 200, got %d", resp.StatusCode)
	}
	var entries []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Errorf("leaderboard must be a bare array: %v", err)
	}

	// attendance requires a token; a garbage token is just as dead
	for name, token := range map[string]string{"no token": "", "bad token": "not.a.token"} {
		req := httptest.NewRequest(http.MethodPost, "/api/attendance/check-in", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s: expected 401, got %d", name, resp.StatusCode)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	if code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", code)
	}
	if body["status"] != "OK" {
		t.Errorf("health: expected status OK, got %v", body["status"])
	}
	if body["database"] != "In-memory store" {
		t.Errorf("health: expected the in-memory store marker, got %v", body["database"])
	}
}
