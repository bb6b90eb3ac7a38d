package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/config"
	"lumina_lms_backend/internal/util"
)

var (
	testOnce sync.Once
	testApp  *App
)

// sharedApp builds the full application once per test binary; the
// Prometheus collectors cannot be registered twice.
func sharedApp(t *testing.T) *App {
	t.Helper()
	testOnce.Do(func() {
		cfg := &config.Config{
			Server: config.ServerConfig{Port: "0", Mode: "test"},
			JWT:    config.JWTConfig{Secret: "router-test-secret", ExpireTime: time.Hour},
			CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
			RateLimit: config.RateLimitConfig{
				MaxRequests:   10000,
				WindowMinutes: 1,
			},
			Community: config.CommunityConfig{ShareBaseURL: "https://lumina.example"},
		}
		testApp = NewApp(cfg)
	})
	return testApp
}

func doJSON(t *testing.T, a *App, method, path, token string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var envelope util.Response
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(w.Body.Bytes(), &envelope)
	}
	return w, envelope
}

func login(t *testing.T, a *App, identifier string) string {
	t.Helper()
	w, envelope := doJSON(t, a, http.MethodPost, "/api/login", "", map[string]string{
		"identifier": identifier,
		"password":   "demo1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestHealthIsPublic(t *testing.T) {
	a := sharedApp(t)

	w, _ := doJSON(t, a, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := sharedApp(t)

	w, _ := doJSON(t, a, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, a, http.MethodGet, "/api/courses", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentEnrollAndProgressFlow(t *testing.T) {
	a := sharedApp(t)
	token := login(t, a, "alex@lumina.edu")

	w, _ := doJSON(t, a, http.MethodPost, "/api/courses/c3/enroll", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Enrolling again is a no-op success.
	w, _ = doJSON(t, a, http.MethodPost, "/api/courses/c3/enroll", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, envelope := doJSON(t, a, http.MethodPatch, "/api/courses/c3/progress", token, map[string]int{"progress": 60})
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 60, data["progress"])

	w, envelope = doJSON(t, a, http.MethodGet, "/api/my/courses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	courses, ok := envelope.Data.([]interface{})
	require.True(t, ok)

	seen := 0
	for _, raw := range courses {
		course, ok := raw.(map[string]interface{})
		require.True(t, ok)
		if course["id"] == "c3" {
			seen++
			assert.EqualValues(t, 60, course["progress"])
		}
	}
	assert.Equal(t, 1, seen, "c3 must appear exactly once in the enrolled list")
}

func TestEnrollUnknownCourseIs404(t *testing.T) {
	a := sharedApp(t)
	token := login(t, a, "alex@lumina.edu")

	w, _ := doJSON(t, a, http.MethodPost, "/api/courses/nope/enroll", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthoringIsInstructorOnly(t *testing.T) {
	a := sharedApp(t)

	student := login(t, a, "alex@lumina.edu")
	w, _ := doJSON(t, a, http.MethodPost, "/api/courses", student, map[string]string{
		"title": "Sneaky Course",
		"level": "Beginner",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	instructor := login(t, a, "ins_sarah")
	w, envelope := doJSON(t, a, http.MethodPost, "/api/courses", instructor, map[string]string{
		"title": "Testing in Go",
		"level": "Intermediate",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	course, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, course["isPublished"])
	assert.Equal(t, "Sarah Drasner", course["instructor"])
}

func TestAdminRoutesAreRoleGated(t *testing.T) {
	a := sharedApp(t)

	student := login(t, a, "alex@lumina.edu")
	w, _ := doJSON(t, a, http.MethodGet, "/api/admin/events", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, a, "adm_root")
	w, _ = doJSON(t, a, http.MethodGet, "/api/admin/events", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Admins pass instructor gates too.
	w, _ = doJSON(t, a, http.MethodGet, "/api/submissions", admin, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGradeConflictSurfacesAs409(t *testing.T) {
	a := sharedApp(t)
	instructor := login(t, a, "ins_sarah")

	w, _ := doJSON(t, a, http.MethodPatch, "/api/submissions/s1/grade", instructor, map[string]interface{}{
		"grade":    85,
		"feedback": "Well argued.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, a, http.MethodPatch, "/api/submissions/s1/grade", instructor, map[string]interface{}{
		"grade": 90,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddPointsAcceptsZeroDelta(t *testing.T) {
	a := sharedApp(t)
	token := login(t, a, "alex@lumina.edu")

	w, envelope := doJSON(t, a, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	current := profile["points"]

	w, envelope = doJSON(t, a, http.MethodPost, "/api/achievements/points", token, map[string]int{"delta": 0})
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, current, data["points"])
}

func TestMetricsEndpoint(t *testing.T) {
	a := sharedApp(t)

	w, _ := doJSON(t, a, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lumina_http_requests_total")
}
