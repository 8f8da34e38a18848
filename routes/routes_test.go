package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"event-feedback-service/config"
	"event-feedback-service/middleware"
	"event-feedback-service/models"
	"event-feedback-service/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a full router against an in-memory database and an
// in-process Redis. Tests in this package are sequential: the auth
// middleware holds package-level service references.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Speaker{},
		&models.Event{},
		&models.Survey{},
		&models.Comment{},
	))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		SessionSecret:        "test-secret",
		SessionTTLMinutes:    60,
		ItemsPerPage:         2,
		DefaultAdminPassword: "admin123",
	}

	return SetupRouter(db, cfg, client), db
}

// seedUser inserts a user with a known password and the given role flags
func seedUser(t *testing.T, db *gorm.DB, username string, admin, editor, verified bool) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsAdmin:      admin,
		IsEditor:     editor,
		IsVerified:   verified,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// login posts the login form and returns the session cookie
func login(t *testing.T, r *gin.Engine, username string) *http.Cookie {
	t.Helper()

	w := postForm(r, "/login", nil, url.Values{
		"username": {username},
		"password": {"s3cret-pass"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousGatedRouteRedirectsToLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/show/speakers", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next="+url.QueryEscape("/show/speakers"), w.Header().Get("Location"))
}

func TestLoginHonorsNextPath(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "alice", false, false, true)

	w := postForm(r, "/login", nil, url.Values{
		"username": {"alice"},
		"password": {"s3cret-pass"},
		"next":     {"/show/events"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/show/events", w.Header().Get("Location"))
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "alice", false, false, true)

	for _, next := range []string{"//evil.example", "https://evil.example", "/\\evil.example"} {
		w := postForm(r, "/login", nil, url.Values{
			"username": {"alice"},
			"password": {"s3cret-pass"},
			"next":     {next},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"), "next=%q must fall back to the index", next)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "alice", false, false, true)

	w := postForm(r, "/login", nil, url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password")
}

func TestRegisterThenSignIn(t *testing.T) {
	r, _ := newTestServer(t)

	w := postForm(r, "/register", nil, url.Values{
		"username":  {"newcomer"},
		"email":     {"newcomer@example.com"},
		"password":  {"s3cret-pass"},
		"password2": {"s3cret-pass"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?registered=1", w.Header().Get("Location"))

	// Mismatched confirmation never reaches the database
	w = postForm(r, "/register", nil, url.Values{
		"username":  {"other"},
		"email":     {"other@example.com"},
		"password":  {"s3cret-pass"},
		"password2": {"different"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The duplicate is refused with the form re-rendered
	w = postForm(r, "/register", nil, url.Values{
		"username":  {"newcomer"},
		"email":     {"elsewhere@example.com"},
		"password":  {"s3cret-pass"},
		"password2": {"s3cret-pass"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	cookie := login(t, r, "newcomer")
	assert.NotEmpty(t, cookie.Value)
}

func TestAdminPageRequiresAdminRole(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "root", true, true, true)
	seedUser(t, db, "bob", false, false, true)

	bobCookie := login(t, r, "bob")
	w := get(r, "/admin", bobCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
	// The forbidden page keeps the signed-in navigation
	assert.Contains(t, w.Body.String(), "Logout (bob)")

	adminCookie := login(t, r, "root")
	w = get(r, "/admin", adminCookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")

	// Granting bob the admin flag opens the page for him
	w = get(r, "/update/admin/bob", adminCookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = get(r, "/admin", bobCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/update/admin/nobody", adminCookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSpeakerPagesAndComments(t *testing.T) {
	r, db := newTestServer(t)
	user := seedUser(t, db, "alice", false, false, true)
	cookie := login(t, r, "alice")

	speaker := &models.Speaker{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, db.Create(speaker).Error)

	w := get(r, "/show/speakers", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada")

	w = get(r, fmt.Sprintf("/show/speakers/%d", speaker.ID), cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/show/speakers/999", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postForm(r, fmt.Sprintf("/show/speakers/%d", speaker.ID), cookie, url.Values{
		"comment": {"wonderful talk"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, fmt.Sprintf("/show/speakers/%d", speaker.ID), w.Header().Get("Location"))

	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	assert.Equal(t, "wonderful talk", comment.Body)
	assert.Equal(t, user.ID, comment.UserID)

	// The new comment shows up on the detail page
	w = get(r, fmt.Sprintf("/show/speakers/%d", speaker.ID), cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wonderful talk")
}

func TestEditorRoutesRequireEditorRole(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "viewer", false, false, true)
	cookie := login(t, r, "viewer")

	w := get(r, "/add/speaker", cookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddSurveyCascadesAndFlashes(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "editor", false, true, true)
	cookie := login(t, r, "editor")

	speaker := &models.Speaker{FirstName: "Grace", LastName: "Hopper"}
	require.NoError(t, db.Create(speaker).Error)
	event := &models.Event{Topic: "Annual Meeting"}
	require.NoError(t, db.Create(event).Error)
	require.NoError(t, db.Model(event).Association("Speakers").Append(speaker))

	form := url.Values{
		"event_id": {fmt.Sprint(event.ID)},
		"value_1":  {"1"}, "value_2": {"2"}, "value_3": {"3"}, "value_4": {"4"}, "value_5": {"5"},
		"speaker_1": {"3"}, "speaker_2": {"3"}, "speaker_3": {"3"},
		"content_1": {"4"}, "content_2": {"4"},
		"facility_1": {"5"}, "facility_2": {"5"},
		"name":  {"Pat Respondent"},
		"email": {"pat@example.com"},
	}
	w := postForm(r, "/add/survey", cookie, form)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var survey models.Survey
	require.NoError(t, db.First(&survey).Error)
	assert.InDelta(t, 3.75, survey.OverallAverage, 1e-9)

	var storedEvent models.Event
	require.NoError(t, db.First(&storedEvent, event.ID).Error)
	assert.InDelta(t, 3.75, storedEvent.OverallAverage, 1e-9)

	var storedSpeaker models.Speaker
	require.NoError(t, db.First(&storedSpeaker, speaker.ID).Error)
	assert.InDelta(t, 3.0, storedSpeaker.OverallAverage, 1e-9)

	// The flash survives the redirect chain and shows on the next page
	w = get(r, "/search", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Survey Saved.")

	// And is gone after being shown once
	w = get(r, "/search", cookie)
	assert.NotContains(t, w.Body.String(), "Survey Saved.")
}

func TestAddSurveyUnknownEvent(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "editor", false, true, true)
	cookie := login(t, r, "editor")

	form := url.Values{
		"event_id": {"999"},
		"value_1":  {"1"}, "value_2": {"2"}, "value_3": {"3"}, "value_4": {"4"}, "value_5": {"5"},
		"speaker_1": {"3"}, "speaker_2": {"3"}, "speaker_3": {"3"},
		"content_1": {"4"}, "content_2": {"4"},
		"facility_1": {"5"}, "facility_2": {"5"},
		"name":  {"Pat Respondent"},
		"email": {"pat@example.com"},
	}
	w := postForm(r, "/add/survey", cookie, form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Selected event does not exist")
}

func TestSearchPostRendersResults(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "alice", false, false, true)
	cookie := login(t, r, "alice")

	require.NoError(t, db.Create(&models.Speaker{FirstName: "Ada", LastName: "Lovelace"}).Error)

	w := postForm(r, "/search", cookie, url.Values{
		"search":   {"Love"},
		"category": {"1"},
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lovelace")

	// No match flashes a notice and returns to the form
	w = postForm(r, "/search", cookie, url.Values{
		"search":   {"zzzz"},
		"category": {"1"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/search", w.Header().Get("Location"))

	w = get(r, "/search", cookie)
	assert.Contains(t, w.Body.String(), "No results found.")
}

func TestLogoutRevokesSession(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "alice", false, false, true)
	cookie := login(t, r, "alice")

	w := get(r, "/logout", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Replaying the old cookie no longer authenticates
	w = get(r, "/show/speakers", cookie)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}

func TestIndexRedirectsByRole(t *testing.T) {
	r, db := newTestServer(t)
	seedUser(t, db, "root", true, true, true)
	seedUser(t, db, "alice", false, false, true)

	w := get(r, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	adminCookie := login(t, r, "root")
	w = get(r, "/", adminCookie)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	aliceCookie := login(t, r, "alice")
	w = get(r, "/", aliceCookie)
	assert.Equal(t, "/search", w.Header().Get("Location"))
}
