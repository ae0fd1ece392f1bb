package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnhub/learnhub/internal/pkg/auth"
)

func newTestStore() (*CookieStore, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	return NewCookieStore(jwtService, 168*time.Hour, 75*time.Second, false), jwtService
}

func testContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, rec
}

func findSetCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSession_RoundTrip(t *testing.T) {
	store, jwtService := newTestStore()

	token, _, err := jwtService.GenerateToken("ada@example.com")
	require.NoError(t, err)

	c, rec := testContext()
	store.SetSession(c, token, true)

	written := findSetCookie(rec, "auth-token")
	require.NotNil(t, written)
	assert.True(t, written.HttpOnly)
	assert.Equal(t, int((168 * time.Hour).Seconds()), written.MaxAge)

	c, _ = testContext(written)
	sess := store.Session(c)
	require.NotNil(t, sess)
	assert.Equal(t, "ada@example.com", sess.Email)
	assert.Equal(t, token, sess.Token)
}

func TestSession_WithoutRememberMeIsSessionScoped(t *testing.T) {
	store, jwtService := newTestStore()
	token, _, err := jwtService.GenerateToken("ada@example.com")
	require.NoError(t, err)

	c, rec := testContext()
	store.SetSession(c, token, false)

	written := findSetCookie(rec, "auth-token")
	require.NotNil(t, written)
	assert.Equal(t, 0, written.MaxAge)
}

func TestSession_TamperedTokenIgnored(t *testing.T) {
	store, _ := newTestStore()

	c, _ := testContext(&http.Cookie{Name: "auth-token", Value: "tampered.token.value"})
	assert.Nil(t, store.Session(c))
}

func TestSession_MissingCookie(t *testing.T) {
	store, _ := newTestStore()

	c, _ := testContext()
	assert.Nil(t, store.Session(c))
}

func TestPendingEmail_Lifetime(t *testing.T) {
	store, _ := newTestStore()

	c, rec := testContext()
	store.SetPendingEmail(c, "ada@example.com")

	written := findSetCookie(rec, "verify-email")
	require.NotNil(t, written)
	assert.Equal(t, 75, written.MaxAge, "pending cookie lives as long as the code")
	assert.True(t, written.HttpOnly)

	c, _ = testContext(written)
	assert.Equal(t, "ada@example.com", store.PendingEmail(c))

	c, rec = testContext()
	store.ClearPendingEmail(c)
	cleared := findSetCookie(rec, "verify-email")
	require.NotNil(t, cleared)
	assert.Negative(t, cleared.MaxAge)
}

func TestPendingEmail_TTLIsConfigurable(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "test",
	})
	store := NewCookieStore(jwtService, 168*time.Hour, 90*time.Second, false)

	c, rec := testContext()
	store.SetPendingEmail(c, "ada@example.com")

	written := findSetCookie(rec, "verify-email")
	require.NotNil(t, written)
	assert.Equal(t, 90, written.MaxAge)
}

func TestResetFlowID_RoundTrip(t *testing.T) {
	store, _ := newTestStore()

	c, rec := testContext()
	store.SetResetFlowID(c, "flow-abc")

	written := findSetCookie(rec, "reset-flow")
	require.NotNil(t, written)
	assert.Equal(t, 0, written.MaxAge, "flow cookie is session-scoped")

	c, _ = testContext(written)
	assert.Equal(t, "flow-abc", store.ResetFlowID(c))
}
