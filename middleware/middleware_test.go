package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/houranii/tyreshop/fixtures"
	"github.com/houranii/tyreshop/models"
	"github.com/houranii/tyreshop/services"
	"github.com/houranii/tyreshop/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	store    *store.Store
	auth     *services.AuthService
	sessions *services.SessionService
	activity *services.ActivityLogService
}

func newEnv(t *testing.T) testEnv {
	t.Helper()
	d, err := fixtures.LoadAll()
	require.NoError(t, err)
	s := store.New(d)

	jwtSvc, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	auth, err := services.NewAuthService(s.Users, jwtSvc, "password")
	require.NoError(t, err)

	catalog := services.NewCatalogService(s.Tyres, s.Locations)
	return testEnv{
		store:    s,
		auth:     auth,
		sessions: services.NewSessionService(catalog, time.Hour, zap.NewNop()),
		activity: services.NewActivityLogService(50, zap.NewNop()),
	}
}

func (e testEnv) token(t *testing.T, email string) string {
	t.Helper()
	_, token, err := e.auth.Login(email, "password")
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	env := newEnv(t)
	r := gin.New()
	r.Use(Authenticate(env.auth, zap.NewNop()))
	r.GET("/optional", func(c *gin.Context) {
		user, ok := GetUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": ok, "id": user.ID})
	})
	r.GET("/required", RequireAuth(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("anonymous passes optional", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/optional", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":false,"id":""}`, w.Body.String())
	})

	t.Run("anonymous rejected on required", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/required", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.Header.Set("Authorization", "Bearer "+env.token(t, "janedoe@example.com"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.JSONEq(t, `{"ok":true,"id":"u2"}`, w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/required", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: env.token(t, "johndoe@example.com")})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("garbage token browses anonymously", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":false,"id":""}`, w.Body.String())
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("garbage cookie is cleared", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/optional", nil)
		req.AddCookie(&http.Cookie{Name: AuthCookie, Value: "nope"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), AuthCookie+"=;")
		assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	})

	t.Run("garbage token rejected on required", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/required", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	env := newEnv(t)
	r := gin.New()
	r.Use(Authenticate(env.auth, zap.NewNop()), RequireAdmin(zap.NewNop()))
	r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name  string
		email string
		code  int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"customer", "johndoe@example.com", http.StatusForbidden},
		{"admin", "admin@tirestore.com", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.email != "" {
				req.Header.Set("Authorization", "Bearer "+env.token(t, tt.email))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestVisitorSession(t *testing.T) {
	env := newEnv(t)
	r := gin.New()
	r.Use(VisitorSession(env.sessions, time.Hour, false))
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, SessionID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
	first := w.Body.String()
	require.NotEmpty(t, first)
	assert.Equal(t, first, w.Header().Get(SessionHeader))
	assert.Contains(t, w.Header().Get("Set-Cookie"), SessionCookie+"="+first)

	// the header alone keeps the session for cookie-less clients
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(SessionHeader, first)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, first, w.Body.String())
	assert.Empty(t, w.Header().Get("Set-Cookie"))

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, first, w.Body.String())
	assert.Equal(t, 2, env.sessions.Count())
}

func TestLocalLimiter(t *testing.T) {
	l := NewLocalLimiter(3, time.Minute)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 3; i > 0; i-- {
		info, ok, err := l.Take(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, i-1, info.Remaining)
	}
	info, ok, _ := l.Take(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 60, info.ResetInSeconds)

	_, ok, _ = l.Take(ctx, "other")
	assert.True(t, ok)

	clock = clock.Add(20 * time.Second)
	_, ok, _ = l.Take(ctx, "k")
	assert.True(t, ok)
}

func TestRateLimiterMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(NewLocalLimiter(1, time.Minute), zap.NewNop()))
	r.GET("/limited", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rate_limit":{"limit":1,"remaining":0`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestActivityLogging(t *testing.T) {
	env := newEnv(t)
	r := gin.New()
	admin := r.Group("/api/v1/admin", Authenticate(env.auth, zap.NewNop()), RequireAdmin(zap.NewNop()), ActivityLogging(env.activity))
	admin.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	admin.POST("/products", func(c *gin.Context) {
		c.Set(ActivityResourceIDKey, "13")
		c.Status(http.StatusCreated)
	})
	admin.PATCH("/orders/:id/status", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	send := func(method, path string) {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer "+env.token(t, "admin@tirestore.com"))
		req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	send("GET", "/api/v1/admin/products")
	send("POST", "/api/v1/admin/products")
	send("PATCH", "/api/v1/admin/orders/ORD-1/status")

	entries := env.activity.List(models.ActivityFilter{})
	require.Len(t, entries, 2)

	assert.Equal(t, "updated_order", entries[0].Action)
	assert.Equal(t, "ORD-1", entries[0].ResourceID)
	assert.Equal(t, models.StatusFailed, entries[0].Status)
	assert.Equal(t, http.StatusNotFound, entries[0].StatusCode)

	assert.Equal(t, "created_product", entries[1].Action)
	assert.Equal(t, "13", entries[1].ResourceID)
	assert.Equal(t, "admin", entries[1].AdminID)
	assert.Equal(t, "Firefox", entries[1].Browser)
	assert.Equal(t, "Linux", entries[1].OS)
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, models.ResourceTypeOrder, extractResourceType("/api/v1/admin/orders/:id/status"))
	assert.Equal(t, models.ResourceTypeLocation, extractResourceType("/api/v1/admin/locations"))
	assert.Equal(t, "", extractResourceType("/api/v1/admin/dashboard"))
}
