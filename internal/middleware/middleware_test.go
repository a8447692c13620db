package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fritz24/Remunera/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRateLimitByUser_BurstExceeded(t *testing.T) {
	r := newTestRouter()
	r.GET("/limited",
		func(c *gin.Context) { c.Set("user_id", "user-1") },
		middleware.RateLimitByUser(1, 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}

func TestRateLimitByUser_SkipsAnonymous(t *testing.T) {
	r := newTestRouter()
	r.GET("/limited",
		middleware.RateLimitByUser(1, 1),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitByIP_BurstExceeded(t *testing.T) {
	r := newTestRouter()
	r.GET("/limited",
		middleware.RateLimitByIP(1, 1),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/limited", nil))
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestExtractUserID_SetsValidatedKey(t *testing.T) {
	r := newTestRouter()

	var validated string
	r.GET("/me",
		func(c *gin.Context) { c.Set("user_id", "user-42") },
		middleware.ExtractUserID(),
		func(c *gin.Context) {
			validated = c.GetString("user_id_validated")
			c.Status(http.StatusOK)
		},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", validated)
}

func TestExtractUserID_RejectsMissingUser(t *testing.T) {
	r := newTestRouter()
	r.GET("/me",
		middleware.ExtractUserID(),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	newRoleRouter := func(role string) *gin.Engine {
		r := newTestRouter()
		r.GET("/admin-only",
			func(c *gin.Context) {
				if role != "" {
					c.Set("role", role)
				}
			},
			middleware.RoleMiddleware("admin"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	w := httptest.NewRecorder()
	newRoleRouter("admin").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	newRoleRouter("viewer").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	newRoleRouter("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
