package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glamvan/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = nil })

	r := guardedRouter()
	do := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, do(""))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-token"))

	token, err := utils.GenerateToken("admin@glamvan.local", "admin", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token),
		"a valid JWT is rejected until login registers it")

	ctx := context.Background()
	require.NoError(t, utils.CacheAdminToken(ctx, token, time.Hour))
	assert.Equal(t, http.StatusOK, do("Bearer "+token))

	require.NoError(t, utils.RevokeAdminToken(ctx, token))
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token),
		"a revoked token no longer passes")
}

func TestAdminAuthMiddlewareRejectsNonAdminRole(t *testing.T) {
	mr := miniredis.RunT(t)
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = nil })

	token, err := utils.GenerateToken("someone@example.com", "client", time.Hour)
	require.NoError(t, err)
	require.NoError(t, utils.CacheAdminToken(context.Background(), token, time.Hour))

	r := guardedRouter()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
