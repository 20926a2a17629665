package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"neutalk/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func captureRequestLog(t *testing.T, authed bool) []observer.LoggedEntry {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	old := log.L
	log.L = zap.New(core)
	t.Cleanup(func() { log.L = old })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RequestLog(), func(c *gin.Context) {
		if authed {
			c.Set("username", "alice")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return logs.All()
}

func TestRequestLogWithUser(t *testing.T) {
	entries := captureRequestLog(t, true)
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "alice", fields["user"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRequestLogAnonymous(t *testing.T) {
	entries := captureRequestLog(t, false)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "user")
}
