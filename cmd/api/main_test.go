package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presensi/internal/loader"
	"presensi/internal/store"
)

func TestHealthzDegradedWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	// Port 1 is never listening; the ping fails fast.
	redisClient := store.NewRedis("127.0.0.1:1")
	defer redisClient.Close()
	ld := loader.New(nil, log)

	r := gin.New()
	r.GET("/healthz", healthzHandler(redisClient, ld))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Status    string `json:"status"`
		Redis     bool   `json:"redis"`
		Refreshed bool   `json:"refreshed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.False(t, body.Redis)
	assert.False(t, body.Refreshed)
}

func TestIsISODate(t *testing.T) {
	assert.True(t, isISODate("2024-05-01"))
	assert.False(t, isISODate("01/05/2024"))
	assert.False(t, isISODate(""))
}
