package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContentRoutes(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		f := newFixture()

		rr := f.do(http.MethodGet, "/api/content/create", nil, "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		f.content.AssertNotCalled(t, "Seed", mock.Anything)
	})

	t.Run("create", func(t *testing.T) {
		f := newFixture()
		f.cfg.DemoContentEnabled = true
		f.content.On("Seed", mock.Anything).Return(nil)

		rr := f.do(http.MethodGet, "/api/content/create", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"result":true}`, rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture()
		f.cfg.DemoContentEnabled = true
		f.content.On("Reset", mock.Anything).Return(nil)

		rr := f.do(http.MethodGet, "/api/content/delete", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"result":true,"message":"all content deleted"}`, rr.Body.String())
	})
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture()
		f.db.On("HealthCheck", mock.Anything).Return(nil)
		f.stats.On("CountRows", mock.Anything).Return(map[string]int{"users": 3}, nil)

		rr := f.do(http.MethodGet, "/health", nil, "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok","tables":{"users":3}}`, rr.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		f := newFixture()
		f.db.On("HealthCheck", mock.Anything).Return(errors.New("dial tcp: connection refused"))

		rr := f.do(http.MethodGet, "/health", nil, "")

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.JSONEq(t, `{"status":"unavailable","error":"dial tcp: connection refused"}`, rr.Body.String())
		f.stats.AssertNotCalled(t, "CountRows", mock.Anything)
	})
}
