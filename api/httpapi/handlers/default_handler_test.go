package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velascoluis/data-roster/api/httpapi/handlers"
)

func TestHeartbeatHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.NewHeartbeatHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.NewRootHandler("1.2.3").ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version":"1.2.3"`)
	assert.Contains(t, rr.Body.String(), "/api/data-products")
}

func TestNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"detail":"no matching route was found"}`, rr.Body.String())
}
