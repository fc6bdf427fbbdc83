package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPoemTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &HttpSrv{Engine: gin.New()}
	s.Engine.POST("/api/generate-poem", s.GeneratePoem)
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		s.Engine.Handle(m, "/api/generate-poem", PoemMethodNotAllowed)
	}
	return s.Engine
}

func TestGeneratePoemMissingEntry(t *testing.T) {
	router := newPoemTestRouter()

	for _, body := range []string{`{}`, `{"entry":""}`, `{"entry":"   "}`, `not-json`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate-poem", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.JSONEq(t, `{"error":"missing-entry"}`, w.Body.String())
	}
}

func TestGeneratePoemMethodNotAllowed(t *testing.T) {
	router := newPoemTestRouter()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/generate-poem", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "method: %s", method)
		assert.JSONEq(t, `{"error":"method-not-allowed"}`, w.Body.String())
	}
}
