package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(origins []string, method, origin string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(method, "/api/v1/question/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	Cors(origins)(next).ServeHTTP(rec, req)
	return rec
}

func TestCors_Wildcard(t *testing.T) {
	rec := serve([]string{"*"}, http.MethodGet, "https://example.com")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCors_ExplicitOrigin(t *testing.T) {
	rec := serve([]string{"https://trivia.app"}, http.MethodGet, "https://trivia.app")

	assert.Equal(t, "https://trivia.app", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCors_UnknownOrigin(t *testing.T) {
	rec := serve([]string{"https://trivia.app"}, http.MethodGet, "https://evil.example")

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCors_Preflight(t *testing.T) {
	rec := serve([]string{"*"}, http.MethodOptions, "https://example.com")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
