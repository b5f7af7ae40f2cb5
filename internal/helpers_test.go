package internal

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestApp() (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)
	s := newMemStore()
	cfg := &Config{SessionSecret: "test-secret", AdminEmailPrefix: "admin."}
	return Routes(s, cfg), s
}

func do(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, username, email, password string) {
	t.Helper()
	w := do(r, "POST", "/register", gin.H{"username": username, "email": email, "password": password})
	assert.Equal(t, 200, w.Code)
}

func login(t *testing.T, r *gin.Engine, email, password string) *http.Cookie {
	t.Helper()
	w := do(r, "POST", "/login", gin.H{"email": email, "password": password})
	assert.Equal(t, 200, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return out
}
