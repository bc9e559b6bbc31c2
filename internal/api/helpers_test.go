package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partner_management/internal/db"
	"partner_management/internal/testutil"
	"partner_management/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testPassword  = "Passw0rd!"
	adminEmail    = "admin@example.com"
	adminPassword = "Adm1n!pass"
)

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	mr     *miniredis.Miniredis
	router *gin.Engine
	issuer *utils.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := testutil.NewTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	issuer := utils.NewTokenIssuer("test-secret-0123456789abcdef", "test-issuer", "test-audience", time.Hour)
	r, err := NewRouter(Deps{
		DB:          gdb,
		Redis:       rdb,
		Issuer:      issuer,
		Revocations: utils.NewRedisRevocationStore(rdb),
		MaxPageSize: 100,
		CORSOrigins: []string{"http://localhost:5173"},
	})
	require.NoError(t, err)
	return &testEnv{t: t, db: gdb, mr: mr, router: r, issuer: issuer}
}

func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(email, password string) *httptest.ResponseRecorder {
	return e.do(http.MethodPost, "/api/auth/register", gin.H{"email": email, "password": password}, "")
}

func (e *testEnv) login(email, password string) string {
	e.t.Helper()
	w := e.do(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": password}, "")
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	var resp AuthResponse
	decode(e.t, w, &resp)
	require.NotEmpty(e.t, resp.Token)
	return resp.Token
}

// userToken registers a fresh User account and logs it in
func (e *testEnv) userToken() string {
	e.t.Helper()
	w := e.register("user@example.com", testPassword)
	require.Equal(e.t, http.StatusOK, w.Code, w.Body.String())
	return e.login("user@example.com", testPassword)
}

func (e *testEnv) adminToken() string {
	e.t.Helper()
	require.NoError(e.t, db.SeedAdmin(e.db, adminEmail, adminPassword))
	return e.login(adminEmail, adminPassword)
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type errorBody struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
