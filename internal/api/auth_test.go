package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/register", gin.H{
		"email":    "Jane@Example.com",
		"password": testPassword,
		"fullName": "Jane Doe",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"User registered successfully"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), testPassword)

	token := env.login("jane@example.com", testPassword)
	w = env.do(http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me UserView
	decode(t, w, &me)
	assert.Equal(t, "jane@example.com", me.Email)
	assert.Equal(t, "jane@example.com", me.UserName)
	require.NotNil(t, me.FullName)
	assert.Equal(t, "Jane Doe", *me.FullName)
	assert.Equal(t, []string{"User"}, me.Roles)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	require.Equal(t, http.StatusOK, env.register("dup@example.com", testPassword).Code)
	w := env.register("DUP@example.com", testPassword)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, []string{"Email 'dup@example.com' is already taken."}, body.Errors)
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		body   any
		expect string
	}{
		{"weak password", gin.H{"email": "a@example.com", "password": "abc"}, "Passwords must be at least 6 characters."},
		{"no digit", gin.H{"email": "a@example.com", "password": "Password!"}, "Passwords must have at least one digit ('0'-'9')."},
		{"bad email", gin.H{"email": "not-an-email", "password": testPassword}, "The email field is not a valid e-mail address."},
		{"missing email", gin.H{"password": testPassword}, "The email field is required."},
		{"malformed", `{"email":`, "The request body is not valid JSON or has fields of the wrong type."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/auth/register", tc.body, "")
			require.Equal(t, http.StatusBadRequest, w.Code)
			var body errorBody
			decode(t, w, &body)
			assert.Contains(t, body.Errors, tc.expect)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.register("login@example.com", testPassword).Code)

	w := env.do(http.MethodPost, "/api/auth/login", gin.H{"email": "LOGIN@example.com", "password": testPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp AuthResponse
	decode(t, w, &resp)
	assert.Equal(t, "login@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	claims, err := env.issuer.ParseJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.Subject)
	assert.Equal(t, []string{"User"}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
}

func TestLogin_GenericFailure(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.register("known@example.com", testPassword).Code)

	wrongPassword := env.do(http.MethodPost, "/api/auth/login", gin.H{"email": "known@example.com", "password": "Wr0ng!pass"}, "")
	unknownEmail := env.do(http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@example.com", "password": testPassword}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.JSONEq(t, `{"message":"Invalid email or password"}`, unknownEmail.Body.String())
}

func TestLogout_RevokesToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken()

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/partners", nil, token).Code)
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/auth/logout", nil, token).Code)

	w := env.do(http.MethodGet, "/api/partners", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A fresh login is unaffected
	fresh := env.login("user@example.com", testPassword)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/partners", nil, fresh).Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/partners", "/api/events", "/api/events/1/partners", "/api/auth/me", "/api/admin/users"} {
		w := env.do(http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := env.do(http.MethodGet, "/api/partners", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDummyHash(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyHash()))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	broken := newDummyHash(func(string) (string, error) { return "", errors.New("entropy exhausted") })
	assert.Equal(t, fallbackDummyHash, broken())
	cost, err = bcrypt.Cost([]byte(broken()))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(broken()), []byte(testPassword)))
}
