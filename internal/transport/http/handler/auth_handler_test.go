package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasker-api/internal/apperr"
	"tasker-api/internal/domain"
	"tasker-api/internal/service"
)

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &mockAuthService{
		registerOut: &service.AuthResult{
			Token: "jwt-token",
			User:  &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser},
		},
	}
	r := newAuthRouter(svc)

	body := `{"username":"alice","email":"alice@example.com","password":"Password1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w, env := doRequest(t, r, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Contains(t, string(env.Res), `"jwt-token"`)
	assert.Contains(t, string(env.Res), `"alice@example.com"`)
	// 密文不进响应
	assert.NotContains(t, string(env.Res), "passwordHash")
	assert.Equal(t, "alice", svc.lastRegister.Username)
	assert.Equal(t, "Password1", svc.lastRegister.Password)
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Pw1"},
		{"no uppercase", "password1"},
		{"no digit", "Passwordx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{}
			r := newAuthRouter(svc)

			body := `{"username":"a","email":"a@b.com","password":"` + tt.password + `"}`
			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w, env := doRequest(t, r, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, http.StatusBadRequest, env.Error.StatusCode)
			assert.Zero(t, svc.registerN, "service must not be called on weak password")
		})
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	svc := &mockAuthService{}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"a","email":"not-an-email","password":"Password1"}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := doRequest(t, r, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Zero(t, svc.registerN)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	svc := &mockAuthService{
		registerErr: apperr.Conflict("user with email a@b.com already exists"),
	}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"a","email":"a@b.com","password":"Password1"}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := doRequest(t, r, req)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusConflict, env.Error.StatusCode)
	assert.Equal(t, "user with email a@b.com already exists", env.Error.Message)
	assert.Equal(t, "/auth/register", env.Error.Path)
	assert.NotEmpty(t, env.Error.Timestamp)
	// 出错时 res 固定为 []
	assert.Equal(t, "[]", string(env.Res))
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &mockAuthService{
		loginOut: &service.AuthResult{
			Token: "jwt-token",
			User:  &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleUser},
		},
	}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"Password1"}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := doRequest(t, r, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "a@b.com", svc.lastEmail)
	assert.Equal(t, "Password1", svc.lastPassword)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := &mockAuthService{
		loginErr: apperr.BadRequest("invalid email or password"),
	}
	r := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"a@b.com","password":"WrongPass1"}`))
	req.Header.Set("Content-Type", "application/json")
	w, env := doRequest(t, r, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "invalid email or password", env.Error.Message)
}
