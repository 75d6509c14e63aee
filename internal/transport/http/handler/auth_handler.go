package handler

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/service"
	resp "tasker-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth AuthService
}

func NewAuthHandler(a AuthService) *AuthHandler { return &AuthHandler{auth: a} }

type registerReq struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	if !strongPassword(req.Password) {
		resp.FailMsg(c, http.StatusBadRequest, "password must be at least 8 characters with an uppercase letter and a digit")
		return
	}
	out, err := h.auth.Register(service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, out)
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, out)
}

// strongPassword 至少 8 位，含大写字母和数字
func strongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && digit
}
