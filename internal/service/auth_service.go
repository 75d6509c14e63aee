package service

import (
	"tasker-api/internal/apperr"
	"tasker-api/internal/core/auth"
	"tasker-api/internal/domain"
	"tasker-api/pkg/utils"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string // 可选，默认 USER
}

// AuthResult {token, user}
type AuthResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AuthService struct {
	users *UserService
	jwt   *auth.JWTer
}

func NewAuthService(users *UserService, jwt *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	u, err := s.users.Create(CreateUserInput{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(u)
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	// 查无此人和密码不对给同一个提示，不暴露账号是否存在
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.BadRequest("invalid email or password")
	}
	return s.issue(u)
}

func (s *AuthService) issue(u *domain.User) (*AuthResult, error) {
	token, err := s.jwt.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}
