package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"tasker-api/internal/apperr"
	"tasker-api/internal/core/cache"
	"tasker-api/internal/domain"
	"tasker-api/pkg/utils"
)

// AvatarStore 文件存储后端：收字节流，吐存储文件名
type AvatarStore interface {
	Save(src io.Reader, originalName string) (filename string, err error)
}

type CreateUserInput struct {
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *string
}

// AvatarUpload handler 打开 multipart 文件后交给 service
type AvatarUpload struct {
	Reader io.Reader
	Name   string // 原始文件名，只取扩展名
}

type UserService struct {
	users    domain.UserRepository
	avatars  AvatarStore
	baseURL  string
	cache    *cache.Cache // 可选，只供公开 profile 读路径
	cacheTTL time.Duration
}

func NewUserService(users domain.UserRepository, avatars AvatarStore, baseURL string) *UserService {
	return &UserService{
		users:   users,
		avatars: avatars,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// WithCache 挂上 redis 读缓存（GET /users/:id 公开路径用）
func (s *UserService) WithCache(c *cache.Cache, ttl time.Duration) *UserService {
	s.cache = c
	s.cacheTTL = ttl
	return s
}

func (s *UserService) Create(in CreateUserInput) (*domain.User, error) {
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	if existing != nil {
		return nil, apperr.Conflict(fmt.Sprintf("user with email %s already exists", in.Email))
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, apperr.BadRequest("invalid role")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		// 并发注册撞唯一索引 → 仍按 Conflict 处理
		if isDupKey(err) {
			return nil, apperr.Conflict(fmt.Sprintf("user with email %s already exists", in.Email))
		}
		return nil, apperr.QueryFailed(err)
	}
	return u, nil
}

func (s *UserService) List(f domain.UserFilter, q domain.ListQuery) (*domain.ListResult[domain.User], error) {
	q = q.Normalize()
	users, total, err := s.users.List(f, q)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return &domain.ListResult[domain.User]{
		Entities:   users,
		Pagination: domain.NewPagination(q, total),
	}, nil
}

func (s *UserService) GetByID(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	if u == nil {
		return nil, apperr.NotFound(fmt.Sprintf("user with id %s not found", id))
	}
	return u, nil
}

// GetByIDCached 公开 profile 查询；授权路径一律走 GetByID 直读库
func (s *UserService) GetByIDCached(ctx context.Context, id string) (*domain.User, error) {
	if s.cache == nil {
		return s.GetByID(id)
	}
	u, err := cache.GetOrLoadJSON(s.cache, ctx, userCacheKey(id), s.cacheTTL,
		func(context.Context) (*domain.User, error) { return s.GetByID(id) })
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound(fmt.Sprintf("user with id %s not found", id))
	}
	return u, nil
}

// GetByEmail 内部用（登录流程），查不到返回 (nil, nil)
func (s *UserService) GetByEmail(email string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput, avatar *AvatarUpload) (*domain.User, error) {
	fields := map[string]any{}
	if in.Username != nil {
		fields["username"] = *in.Username
	}
	if in.Email != nil {
		fields["email"] = *in.Email
	}
	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return nil, apperr.BadRequest("invalid role")
		}
		fields["role"] = *in.Role
	}
	if avatar != nil {
		filename, err := s.avatars.Save(avatar.Reader, avatar.Name)
		if err != nil {
			return nil, apperr.Internal("store avatar failed", err)
		}
		fields["avatar"] = s.baseURL + "/uploads/avatars/" + filename
	}

	// merge-patch：只写出现过的列，其余保持原值
	if err := s.users.UpdateFields(id, fields); err != nil {
		return nil, apperr.QueryFailed(err)
	}
	s.invalidate(ctx, id)
	return s.GetByID(id)
}

// Delete 幂等硬删：行不存在也算成功
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.users.Delete(id); err != nil {
		return false, apperr.QueryFailed(err)
	}
	s.invalidate(ctx, id)
	return true, nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userCacheKey(id))
	}
}

func userCacheKey(id string) string { return "user:" + id }

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
