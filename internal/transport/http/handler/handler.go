package handler

import (
	"context"

	"tasker-api/internal/domain"
	"tasker-api/internal/service"
)

// 各 handler 依赖的 service 能力，按消费方收窄成接口，测试好做替身

type AuthService interface {
	Register(in service.RegisterInput) (*service.AuthResult, error)
	Login(email, password string) (*service.AuthResult, error)
}

type TaskService interface {
	Create(description, authorID string) (*domain.Task, error)
	ListByAuthor(requesterID string, f domain.TaskFilter, q domain.ListQuery) (*domain.ListResult[domain.Task], error)
	Get(id string) (*domain.Task, error)
	Update(id string, in service.UpdateTaskInput, requesterID string) (*domain.Task, error)
	Delete(id, requesterID string) (bool, error)
}

type UserService interface {
	List(f domain.UserFilter, q domain.ListQuery) (*domain.ListResult[domain.User], error)
	GetByIDCached(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in service.UpdateUserInput, avatar *service.AvatarUpload) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
