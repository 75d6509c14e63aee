package service

import (
	"fmt"

	"tasker-api/internal/apperr"
	"tasker-api/internal/domain"
	"tasker-api/pkg/utils"
)

// UserGetter 任务侧只需要按 id 拿用户（查角色）
type UserGetter interface {
	GetByID(id string) (*domain.User, error)
}

type UpdateTaskInput struct {
	Description *string
	Completed   *bool
}

type TaskService struct {
	tasks domain.TaskRepository
	users UserGetter
}

func NewTaskService(tasks domain.TaskRepository, users UserGetter) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

func (s *TaskService) Create(description, authorID string) (*domain.Task, error) {
	t := &domain.Task{
		ID:          utils.NewID(),
		Description: description,
		AuthorID:    authorID,
	}
	if err := s.tasks.Create(t); err != nil {
		return nil, apperr.QueryFailed(err)
	}
	return t, nil
}

// ListByAuthor authorID 不传时默认查请求者自己的任务
func (s *TaskService) ListByAuthor(requesterID string, f domain.TaskFilter, q domain.ListQuery) (*domain.ListResult[domain.Task], error) {
	if f.AuthorID == "" {
		f.AuthorID = requesterID
	}
	q = q.Normalize()
	tasks, total, err := s.tasks.List(f, q)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return &domain.ListResult[domain.Task]{
		Entities:   tasks,
		Pagination: domain.NewPagination(q, total),
	}, nil
}

func (s *TaskService) Get(id string) (*domain.Task, error) {
	t, err := s.tasks.FindByID(id)
	if err != nil {
		return nil, apperr.QueryFailed(err)
	}
	if t == nil {
		return nil, apperr.NotFound(fmt.Sprintf("task with id %s not found", id))
	}
	return t, nil
}

func (s *TaskService) Update(id string, in UpdateTaskInput, requesterID string) (*domain.Task, error) {
	if err := s.authorize(id, requesterID); err != nil {
		return nil, err
	}

	// merge-patch：只写出现过的列
	fields := map[string]any{}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Completed != nil {
		fields["completed"] = *in.Completed
	}
	if err := s.tasks.UpdateFields(id, fields); err != nil {
		return nil, apperr.QueryFailed(err)
	}
	return s.Get(id)
}

func (s *TaskService) Delete(id, requesterID string) (bool, error) {
	if err := s.authorize(id, requesterID); err != nil {
		return false, err
	}
	n, err := s.tasks.Delete(id)
	if err != nil {
		return false, apperr.QueryFailed(err)
	}
	// 0 行受影响 → 已经被删（并发双删）
	if n == 0 {
		return false, apperr.BadRequest("failed to delete the resource")
	}
	return true, nil
}

// authorize 唯一的授权判定：作者本人或 ADMIN
func (s *TaskService) authorize(taskID, requesterID string) error {
	requester, err := s.users.GetByID(requesterID)
	if err != nil {
		return err
	}
	task, err := s.Get(taskID)
	if err != nil {
		return err
	}
	if task.AuthorID != requesterID && !requester.IsAdmin() {
		return apperr.Forbidden("insufficient permissions")
	}
	return nil
}
