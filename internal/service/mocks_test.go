package service

import (
	"tasker-api/internal/domain"
)

// 手写测试替身，照 repository 接口一对一

type mockUserRepo struct {
	CreateFn       func(u *domain.User) error
	FindByIDFn     func(id string) (*domain.User, error)
	FindByEmailFn  func(email string) (*domain.User, error)
	ListFn         func(f domain.UserFilter, q domain.ListQuery) ([]domain.User, int64, error)
	UpdateFieldsFn func(id string, fields map[string]any) error
	DeleteFn       func(id string) (int64, error)

	createCalls []domain.User
	updateCalls []map[string]any
}

func (m *mockUserRepo) Create(u *domain.User) error {
	m.createCalls = append(m.createCalls, *u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) FindByID(id string) (*domain.User, error) { return m.FindByIDFn(id) }

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	return m.FindByEmailFn(email)
}

func (m *mockUserRepo) List(f domain.UserFilter, q domain.ListQuery) ([]domain.User, int64, error) {
	return m.ListFn(f, q)
}

func (m *mockUserRepo) UpdateFields(id string, fields map[string]any) error {
	m.updateCalls = append(m.updateCalls, fields)
	return m.UpdateFieldsFn(id, fields)
}

func (m *mockUserRepo) Delete(id string) (int64, error) { return m.DeleteFn(id) }

type mockTaskRepo struct {
	CreateFn       func(t *domain.Task) error
	FindByIDFn     func(id string) (*domain.Task, error)
	ListFn         func(f domain.TaskFilter, q domain.ListQuery) ([]domain.Task, int64, error)
	UpdateFieldsFn func(id string, fields map[string]any) error
	DeleteFn       func(id string) (int64, error)

	listCalls   []domain.TaskFilter
	updateCalls []map[string]any
	deleteCalls []string
}

func (m *mockTaskRepo) Create(t *domain.Task) error { return m.CreateFn(t) }

func (m *mockTaskRepo) FindByID(id string) (*domain.Task, error) { return m.FindByIDFn(id) }

func (m *mockTaskRepo) List(f domain.TaskFilter, q domain.ListQuery) ([]domain.Task, int64, error) {
	m.listCalls = append(m.listCalls, f)
	return m.ListFn(f, q)
}

func (m *mockTaskRepo) UpdateFields(id string, fields map[string]any) error {
	m.updateCalls = append(m.updateCalls, fields)
	return m.UpdateFieldsFn(id, fields)
}

func (m *mockTaskRepo) Delete(id string) (int64, error) {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockUserGetter TaskService 侧的用户查询替身
type mockUserGetter struct {
	GetByIDFn func(id string) (*domain.User, error)
}

func (m *mockUserGetter) GetByID(id string) (*domain.User, error) { return m.GetByIDFn(id) }
