package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/domain"
	"tasker-api/internal/service"
	mdw "tasker-api/internal/transport/http/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

// ---- service 替身 ----

type mockAuthService struct {
	registerOut *service.AuthResult
	registerErr error
	loginOut    *service.AuthResult
	loginErr    error

	lastRegister service.RegisterInput
	lastEmail    string
	lastPassword string
	registerN    int
}

func (m *mockAuthService) Register(in service.RegisterInput) (*service.AuthResult, error) {
	m.registerN++
	m.lastRegister = in
	return m.registerOut, m.registerErr
}

func (m *mockAuthService) Login(email, password string) (*service.AuthResult, error) {
	m.lastEmail, m.lastPassword = email, password
	return m.loginOut, m.loginErr
}

type mockTaskService struct {
	createOut *domain.Task
	createErr error
	listOut   *domain.ListResult[domain.Task]
	listErr   error
	getOut    *domain.Task
	getErr    error
	updateOut *domain.Task
	updateErr error
	deleteOut bool
	deleteErr error

	lastCreateDesc   string
	lastCreateAuthor string
	lastRequester    string
	lastFilter       domain.TaskFilter
	lastQuery        domain.ListQuery
	lastUpdate       service.UpdateTaskInput
}

func (m *mockTaskService) Create(description, authorID string) (*domain.Task, error) {
	m.lastCreateDesc, m.lastCreateAuthor = description, authorID
	return m.createOut, m.createErr
}

func (m *mockTaskService) ListByAuthor(requesterID string, f domain.TaskFilter, q domain.ListQuery) (*domain.ListResult[domain.Task], error) {
	m.lastRequester, m.lastFilter, m.lastQuery = requesterID, f, q
	return m.listOut, m.listErr
}

func (m *mockTaskService) Get(id string) (*domain.Task, error) { return m.getOut, m.getErr }

func (m *mockTaskService) Update(id string, in service.UpdateTaskInput, requesterID string) (*domain.Task, error) {
	m.lastUpdate, m.lastRequester = in, requesterID
	return m.updateOut, m.updateErr
}

func (m *mockTaskService) Delete(id, requesterID string) (bool, error) {
	m.lastRequester = requesterID
	return m.deleteOut, m.deleteErr
}

type mockUserService struct {
	listOut   *domain.ListResult[domain.User]
	listErr   error
	getOut    *domain.User
	getErr    error
	updateOut *domain.User
	updateErr error
	deleteErr error

	lastFilter domain.UserFilter
	lastUpdate service.UpdateUserInput
	lastAvatar *avatarSnapshot
	deletedID  string
}

type avatarSnapshot struct {
	Name  string
	Bytes []byte
}

func (m *mockUserService) List(f domain.UserFilter, q domain.ListQuery) (*domain.ListResult[domain.User], error) {
	m.lastFilter = f
	return m.listOut, m.listErr
}

func (m *mockUserService) GetByIDCached(ctx context.Context, id string) (*domain.User, error) {
	return m.getOut, m.getErr
}

func (m *mockUserService) Update(ctx context.Context, id string, in service.UpdateUserInput, avatar *service.AvatarUpload) (*domain.User, error) {
	m.lastUpdate = in
	if avatar != nil {
		b, _ := io.ReadAll(avatar.Reader)
		m.lastAvatar = &avatarSnapshot{Name: avatar.Name, Bytes: b}
	}
	return m.updateOut, m.updateErr
}

func (m *mockUserService) Delete(ctx context.Context, id string) (bool, error) {
	m.deletedID = id
	return true, m.deleteErr
}

// ---- 公共脚手架 ----

// asPrincipal 替代 AuthJWT，直接塞主体进 context
func asPrincipal(id, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(mdw.KeyUserID, id)
		c.Set(mdw.KeyRole, role)
		c.Next()
	}
}

type envelope struct {
	Success bool `json:"success"`
	Error   *struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		Timestamp  string `json:"timestamp"`
		Path       string `json:"path"`
	} `json:"error"`
	Res json.RawMessage `json:"res"`
}

func doRequest(t *testing.T, r *gin.Engine, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("response is not an envelope: %v (%s)", err, w.Body.String())
		}
	}
	return w, env
}
