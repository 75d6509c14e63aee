package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/domain"
	"tasker-api/internal/service"
	mdw "tasker-api/internal/transport/http/middleware"
	resp "tasker-api/internal/transport/http/response"
)

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(t TaskService) *TaskHandler { return &TaskHandler{tasks: t} }

type createTaskReq struct {
	Description string `json:"description" binding:"required,min=6,max=256"`
}

type updateTaskReq struct {
	Description *string `json:"description" binding:"omitempty,min=6,max=256"`
	Completed   *bool   `json:"completed"`
}

type listTasksQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
	SortBy    string `form:"sortBy"`
	SortValue string `form:"sortValue" binding:"omitempty,oneof=asc desc"`
	Completed *bool  `form:"completed"`
	AuthorID  string `form:"authorId"`
}

// POST /task
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tasks.Create(req.Description, c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, t)
}

// GET /task/by-author
func (h *TaskHandler) ListByAuthor(c *gin.Context) {
	var q listTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.tasks.ListByAuthor(
		c.GetString(mdw.KeyUserID),
		domain.TaskFilter{AuthorID: q.AuthorID, Completed: q.Completed},
		domain.ListQuery{Page: q.Page, PerPage: q.PerPage, SortBy: q.SortBy, SortValue: q.SortValue},
	)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, out)
}

// GET /task/:id
func (h *TaskHandler) Get(c *gin.Context) {
	t, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, t)
}

// PATCH /task/:id
func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	t, err := h.tasks.Update(c.Param("id"), service.UpdateTaskInput{
		Description: req.Description,
		Completed:   req.Completed,
	}, c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, t)
}

// DELETE /task/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	ok, err := h.tasks.Delete(c.Param("id"), c.GetString(mdw.KeyUserID))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, ok)
}
