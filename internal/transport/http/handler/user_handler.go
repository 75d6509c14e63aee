package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasker-api/internal/domain"
	"tasker-api/internal/service"
	resp "tasker-api/internal/transport/http/response"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(u UserService) *UserHandler { return &UserHandler{users: u} }

type listUsersQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"perPage"`
	SortBy    string `form:"sortBy"`
	SortValue string `form:"sortValue" binding:"omitempty,oneof=asc desc"`
	Username  string `form:"username"`
	Role      string `form:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// updateUserForm multipart 字段；avatar 文件单独取
type updateUserForm struct {
	Username *string `form:"username"`
	Email    *string `form:"email" binding:"omitempty,email"`
	Role     *string `form:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// GET /users
func (h *UserHandler) List(c *gin.Context) {
	var q listUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.users.List(
		domain.UserFilter{Username: q.Username, Role: q.Role},
		domain.ListQuery{Page: q.Page, PerPage: q.PerPage, SortBy: q.SortBy, SortValue: q.SortValue},
	)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, out)
}

// GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.GetByIDCached(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, u)
}

// PATCH /users/:id（multipart：字段 + 可选 avatar 文件）
func (h *UserHandler) Update(c *gin.Context) {
	var form updateUserForm
	if err := c.ShouldBind(&form); err != nil {
		resp.FailMsg(c, http.StatusBadRequest, err.Error())
		return
	}

	var avatar *service.AvatarUpload
	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			resp.FailMsg(c, http.StatusBadRequest, "invalid avatar file")
			return
		}
		defer f.Close()
		avatar = &service.AvatarUpload{Reader: f, Name: fh.Filename}
	}

	u, err := h.users.Update(c.Request.Context(), c.Param("id"), service.UpdateUserInput{
		Username: form.Username,
		Email:    form.Email,
		Role:     form.Role,
	}, avatar)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, http.StatusOK, u)
}

// DELETE /users/:id（仅 ADMIN，网关在路由上挂 RequireRole）
func (h *UserHandler) Delete(c *gin.Context) {
	if _, err := h.users.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.NoContent(c)
}
