package repo

import (
	"errors"

	"gorm.io/gorm"

	"tasker-api/internal/domain"
)

// 允许进 ORDER BY 的列白名单（sortBy 来自查询串，不能直接拼 SQL）
var userSortFields = map[string]string{
	"created_at": "created_at",
	"username":   "username",
	"email":      "email",
	"role":       "role",
}

func orderClause(allowed map[string]string, sortBy, sortValue string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "asc"
	if sortValue == domain.SortDesc {
		dir = "desc"
	}
	return col + " " + dir
}

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(f domain.UserFilter, q domain.ListQuery) ([]domain.User, int64, error) {
	tx := r.db.Model(&domain.User{})
	if f.Username != "" {
		tx = tx.Where("username = ?", f.Username)
	}
	if f.Role != "" {
		tx = tx.Where("role = ?", f.Role)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	err := tx.Order(orderClause(userSortFields, q.SortBy, q.SortValue)).
		Offset(q.Offset()).Limit(q.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) UpdateFields(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&domain.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected, res.Error
}
