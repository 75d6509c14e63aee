package repo

import (
	"errors"

	"gorm.io/gorm"

	"tasker-api/internal/domain"
)

var taskSortFields = map[string]string{
	"created_at":  "created_at",
	"description": "description",
	"completed":   "completed",
}

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(t *domain.Task) error { return r.db.Create(t).Error }

func (r *TaskRepo) FindByID(id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.Preload("Author").First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) List(f domain.TaskFilter, q domain.ListQuery) ([]domain.Task, int64, error) {
	tx := r.db.Model(&domain.Task{})
	if f.AuthorID != "" {
		tx = tx.Where("author_id = ?", f.AuthorID)
	}
	if f.Completed != nil {
		tx = tx.Where("completed = ?", *f.Completed)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []domain.Task
	err := tx.Preload("Author").
		Order(orderClause(taskSortFields, q.SortBy, q.SortValue)).
		Offset(q.Offset()).Limit(q.PerPage).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepo) UpdateFields(id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&domain.Task{}).Where("id = ?", id).Updates(fields).Error
}

func (r *TaskRepo) Delete(id string) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
