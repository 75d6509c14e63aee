package domain

import "time"

type Task struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Description string    `gorm:"size:256;not null" json:"description"`
	AuthorID    string    `gorm:"size:36;index;not null" json:"author_id"`
	Author      *User     `gorm:"foreignKey:AuthorID;references:ID" json:"author,omitempty"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Task) TableName() string { return "tasks" }

// TaskFilter 列表过滤；Completed 用指针区分「不过滤」和「只要 false」
type TaskFilter struct {
	AuthorID  string
	Completed *bool
}

type TaskRepository interface {
	Create(t *Task) error
	// FindByID 带 Author，查不到返回 (nil, nil)
	FindByID(id string) (*Task, error)
	List(f TaskFilter, q ListQuery) ([]Task, int64, error)
	UpdateFields(id string, fields map[string]any) error
	// Delete 返回受影响行数，0 表示已经没了
	Delete(id string) (int64, error)
}
