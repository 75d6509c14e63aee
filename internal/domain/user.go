package domain

import "time"

// 角色闭集（数据库里只存这两个值）
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

func ValidRole(r string) bool { return r == RoleUser || r == RoleAdmin }

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:64;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:USER" json:"role"`
	Avatar       *string   `gorm:"size:255" json:"avatar"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// UserFilter 精确匹配过滤（零值字段不参与过滤）
type UserFilter struct {
	Username string
	Role     string
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	// FindByEmail 查不到返回 (nil, nil)，给登录流程用
	FindByEmail(email string) (*User, error)
	List(f UserFilter, q ListQuery) ([]User, int64, error)
	UpdateFields(id string, fields map[string]any) error
	Delete(id string) (int64, error)
}
