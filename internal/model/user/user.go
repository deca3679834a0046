// Package user 用户与角色模型
package user

import "time"

// 系统内置的三个角色名称（来源于旧版博客的数据约定，前端按此显示）
const (
	RoleNameUser      = "Пользователь"  // 基础角色，注册时默认分配
	RoleNameAdmin     = "Администратор" // 管理员，管理用户账号
	RoleNameModerator = "Модератор"     // 版主，管理文章/评论/标签
)

// Role 角色表
// 冷启动时固定播种三行：1=Пользователь, 2=Администратор, 3=Модератор
type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoleName  string    `gorm:"column:role_name;type:varchar(50);uniqueIndex;not null" json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// User 用户表
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Email        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Login        string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"login"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	Role         *Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
