package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 用户角色枚举，注册时固定为 RoleUser，只能由管理员修改
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// IsValidRole 检查角色字符串是否在允许的枚举范围内
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User 对应于数据库中的 users 表
type User struct {
	ID           string         `json:"id" gorm:"primaryKey;type:char(36)"`
	Username     string         `json:"username" gorm:"column:username;unique;not null;size:64"`
	PasswordHash string         `json:"-" gorm:"column:password_hash;not null;size:255"` // 密码哈希不通过JSON暴露
	Role         string         `json:"role" gorm:"column:role;not null;default:'User';size:50"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index" swaggertype:"string" format:"date-time"`
}

// TableName 指定 User 结构体对应的数据库表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 在创建记录前生成 UUID 主键
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
