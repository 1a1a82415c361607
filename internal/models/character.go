package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Character 对应于数据库中的 characters 表
type Character struct {
	ID        string         `json:"id" gorm:"primaryKey;type:char(36)"`
	Name      string         `json:"name" gorm:"column:name;not null;size:255"`         // 角色名称
	Anime     string         `json:"anime" gorm:"column:anime;not null;size:255"`       // 所属动画标题
	ImageURL  string         `json:"imageUrl" gorm:"column:image_url;size:512"`         // 角色图片URL，可为空
	CreatedAt time.Time      `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index" swaggertype:"string" format:"date-time"`
}

// TableName 指定 Character 结构体对应的数据库表名
func (Character) TableName() string {
	return "characters"
}

// BeforeCreate 在创建记录前生成 UUID 主键
func (c *Character) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CharacterResponse 是对外返回的角色信息，票数为聚合查询得到的派生值，
// 不在 characters 表上冗余存储
type CharacterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Anime    string `json:"anime"`
	ImageURL string `json:"imageUrl"`
	Votes    int64  `json:"votes"`
}

// ToResponse 将 Character 转换为带票数的响应结构
func (c *Character) ToResponse(votes int64) CharacterResponse {
	return CharacterResponse{
		ID:       c.ID,
		Name:     c.Name,
		Anime:    c.Anime,
		ImageURL: c.ImageURL,
		Votes:    votes,
	}
}
