package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote 对应于数据库中的 votes 表。
// 投票记录是只追加的：创建后不再更新或删除，因此没有软删除字段。
type Vote struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(36)"`
	VoterID   string    `json:"voterId" gorm:"column:voter_id;type:char(36);not null;index"`   // 投票人 (users 表外键)
	WinnerID  string    `json:"winnerId" gorm:"column:winner_id;type:char(36);not null;index"` // 被选中的角色 (characters 表外键)
	Timestamp time.Time `json:"timestamp" gorm:"column:timestamp;not null;autoCreateTime"`
}

// TableName 指定 Vote 结构体对应的数据库表名
func (Vote) TableName() string {
	return "votes"
}

// BeforeCreate 在创建记录前生成 UUID 主键
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// VoteResponse 是对外返回的投票信息
type VoteResponse struct {
	ID        string    `json:"id"`
	Winner    string    `json:"winner"`
	Timestamp time.Time `json:"timestamp"`
}

// ToResponse 将 Vote 转换为响应结构
func (v *Vote) ToResponse() VoteResponse {
	return VoteResponse{
		ID:        v.ID,
		Winner:    v.WinnerID,
		Timestamp: v.Timestamp,
	}
}
