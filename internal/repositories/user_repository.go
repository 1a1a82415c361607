package repositories

import (
	"errors"

	"github.com/anime_voting/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到，屏蔽底层 gorm.ErrRecordNotFound
var ErrRecordNotFound = errors.New("记录未找到")

// ErrUsernameExists 表示用户名已存在（大小写不敏感）
var ErrUsernameExists = errors.New("用户名已存在")

// UserWithVoteCount 带派生投票数的用户行，票数由聚合查询得到
type UserWithVoteCount struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	VoteCount int64  `json:"voteCount"`
}

// UserRepository 定义了用户数据仓库的接口
type UserRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	// GetUserByUsernameInsensitive 按用户名查找，比较时忽略大小写
	GetUserByUsernameInsensitive(username string) (*models.User, error)
	GetUsersWithVoteCounts() ([]UserWithVoteCount, error)
	UpdateUserRole(id string, role string) error
	CountUsers() (int64, error)
	CountUsersByRole(role string) (int64, error)
}

// gormUserRepository 是 UserRepository 的 GORM 实现
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository 创建一个新的 gormUserRepository 实例
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// CreateUser 在数据库中创建一个新的用户记录。
// 创建前做大小写不敏感的用户名预检查；包含软删除的记录也视为占用，
// 避免恢复时冲突。
func (r *gormUserRepository) CreateUser(user *models.User) (*models.User, error) {
	var existing models.User
	err := r.db.Unscoped().
		Where("LOWER(username) = LOWER(?)", user.Username).
		First(&existing).Error
	if err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID 按主键查找用户
func (r *gormUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsernameInsensitive 按用户名查找用户，忽略大小写
func (r *gormUserRepository) GetUserByUsernameInsensitive(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUsersWithVoteCounts 返回所有用户及其投票次数。
// 票数通过 LEFT JOIN + COUNT 聚合派生，不在用户表上冗余存储。
func (r *gormUserRepository) GetUsersWithVoteCounts() ([]UserWithVoteCount, error) {
	var rows []UserWithVoteCount
	err := r.db.Model(&models.User{}).
		Select("users.id, users.username, users.role, COUNT(votes.id) AS vote_count").
		Joins("LEFT JOIN votes ON votes.voter_id = users.id").
		Group("users.id").
		Order("users.username ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateUserRole 更新用户角色，用户不存在时返回 ErrRecordNotFound
func (r *gormUserRepository) UpdateUserRole(id string, role string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// CountUsers 统计用户总数
func (r *gormUserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountUsersByRole 按角色统计用户数量
func (r *gormUserRepository) CountUsersByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
