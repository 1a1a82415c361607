package repositories

import (
	"errors"

	"github.com/anime_voting/internal/models"
	"gorm.io/gorm"
)

// ErrWinnerNotFound 表示投票引用的角色不存在
var ErrWinnerNotFound = errors.New("投票引用的角色不存在")

// MostVotedRow 得票最多的角色聚合结果
type MostVotedRow struct {
	WinnerID  string `gorm:"column:winner_id"`
	VoteCount int64  `gorm:"column:vote_count"`
}

// VoteRepository 定义了投票数据仓库的接口。
// 投票是只追加的账本：只有创建和读取，没有更新或删除。
type VoteRepository interface {
	// CreateVote 记录一张投票。角色存在性检查和插入在同一事务中完成，
	// 避免检查和写入之间角色被删除产生悬挂引用。
	CreateVote(vote *models.Vote) (*models.Vote, error)
	GetVoteByID(id string) (*models.Vote, error)
	ListVotes() ([]models.Vote, error)
	CountVotes() (int64, error)
	// GetMostVoted 返回得票最多的角色ID和票数；没有任何投票时返回 (nil, nil)
	GetMostVoted() (*MostVotedRow, error)
}

// gormVoteRepository 是 VoteRepository 的 GORM 实现
type gormVoteRepository struct {
	db *gorm.DB
}

// NewGormVoteRepository 创建一个新的 gormVoteRepository 实例
func NewGormVoteRepository(db *gorm.DB) VoteRepository {
	return &gormVoteRepository{db: db}
}

// CreateVote 在单个事务内校验角色存在并插入投票记录
func (r *gormVoteRepository) CreateVote(vote *models.Vote) (*models.Vote, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Character{}).Where("id = ?", vote.WinnerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrWinnerNotFound
		}
		return tx.Create(vote).Error
	})
	if err != nil {
		return nil, err
	}
	return vote, nil
}

// GetVoteByID 按主键查找投票记录
func (r *gormVoteRepository) GetVoteByID(id string) (*models.Vote, error) {
	var vote models.Vote
	if err := r.db.Where("id = ?", id).First(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &vote, nil
}

// ListVotes 返回全部投票记录
func (r *gormVoteRepository) ListVotes() ([]models.Vote, error) {
	var votes []models.Vote
	if err := r.db.Order("timestamp ASC, id ASC").Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// CountVotes 统计投票总数
func (r *gormVoteRepository) CountVotes() (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Count(&count).Error
	return count, err
}

// GetMostVoted 按 winner_id 分组统计，返回票数最高的一组。
// 平票时取聚合结果的第一组即可。
func (r *gormVoteRepository) GetMostVoted() (*MostVotedRow, error) {
	var row MostVotedRow
	err := r.db.Model(&models.Vote{}).
		Select("winner_id, COUNT(id) AS vote_count").
		Group("winner_id").
		Order("vote_count DESC").
		Limit(1).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if row.WinnerID == "" {
		return nil, nil
	}
	return &row, nil
}
