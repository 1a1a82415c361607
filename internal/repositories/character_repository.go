package repositories

import (
	"errors"

	"github.com/anime_voting/internal/models"
	"gorm.io/gorm"
)

// CharacterVoteRow 带派生票数的角色行，Scan 目标
type CharacterVoteRow struct {
	ID       string `gorm:"column:id"`
	Name     string `gorm:"column:name"`
	Anime    string `gorm:"column:anime"`
	ImageURL string `gorm:"column:image_url"`
	Votes    int64  `gorm:"column:votes"`
}

// ToResponse 转换为对外的角色响应结构
func (row CharacterVoteRow) ToResponse() models.CharacterResponse {
	return models.CharacterResponse{
		ID:       row.ID,
		Name:     row.Name,
		Anime:    row.Anime,
		ImageURL: row.ImageURL,
		Votes:    row.Votes,
	}
}

// CharacterRepository 定义了角色数据仓库的接口
type CharacterRepository interface {
	CreateCharacter(character *models.Character) (*models.Character, error)
	GetCharacterByID(id string) (*models.Character, error)
	// GetCharacterByOffset 按稳定顺序取第 offset 条记录，配对引擎按下标抽取角色
	GetCharacterByOffset(offset int) (*models.Character, error)
	CountCharacters() (int64, error)
	// ExistsByNameAndAnime 导入去重用的自然键存在性检查（尽力而为，无数据库唯一约束）
	ExistsByNameAndAnime(name, anime string) (bool, error)
	ListCharacters() ([]models.Character, error)
	// ListCharactersWithVotes 返回全部角色及派生票数
	ListCharactersWithVotes() ([]CharacterVoteRow, error)
	// GetLeaderboard 返回票数降序的前 limit 个角色，平票按入库顺序
	GetLeaderboard(limit int) ([]CharacterVoteRow, error)
	CountVotesForCharacter(id string) (int64, error)
	DeleteCharacter(id string) error
}

// gormCharacterRepository 是 CharacterRepository 的 GORM 实现
type gormCharacterRepository struct {
	db *gorm.DB
}

// NewGormCharacterRepository 创建一个新的 gormCharacterRepository 实例
func NewGormCharacterRepository(db *gorm.DB) CharacterRepository {
	return &gormCharacterRepository{db: db}
}

// CreateCharacter 在数据库中创建一个新的角色记录
func (r *gormCharacterRepository) CreateCharacter(character *models.Character) (*models.Character, error) {
	if err := r.db.Create(character).Error; err != nil {
		return nil, err
	}
	return character, nil
}

// GetCharacterByID 按主键查找角色
func (r *gormCharacterRepository) GetCharacterByID(id string) (*models.Character, error) {
	var character models.Character
	if err := r.db.Where("id = ?", id).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &character, nil
}

// GetCharacterByOffset 按创建时间顺序取第 offset 条角色。
// 配对引擎的 count-then-fetch 依赖这个顺序在两次调用之间保持稳定。
func (r *gormCharacterRepository) GetCharacterByOffset(offset int) (*models.Character, error) {
	var character models.Character
	err := r.db.Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(1).
		Take(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &character, nil
}

// CountCharacters 统计角色总数
func (r *gormCharacterRepository) CountCharacters() (int64, error) {
	var count int64
	err := r.db.Model(&models.Character{}).Count(&count).Error
	return count, err
}

// ExistsByNameAndAnime 检查 (名称, 动画) 自然键是否已存在
func (r *gormCharacterRepository) ExistsByNameAndAnime(name, anime string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Character{}).
		Where("name = ? AND anime = ?", name, anime).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListCharacters 返回全部角色记录
func (r *gormCharacterRepository) ListCharacters() ([]models.Character, error) {
	var characters []models.Character
	if err := r.db.Order("created_at ASC, id ASC").Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

// ListCharactersWithVotes 返回全部角色及其票数。
// 票数由 LEFT JOIN votes 聚合派生，没被投过票的角色计为 0。
func (r *gormCharacterRepository) ListCharactersWithVotes() ([]CharacterVoteRow, error) {
	var rows []CharacterVoteRow
	err := r.db.Model(&models.Character{}).
		Select("characters.id, characters.name, characters.anime, characters.image_url, COUNT(votes.id) AS votes").
		Joins("LEFT JOIN votes ON votes.winner_id = characters.id").
		Group("characters.id").
		Order("characters.created_at ASC, characters.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetLeaderboard 返回票数降序排列的前 limit 个角色，
// 平票时按入库顺序（created_at）保持稳定
func (r *gormCharacterRepository) GetLeaderboard(limit int) ([]CharacterVoteRow, error) {
	var rows []CharacterVoteRow
	err := r.db.Model(&models.Character{}).
		Select("characters.id, characters.name, characters.anime, characters.image_url, COUNT(votes.id) AS votes").
		Joins("LEFT JOIN votes ON votes.winner_id = characters.id").
		Group("characters.id").
		Order("votes DESC, characters.created_at ASC, characters.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountVotesForCharacter 统计引用某角色的投票数量，删除守卫用
func (r *gormCharacterRepository) CountVotesForCharacter(id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("winner_id = ?", id).Count(&count).Error
	return count, err
}

// DeleteCharacter 删除角色（软删除），角色不存在时返回 ErrRecordNotFound。
// 投票引用检查在服务层完成。
func (r *gormCharacterRepository) DeleteCharacter(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Character{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
