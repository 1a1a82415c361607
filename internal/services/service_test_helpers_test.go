package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anime_voting/configs"
	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/models/external"
	"github.com/anime_voting/internal/repositories"
)

// newTestDB 创建一个内存 SQLite 数据库并完成迁移
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Character{},
		&models.Vote{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// fakeCatalogSource 用测试数据代替 Jikan API
type fakeCatalogSource struct {
	title      string
	characters []external.JikanCharacter
	titleErr   error
	charErr    error
}

func (f *fakeCatalogSource) GetAnimeTitle(ctx context.Context, animeID int) (string, error) {
	return f.title, f.titleErr
}

func (f *fakeCatalogSource) GetCharacters(ctx context.Context, animeID int) ([]external.JikanCharacter, error) {
	return f.characters, f.charErr
}

// newCharacterService 组装测试用角色服务，随机源用固定种子保证可复现
func newCharacterService(t *testing.T, db *gorm.DB, source CatalogSource) (CharacterService, repositories.CharacterRepository) {
	t.Helper()
	charRepo := repositories.NewGormCharacterRepository(db)
	svc := NewCharacterService(charRepo, source, rand.New(rand.NewSource(42)))
	return svc, charRepo
}

// seedCharacter 插入一个角色并返回
func seedCharacter(t *testing.T, db *gorm.DB, name, anime string) *models.Character {
	t.Helper()
	character := &models.Character{Name: name, Anime: anime, ImageURL: "https://cdn.example/" + name + ".jpg"}
	require.NoError(t, db.Create(character).Error)
	return character
}

// seedUser 插入一个用户并返回
func seedUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedVote 为指定用户和角色插入一张投票
func seedVote(t *testing.T, db *gorm.DB, voterID, winnerID string) *models.Vote {
	t.Helper()
	vote := &models.Vote{VoterID: voterID, WinnerID: winnerID}
	require.NoError(t, db.Create(vote).Error)
	return vote
}

func init() {
	// 测试中签发/验证Token需要配置就绪
	configs.LoadConfig()
}
