package services

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/models/external"
	"github.com/anime_voting/internal/repositories"
	"github.com/anime_voting/pkg/jikan"
)

// ErrInsufficientCatalog 表示角色不足两个，无法组成对比配对
var ErrInsufficientCatalog = errors.New("角色数量不足，至少需要两个角色才能配对")

// ErrCharacterNotFound 表示角色未找到
var ErrCharacterNotFound = errors.New("角色未找到")

// ErrCharacterHasVotes 表示角色已有投票引用，不允许删除
var ErrCharacterHasVotes = errors.New("角色已有投票记录，无法删除")

// ErrAnimeNotFound 表示外部目录中不存在该动画
var ErrAnimeNotFound = errors.New("未找到指定的动画")

// ErrNoCharactersFound 表示外部目录中该动画没有任何角色
var ErrNoCharactersFound = errors.New("该动画没有可导入的角色")

// defaultLeaderboardLimit 排行榜默认/最大返回条数
const defaultLeaderboardLimit = 10

// CatalogSource 是外部角色目录（Jikan）的抽象，只有两个只读操作
type CatalogSource interface {
	GetAnimeTitle(ctx context.Context, animeID int) (string, error)
	GetCharacters(ctx context.Context, animeID int) ([]external.JikanCharacter, error)
}

// ImportResult 一次导入操作的统计
type ImportResult struct {
	AnimeTitle string `json:"animeTitle"`
	Fetched    int    `json:"fetched"`  // 外部目录返回的角色数量
	Created    int    `json:"created"`  // 实际新建的角色数量
	Skipped    int    `json:"skipped"`  // 因 (名称, 动画) 已存在而跳过的数量
}

// CharacterService 定义了角色服务的接口
type CharacterService interface {
	// GetRandomPair 从全部角色中均匀随机选出两个不同的角色，附带当前票数
	GetRandomPair() ([]models.CharacterResponse, error)
	// GetLeaderboard 返回票数降序的前 limit 个角色；limit<=0 或超过上限时取默认值
	GetLeaderboard(limit int) ([]models.CharacterResponse, error)
	// ListCharactersWithVotes 返回全部角色及派生票数
	ListCharactersWithVotes() ([]models.CharacterResponse, error)
	// ListAllCharacters 管理端角色列表，按名称的本地化排序返回
	ListAllCharacters() ([]models.Character, error)
	// DeleteCharacter 删除角色；有投票引用时拒绝
	DeleteCharacter(id string) error
	// ImportFromAnime 从外部目录导入指定动画的全部角色，按自然键去重
	ImportFromAnime(ctx context.Context, animeID int) (*ImportResult, error)
}

// characterService 是 CharacterService 的实现
type characterService struct {
	charRepo repositories.CharacterRepository
	source   CatalogSource
	collator *collate.Collator

	// rng 由构造时注入，测试时可用固定种子保证可复现；
	// *rand.Rand 本身不是并发安全的，用互斥锁保护
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewCharacterService 创建一个新的 characterService 实例。
// rng 为随机配对的随机源，由调用方注入。
func NewCharacterService(charRepo repositories.CharacterRepository, source CatalogSource, rng *rand.Rand) CharacterService {
	return &characterService{
		charRepo: charRepo,
		source:   source,
		collator: collate.New(language.English, collate.IgnoreCase),
		rng:      rng,
	}
}

// drawPairIndexes 抽取两个不同的下标。
// 第二次在 n-1 范围内抽取，如果撞上第一个下标就向后平移一位，
// 无需拒绝采样循环即可保证两个下标不同。
func (s *characterService) drawPairIndexes(n int) (int, int) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	first := s.rng.Intn(n)
	second := s.rng.Intn(n - 1)
	if second >= first {
		second++
	}
	return first, second
}

// GetRandomPair 实现随机配对。
// count 与按下标取数之间角色目录可能被并发修改；取数失败时重试一次，
// 仍失败则作为错误上报。
func (s *characterService) GetRandomPair() ([]models.CharacterResponse, error) {
	pair, err := s.selectPair()
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			// 角色在 count 和 fetch 之间被删除，重新选取
			pair, err = s.selectPair()
		}
		if err != nil {
			return nil, err
		}
	}

	responses := make([]models.CharacterResponse, 0, 2)
	for _, character := range pair {
		votes, err := s.charRepo.CountVotesForCharacter(character.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, character.ToResponse(votes))
	}
	return responses, nil
}

func (s *characterService) selectPair() ([]*models.Character, error) {
	count, err := s.charRepo.CountCharacters()
	if err != nil {
		return nil, err
	}
	if count < 2 {
		return nil, ErrInsufficientCatalog
	}

	first, second := s.drawPairIndexes(int(count))

	a, err := s.charRepo.GetCharacterByOffset(first)
	if err != nil {
		return nil, err
	}
	b, err := s.charRepo.GetCharacterByOffset(second)
	if err != nil {
		return nil, err
	}
	return []*models.Character{a, b}, nil
}

// GetLeaderboard 返回排行榜，最多 defaultLeaderboardLimit 条
func (s *characterService) GetLeaderboard(limit int) ([]models.CharacterResponse, error) {
	if limit <= 0 || limit > defaultLeaderboardLimit {
		limit = defaultLeaderboardLimit
	}
	rows, err := s.charRepo.GetLeaderboard(limit)
	if err != nil {
		return nil, err
	}
	responses := make([]models.CharacterResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.ToResponse())
	}
	return responses, nil
}

// ListCharactersWithVotes 返回全部角色及票数
func (s *characterService) ListCharactersWithVotes() ([]models.CharacterResponse, error) {
	rows, err := s.charRepo.ListCharactersWithVotes()
	if err != nil {
		return nil, err
	}
	responses := make([]models.CharacterResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.ToResponse())
	}
	return responses, nil
}

// ListAllCharacters 管理端角色列表。
// SQLite 的 ORDER BY 是按字节序的，这里用 collator 按英文语序重排名称。
func (s *characterService) ListAllCharacters() ([]models.Character, error) {
	characters, err := s.charRepo.ListCharacters()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(characters, func(i, j int) bool {
		return s.collator.CompareString(characters[i].Name, characters[j].Name) < 0
	})
	return characters, nil
}

// DeleteCharacter 删除角色，有投票引用时返回 ErrCharacterHasVotes。
// 这是引用完整性守卫，不做级联删除。
func (s *characterService) DeleteCharacter(id string) error {
	if _, err := s.charRepo.GetCharacterByID(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrCharacterNotFound
		}
		return err
	}

	votes, err := s.charRepo.CountVotesForCharacter(id)
	if err != nil {
		return err
	}
	if votes > 0 {
		return ErrCharacterHasVotes
	}

	if err := s.charRepo.DeleteCharacter(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrCharacterNotFound
		}
		return err
	}
	return nil
}

// ImportFromAnime 从外部目录导入角色。
// 以 (名称, 解析出的动画标题) 为自然键逐条去重，已存在的跳过、不更新，
// 因此重复导入同一动画是幂等的。中途失败保留已插入的角色。
func (s *characterService) ImportFromAnime(ctx context.Context, animeID int) (*ImportResult, error) {
	title, err := s.source.GetAnimeTitle(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, ErrAnimeNotFound
	}

	jikanCharacters, err := s.source.GetCharacters(ctx, animeID)
	if err != nil {
		return nil, err
	}
	if len(jikanCharacters) == 0 {
		return nil, ErrNoCharactersFound
	}

	result := &ImportResult{
		AnimeTitle: title,
		Fetched:    len(jikanCharacters),
	}

	for _, jc := range jikanCharacters {
		exists, err := s.charRepo.ExistsByNameAndAnime(jc.Name, title)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		character := &models.Character{
			Name:     jc.Name,
			Anime:    title,
			ImageURL: jikan.PreferredImageURL(jc),
		}
		if _, err := s.charRepo.CreateCharacter(character); err != nil {
			return nil, err
		}
		result.Created++
	}

	return result, nil
}
