package services

import (
	"errors"

	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/repositories"
)

// ErrUserNotFound 表示用户未找到
var ErrUserNotFound = errors.New("用户未找到")

// ErrInvalidRole 表示请求的角色不在枚举范围内
var ErrInvalidRole = errors.New("无效的角色，必须是 'User' 或 'Admin'")

// MostVotedCharacter 得票最多的角色统计
type MostVotedCharacter struct {
	CharacterID   string `json:"characterId"`
	CharacterName string `json:"characterName"`
	VoteCount     int64  `json:"voteCount"`
}

// SystemStats 系统聚合统计。
// MostVotedCharacter 在没有任何投票时为 null，而不是错误。
type SystemStats struct {
	TotalUsers         int64               `json:"totalUsers"`
	TotalCharacters    int64               `json:"totalCharacters"`
	TotalVotes         int64               `json:"totalVotes"`
	AdminUsers         int64               `json:"adminUsers"`
	RegularUsers       int64               `json:"regularUsers"`
	MostVotedCharacter *MostVotedCharacter `json:"mostVotedCharacter"`
}

// AdminService 定义了管理端服务的接口：用户管理与系统统计
type AdminService interface {
	// GetUsersWithVoteCounts 返回全部用户及其投票次数
	GetUsersWithVoteCounts() ([]repositories.UserWithVoteCount, error)
	// UpdateUserRole 修改用户角色，角色必须在 {User, Admin} 枚举内
	UpdateUserRole(id string, role string) error
	// GetSystemStats 计算系统聚合统计
	GetSystemStats() (*SystemStats, error)
}

// adminService 是 AdminService 的实现
type adminService struct {
	userRepo repositories.UserRepository
	charRepo repositories.CharacterRepository
	voteRepo repositories.VoteRepository
}

// NewAdminService 创建一个新的 adminService 实例
func NewAdminService(userRepo repositories.UserRepository, charRepo repositories.CharacterRepository, voteRepo repositories.VoteRepository) AdminService {
	return &adminService{
		userRepo: userRepo,
		charRepo: charRepo,
		voteRepo: voteRepo,
	}
}

// GetUsersWithVoteCounts 透传仓库层的聚合查询
func (s *adminService) GetUsersWithVoteCounts() ([]repositories.UserWithVoteCount, error) {
	return s.userRepo.GetUsersWithVoteCounts()
}

// UpdateUserRole 修改用户角色。
// 校验失败或用户不存在时，存储的角色保持不变。
func (s *adminService) UpdateUserRole(id string, role string) error {
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	if err := s.userRepo.UpdateUserRole(id, role); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// GetSystemStats 计算聚合统计。
// 所有计数都是读取时聚合得到的派生值。
func (s *adminService) GetSystemStats() (*SystemStats, error) {
	totalUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, err
	}
	totalCharacters, err := s.charRepo.CountCharacters()
	if err != nil {
		return nil, err
	}
	totalVotes, err := s.voteRepo.CountVotes()
	if err != nil {
		return nil, err
	}
	adminUsers, err := s.userRepo.CountUsersByRole(models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	regularUsers, err := s.userRepo.CountUsersByRole(models.RoleUser)
	if err != nil {
		return nil, err
	}

	stats := &SystemStats{
		TotalUsers:      totalUsers,
		TotalCharacters: totalCharacters,
		TotalVotes:      totalVotes,
		AdminUsers:      adminUsers,
		RegularUsers:    regularUsers,
	}

	mostVoted, err := s.voteRepo.GetMostVoted()
	if err != nil {
		return nil, err
	}
	if mostVoted != nil {
		entry := &MostVotedCharacter{
			CharacterID: mostVoted.WinnerID,
			VoteCount:   mostVoted.VoteCount,
		}
		// 角色可能已被删除，名称查不到时留空
		if character, err := s.charRepo.GetCharacterByID(mostVoted.WinnerID); err == nil {
			entry.CharacterName = character.Name
		} else if !errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, err
		}
		stats.MostVotedCharacter = entry
	}

	return stats, nil
}
