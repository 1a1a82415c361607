package services

import (
	"errors"

	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/repositories"
)

// ErrVoteNotFound 表示投票记录未找到
var ErrVoteNotFound = errors.New("投票记录未找到")

// VoteService 定义了投票服务的接口
type VoteService interface {
	// CastVote 记录一张投票。voterID 必须来自已验证的Token声明，
	// 不接受客户端提交的投票人字段。
	CastVote(voterID, winnerID string) (*models.Vote, error)
	GetVoteByID(id string) (*models.Vote, error)
	ListVotes() ([]models.VoteResponse, error)
}

// voteService 是 VoteService 的实现
type voteService struct {
	voteRepo repositories.VoteRepository
}

// NewVoteService 创建一个新的 voteService 实例
func NewVoteService(voteRepo repositories.VoteRepository) VoteService {
	return &voteService{voteRepo: voteRepo}
}

// CastVote 处理投票。角色存在性检查在仓库层事务内完成。
// 同一用户重复给同一角色投票不做限制，这是简单人气计数的设计意图。
func (s *voteService) CastVote(voterID, winnerID string) (*models.Vote, error) {
	vote := &models.Vote{
		VoterID:  voterID,
		WinnerID: winnerID,
	}

	created, err := s.voteRepo.CreateVote(vote)
	if err != nil {
		if errors.Is(err, repositories.ErrWinnerNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}
	return created, nil
}

// GetVoteByID 按主键查找投票记录
func (s *voteService) GetVoteByID(id string) (*models.Vote, error) {
	vote, err := s.voteRepo.GetVoteByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	return vote, nil
}

// ListVotes 返回全部投票记录的响应形式
func (s *voteService) ListVotes() ([]models.VoteResponse, error) {
	votes, err := s.voteRepo.ListVotes()
	if err != nil {
		return nil, err
	}
	responses := make([]models.VoteResponse, 0, len(votes))
	for _, vote := range votes {
		responses = append(responses, vote.ToResponse())
	}
	return responses, nil
}
