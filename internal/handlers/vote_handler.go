package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/utils"
)

// VoteHandler 封装了投票相关的 HTTP 处理逻辑
type VoteHandler struct {
	service services.VoteService
}

// NewVoteHandler 创建一个新的 VoteHandler 实例
func NewVoteHandler(service services.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// CastVote godoc
// @Summary 投票
// @Description 为指定角色投一票。投票人取自 Token 声明，不接受请求体中的投票人字段
// @Tags votes
// @Security BearerAuth
// @Produce  json
// @Param characterId path string true "被投票角色的ID"
// @Success 201 {object} utils.SuccessResponse{data=models.VoteResponse} "投票记录"
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "角色未找到"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /votes/{characterId} [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	voterID := c.GetString("userID")
	if voterID == "" {
		// JWTMiddleware 已保证存在，这里兜底
		utils.RespondUnauthorizedError(c)
		return
	}

	winnerID := c.Param("characterId")

	vote, err := h.service.CastVote(voterID, winnerID)
	if err != nil {
		if errors.Is(err, services.ErrCharacterNotFound) {
			utils.RespondNotFoundError(c, "角色")
			return
		}
		utils.RespondInternalServerError(c, "投票失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, vote.ToResponse(), "投票成功")
}

// GetVote godoc
// @Summary 获取投票记录
// @Description 按ID获取单条投票记录
// @Tags votes
// @Security BearerAuth
// @Produce  json
// @Param id path string true "投票记录ID"
// @Success 200 {object} utils.SuccessResponse{data=models.VoteResponse}
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 404 {object} utils.APIErrorResponse "投票记录未找到"
// @Router /votes/{id} [get]
func (h *VoteHandler) GetVote(c *gin.Context) {
	id := c.Param("id")

	vote, err := h.service.GetVoteByID(id)
	if err != nil {
		if errors.Is(err, services.ErrVoteNotFound) {
			utils.RespondNotFoundError(c, "投票记录")
			return
		}
		utils.RespondInternalServerError(c, "获取投票记录失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, vote.ToResponse(), "")
}

// ListVotes godoc
// @Summary 获取投票列表
// @Description 返回全部投票记录
// @Tags votes
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.VoteResponse}
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /votes [get]
func (h *VoteHandler) ListVotes(c *gin.Context) {
	votes, err := h.service.ListVotes()
	if err != nil {
		utils.RespondInternalServerError(c, "获取投票列表失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, votes, "")
}
