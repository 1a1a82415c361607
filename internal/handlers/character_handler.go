package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/utils"
)

// CharacterHandler 封装了角色相关的公共 HTTP 处理逻辑
type CharacterHandler struct {
	service services.CharacterService
}

// NewCharacterHandler 创建一个新的 CharacterHandler 实例
func NewCharacterHandler(service services.CharacterService) *CharacterHandler {
	return &CharacterHandler{service: service}
}

// GetCharacters godoc
// @Summary 获取角色列表
// @Description 返回全部角色及各自的当前票数（票数为聚合查询的派生值）
// @Tags characters
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.CharacterResponse}
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /characters [get]
func (h *CharacterHandler) GetCharacters(c *gin.Context) {
	characters, err := h.service.ListCharactersWithVotes()
	if err != nil {
		utils.RespondInternalServerError(c, "获取角色列表失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, characters, "")
}

// GetRandomPair godoc
// @Summary 获取随机配对
// @Description 从全部角色中均匀随机选出两个不同的角色用于对比投票
// @Tags characters
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.CharacterResponse} "两个不同的角色"
// @Failure 400 {object} utils.APIErrorResponse "角色数量不足"
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /characters/pair [get]
func (h *CharacterHandler) GetRandomPair(c *gin.Context) {
	pair, err := h.service.GetRandomPair()
	if err != nil {
		if errors.Is(err, services.ErrInsufficientCatalog) {
			utils.RespondAPIError(c, http.StatusBadRequest, services.ErrInsufficientCatalog.Error(), nil)
			return
		}
		utils.RespondInternalServerError(c, "获取随机配对失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, pair, "")
}

// GetLeaderboard godoc
// @Summary 获取排行榜
// @Description 返回票数降序排列的角色，最多10条，平票按入库顺序
// @Tags characters
// @Produce  json
// @Param limit query int false "返回条数 (默认10，上限10)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]models.CharacterResponse}
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /characters/leaderboard [get]
func (h *CharacterHandler) GetLeaderboard(c *gin.Context) {
	type LeaderboardQuery struct {
		Limit int `form:"limit,default=10"`
	}

	var query LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	leaderboard, err := h.service.GetLeaderboard(query.Limit)
	if err != nil {
		utils.RespondInternalServerError(c, "获取排行榜失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, leaderboard, "")
}
