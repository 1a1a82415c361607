package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/utils"
)

// AdminHandler 封装了管理端的 HTTP 处理逻辑。
// 路由层已套用 JWTMiddleware + RequireRole(Admin)，这里不再做权限判断。
type AdminHandler struct {
	characterService services.CharacterService
	adminService     services.AdminService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例
func NewAdminHandler(characterService services.CharacterService, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		characterService: characterService,
		adminService:     adminService,
	}
}

// UpdateRoleRequest 修改角色请求体
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Test godoc
// @Summary 管理员访问确认
// @Description 验证当前 Token 具有管理员权限
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.APIErrorResponse "未认证"
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /admin/test [get]
func (h *AdminHandler) Test(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message":   "Admin access confirmed",
		"timestamp": time.Now().UTC(),
		"user":      c.GetString("username"),
	}, "")
}

// ListCharacters godoc
// @Summary 获取角色列表（管理端）
// @Description 返回全部角色记录，按名称排序
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]models.Character}
// @Failure 401 {object} utils.APIErrorResponse "未认证"
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /admin/characters [get]
func (h *AdminHandler) ListCharacters(c *gin.Context) {
	characters, err := h.characterService.ListAllCharacters()
	if err != nil {
		utils.RespondInternalServerError(c, "获取角色列表失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, characters, "")
}

// ImportCharacters godoc
// @Summary 从外部目录导入角色
// @Description 按动画ID从 Jikan API 导入角色，(名称, 动画) 已存在的跳过，重复导入是幂等的
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Param animeId path int true "MyAnimeList 动画ID"
// @Success 200 {object} utils.SuccessResponse{data=services.ImportResult} "导入统计"
// @Failure 400 {object} utils.APIErrorResponse "动画ID无效或上游调用失败"
// @Failure 404 {object} utils.APIErrorResponse "动画不存在或没有可导入的角色"
// @Router /admin/characters/{animeId} [post]
func (h *AdminHandler) ImportCharacters(c *gin.Context) {
	animeID, err := strconv.Atoi(c.Param("animeId"))
	if err != nil {
		utils.RespondValidationError(c, "动画ID必须是整数")
		return
	}

	result, err := h.characterService.ImportFromAnime(c.Request.Context(), animeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAnimeNotFound):
			utils.RespondAPIError(c, http.StatusNotFound, services.ErrAnimeNotFound.Error(), nil)
		case errors.Is(err, services.ErrNoCharactersFound):
			utils.RespondAPIError(c, http.StatusNotFound, services.ErrNoCharactersFound.Error(), nil)
		default:
			utils.RespondAPIError(c, http.StatusBadRequest, "导入失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result, "角色导入完成")
}

// DeleteCharacter godoc
// @Summary 删除角色
// @Description 删除指定角色；已有投票引用的角色不允许删除（引用完整性守卫）
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Param id path string true "角色ID"
// @Success 200 {object} utils.SuccessResponse "删除成功"
// @Failure 400 {object} utils.APIErrorResponse "角色已有投票记录"
// @Failure 404 {object} utils.APIErrorResponse "角色未找到"
// @Router /admin/characters/{id} [delete]
func (h *AdminHandler) DeleteCharacter(c *gin.Context) {
	id := c.Param("id")

	if err := h.characterService.DeleteCharacter(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCharacterNotFound):
			utils.RespondNotFoundError(c, "角色")
		case errors.Is(err, services.ErrCharacterHasVotes):
			utils.RespondAPIError(c, http.StatusBadRequest, services.ErrCharacterHasVotes.Error(), nil)
		default:
			utils.RespondInternalServerError(c, "删除角色失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "角色删除成功")
}

// ListUsers godoc
// @Summary 获取用户列表
// @Description 返回全部用户及各自的投票次数，按用户名排序
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=[]repositories.UserWithVoteCount}
// @Failure 401 {object} utils.APIErrorResponse "未认证"
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.GetUsersWithVoteCounts()
	if err != nil {
		utils.RespondInternalServerError(c, "获取用户列表失败", err.Error())
		return
	}
	utils.RespondSuccess(c, http.StatusOK, users, "")
}

// UpdateUserRole godoc
// @Summary 修改用户角色
// @Description 将用户角色设置为 User 或 Admin；已签发的 Token 在过期或登出前仍按旧角色生效
// @Tags admin
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Param id path string true "用户ID"
// @Param role body UpdateRoleRequest true "目标角色"
// @Success 200 {object} utils.SuccessResponse "修改成功"
// @Failure 400 {object} utils.APIErrorResponse "无效的角色"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id := c.Param("id")

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.adminService.UpdateUserRole(id, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			utils.RespondAPIError(c, http.StatusBadRequest, services.ErrInvalidRole.Error(), nil)
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondNotFoundError(c, "用户")
		default:
			utils.RespondInternalServerError(c, "修改用户角色失败", err.Error())
		}
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "用户角色已更新为 "+req.Role)
}

// GetStats godoc
// @Summary 获取系统统计
// @Description 返回用户、角色、投票的聚合统计；没有任何投票时 mostVotedCharacter 为 null
// @Tags admin
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=services.SystemStats}
// @Failure 500 {object} utils.APIErrorResponse "服务器内部错误"
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetSystemStats()
	if err != nil {
		// 详细错误只记日志，对外返回通用消息
		log.Printf("GetSystemStats failed: %v", err)
		utils.RespondInternalServerError(c, "获取系统统计失败")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, stats, "")
}
