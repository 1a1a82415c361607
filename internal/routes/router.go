package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/handlers"
)

// SetupRoutes 初始化所有路由
func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	characterHandler *handlers.CharacterHandler,
	voteHandler *handlers.VoteHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := router.Group("/api")
	SetupAuthRoutes(api, authHandler)           // 注册认证路由
	SetupCharacterRoutes(api, characterHandler) // 注册角色公共路由
	SetupVoteRoutes(api, voteHandler)           // 注册投票路由
	SetupAdminRoutes(api, adminHandler)         // 注册管理端路由
}
