package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/auth"
	"github.com/anime_voting/internal/handlers"
	"github.com/anime_voting/internal/models"
)

// SetupAdminRoutes 设置管理端路由。
// 先验证JWT再检查 Admin 角色：未认证返回 401，角色不符返回 403。
func SetupAdminRoutes(router *gin.RouterGroup, handler *handlers.AdminHandler) {
	apiV1 := router.Group("/v1")
	{
		adminGroup := apiV1.Group("/admin")
		adminGroup.Use(auth.JWTMiddleware(), auth.RequireRole(models.RoleAdmin))
		{
			// GET /api/v1/admin/test
			adminGroup.GET("/test", handler.Test)
			// GET /api/v1/admin/characters
			adminGroup.GET("/characters", handler.ListCharacters)
			// POST /api/v1/admin/characters/:animeId
			adminGroup.POST("/characters/:animeId", handler.ImportCharacters)
			// DELETE /api/v1/admin/characters/:id
			adminGroup.DELETE("/characters/:id", handler.DeleteCharacter)
			// GET /api/v1/admin/users
			adminGroup.GET("/users", handler.ListUsers)
			// PUT /api/v1/admin/users/:id/role
			adminGroup.PUT("/users/:id/role", handler.UpdateUserRole)
			// GET /api/v1/admin/stats
			adminGroup.GET("/stats", handler.GetStats)
		}
	}
}
