package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/auth"
	"github.com/anime_voting/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup, handler *handlers.AuthHandler) {
	apiV1 := router.Group("/v1")
	{
		// 公共认证路由组 (注册、登录)
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/register
			publicAuthGroup.POST("/register", handler.Register)
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", handler.Login)
		}

		// 受保护的认证路由组 (登出、当前用户)
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware()) // 应用JWT中间件到这个组
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", handler.Logout)
			// GET /api/v1/auth/profile
			protectedAuthGroup.GET("/profile", handler.Profile)
		}
	}
}
