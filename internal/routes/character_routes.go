package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/handlers"
)

// SetupCharacterRoutes 设置角色公共路由，无需认证
func SetupCharacterRoutes(router *gin.RouterGroup, handler *handlers.CharacterHandler) {
	apiV1 := router.Group("/v1")
	{
		characterGroup := apiV1.Group("/characters")
		{
			// GET /api/v1/characters
			characterGroup.GET("", handler.GetCharacters)
			// GET /api/v1/characters/pair
			characterGroup.GET("/pair", handler.GetRandomPair)
			// GET /api/v1/characters/leaderboard
			characterGroup.GET("/leaderboard", handler.GetLeaderboard)
		}
	}
}
