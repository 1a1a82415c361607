package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/auth"
	"github.com/anime_voting/internal/handlers"
)

// SetupVoteRoutes 设置投票路由，全部需要认证
func SetupVoteRoutes(router *gin.RouterGroup, handler *handlers.VoteHandler) {
	apiV1 := router.Group("/v1")
	{
		voteGroup := apiV1.Group("/votes")
		voteGroup.Use(auth.JWTMiddleware())
		{
			// GET /api/v1/votes
			voteGroup.GET("", handler.ListVotes)
			// GET /api/v1/votes/:id
			voteGroup.GET("/:id", handler.GetVote)
			// POST /api/v1/votes/:characterId
			voteGroup.POST("/:characterId", handler.CastVote)
		}
	}
}
