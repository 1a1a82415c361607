package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/anime_voting/configs"
	_ "github.com/anime_voting/docs" // swag 生成的 API 文档
	"github.com/anime_voting/internal/handlers"
	"github.com/anime_voting/internal/repositories"
	"github.com/anime_voting/internal/routes"
	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/db"
	"github.com/anime_voting/pkg/jikan"
)

// @title Anime Voting API
// @version 1.0
// @description 动漫角色对比投票服务
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 加载配置
	configs.LoadConfig()

	// 初始化数据库连接
	db.InitDB()        // 从 pkg/db 调用 InitDB
	defer db.CloseDB() // 确保在 main 函数退出时关闭数据库连接

	gormDB := db.GetDB()

	// 仓库层
	userRepo := repositories.NewGormUserRepository(gormDB)
	characterRepo := repositories.NewGormCharacterRepository(gormDB)
	voteRepo := repositories.NewGormVoteRepository(gormDB)

	// 外部角色目录客户端
	jikanClient := jikan.NewClient(configs.AppConfig.JikanBaseURL)

	// 服务层；配对引擎的随机源在这里注入
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	authService := services.NewAuthService(userRepo)
	characterService := services.NewCharacterService(characterRepo, jikanClient, rng)
	voteService := services.NewVoteService(voteRepo)
	adminService := services.NewAdminService(userRepo, characterRepo, voteRepo)

	router := gin.Default()

	// 设置API路由
	routes.SetupRoutes(
		router,
		handlers.NewAuthHandler(authService),
		handlers.NewCharacterHandler(characterService),
		handlers.NewVoteHandler(voteService),
		handlers.NewAdminHandler(characterService, adminService),
	)

	// Swagger 文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
