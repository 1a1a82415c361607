package handlers_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anime_voting/configs"
	"github.com/anime_voting/internal/handlers"
	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/repositories"
	"github.com/anime_voting/internal/routes"
	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/jikan"
)

func init() {
	gin.SetMode(gin.TestMode)
	configs.LoadConfig()
}

// newTestRouter 组装完整的路由栈（中间件、处理器、服务、仓库）和内存数据库。
// jikanBaseURL 指向测试内的 httptest 服务，不访问真实的外部目录。
func newTestRouter(t *testing.T, jikanBaseURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Character{}, &models.Vote{}))

	userRepo := repositories.NewGormUserRepository(db)
	charRepo := repositories.NewGormCharacterRepository(db)
	voteRepo := repositories.NewGormVoteRepository(db)

	rng := rand.New(rand.NewSource(42))
	authService := services.NewAuthService(userRepo)
	characterService := services.NewCharacterService(charRepo, jikan.NewClient(jikanBaseURL), rng)
	voteService := services.NewVoteService(voteRepo)
	adminService := services.NewAdminService(userRepo, charRepo, voteRepo)

	router := gin.New()
	routes.SetupRoutes(
		router,
		handlers.NewAuthHandler(authService),
		handlers.NewCharacterHandler(characterService),
		handlers.NewVoteHandler(voteService),
		handlers.NewAdminHandler(characterService, adminService),
	)
	return router, db
}

// doRequest 发送一次 JSON 请求，token 非空时附带 Bearer 认证头
func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody 将响应体解析为通用 map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin 通过 HTTP 注册并登录，返回签发的 Token
func registerAndLogin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", gin.H{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	return login(t, router, username, password)
}

// login 通过 HTTP 登录已有用户，返回签发的 Token
func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// seedAdmin 直接在库里种入一个管理员用户，再通过 HTTP 登录拿 Token。
// 角色写在 Token 声明里，必须在签发前就是 Admin。
func seedAdmin(t *testing.T, router *gin.Engine, db *gorm.DB, username, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)

	return login(t, router, username, password)
}

// seedTestCharacter 直接在库里种入一个角色
func seedTestCharacter(t *testing.T, db *gorm.DB, name, anime string) *models.Character {
	t.Helper()
	ch := &models.Character{Name: name, Anime: anime, ImageURL: "https://cdn.example.com/" + name + ".jpg"}
	require.NoError(t, db.Create(ch).Error)
	return ch
}
