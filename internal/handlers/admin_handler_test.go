package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/models/external"
)

// newJikanStub 启动一个模拟 Jikan API 的 httptest 服务
func newJikanStub(t *testing.T, animeTitle string, characters []external.JikanCharacterWrapper) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/anime/1", func(w http.ResponseWriter, r *http.Request) {
		resp := external.JikanAnimeResponse{Data: external.JikanAnime{MalID: 1, Title: animeTitle}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/anime/1/characters", func(w http.ResponseWriter, r *http.Request) {
		resp := external.JikanCharacterListResponse{Data: characters}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	// 其余路径一律 404，模拟不存在的动画
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAdminAccessControl(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")

	// 未认证返回 401
	w := doRequest(t, router, http.MethodGet, "/api/v1/admin/test", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// 已认证但不是管理员返回 403
	userToken := registerAndLogin(t, router, "regular1", "password123")
	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/test", nil, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	// 管理员访问成功
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")
	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/test", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestImportCharactersIdempotent(t *testing.T) {
	stub := newJikanStub(t, "Shingeki no Kyojin", []external.JikanCharacterWrapper{
		{Character: external.JikanCharacter{
			MalID: 10,
			Name:  "Mikasa Ackerman",
			Images: external.JikanImages{
				JPG: external.JikanCharacterImage{ImageURL: "https://cdn.example.com/mikasa.jpg"},
			},
		}},
		{Character: external.JikanCharacter{
			MalID: 11,
			Name:  "Eren Yeager",
			Images: external.JikanImages{
				WebP: external.JikanCharacterImage{ImageURL: "https://cdn.example.com/eren.webp"},
			},
		}},
	})

	router, db := newTestRouter(t, stub.URL)
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/characters/1", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	result := decodeBody(t, w)["data"].(map[string]interface{})
	require.Equal(t, "Shingeki no Kyojin", result["animeTitle"])
	require.Equal(t, float64(2), result["fetched"])
	require.Equal(t, float64(2), result["created"])
	require.Equal(t, float64(0), result["skipped"])

	// jpg 缺失时回退到 webp
	var eren models.Character
	require.NoError(t, db.First(&eren, "name = ?", "Eren Yeager").Error)
	require.Equal(t, "https://cdn.example.com/eren.webp", eren.ImageURL)

	// 重复导入是幂等的，全部跳过
	w = doRequest(t, router, http.MethodPost, "/api/v1/admin/characters/1", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	result = decodeBody(t, w)["data"].(map[string]interface{})
	require.Equal(t, float64(0), result["created"])
	require.Equal(t, float64(2), result["skipped"])

	var count int64
	require.NoError(t, db.Model(&models.Character{}).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestImportUnknownAnimeReturns404(t *testing.T) {
	stub := newJikanStub(t, "Shingeki no Kyojin", nil)
	router, db := newTestRouter(t, stub.URL)
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/characters/999", nil, adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportInvalidAnimeID(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	w := doRequest(t, router, http.MethodPost, "/api/v1/admin/characters/abc", nil, adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCharacter(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	voted := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	unvoted := seedTestCharacter(t, db, "Eren", "Shingeki no Kyojin")

	voterToken := registerAndLogin(t, router, "voter1", "password123")
	w := doRequest(t, router, http.MethodPost, "/api/v1/votes/"+voted.ID, nil, voterToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// 已有投票引用的角色不允许删除
	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/characters/"+voted.ID, nil, adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 无投票引用的角色可以删除
	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/characters/"+unvoted.ID, nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/admin/characters/no-such-id", nil, adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserRoleEndpoint(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")
	registerAndLogin(t, router, "regular1", "password123")

	var user models.User
	require.NoError(t, db.First(&user, "username = ?", "regular1").Error)

	// 角色必须在枚举范围内
	w := doRequest(t, router, http.MethodPut, "/api/v1/admin/users/"+user.ID+"/role", gin.H{
		"role": "Moderator",
	}, adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/admin/users/no-such-user/role", gin.H{
		"role": models.RoleAdmin,
	}, adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/v1/admin/users/"+user.ID+"/role", gin.H{
		"role": models.RoleAdmin,
	}, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, db.First(&updated, "id = ?", user.ID).Error)
	require.Equal(t, models.RoleAdmin, updated.Role)
}

func TestListUsersWithVoteCounts(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	ch := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	voterToken := registerAndLogin(t, router, "voter1", "password123")
	w := doRequest(t, router, http.MethodPost, "/api/v1/votes/"+ch.ID, nil, voterToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/users", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	users := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, users, 2)
	counts := make(map[string]float64, len(users))
	for _, item := range users {
		entry := item.(map[string]interface{})
		counts[entry["username"].(string)] = entry["voteCount"].(float64)
	}
	require.Equal(t, float64(0), counts["admin1"])
	require.Equal(t, float64(1), counts["voter1"])
}

func TestGetStats(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	adminToken := seedAdmin(t, router, db, "admin1", "adminpassword")

	// 没有任何投票时 mostVotedCharacter 为 null
	w := doRequest(t, router, http.MethodGet, "/api/v1/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeBody(t, w)["data"].(map[string]interface{})
	require.Equal(t, float64(1), stats["totalUsers"])
	require.Equal(t, float64(0), stats["totalVotes"])
	require.Nil(t, stats["mostVotedCharacter"])

	ch := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	voterToken := registerAndLogin(t, router, "voter1", "password123")
	w = doRequest(t, router, http.MethodPost, "/api/v1/votes/"+ch.ID, nil, voterToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/admin/stats", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	stats = decodeBody(t, w)["data"].(map[string]interface{})
	require.Equal(t, float64(2), stats["totalUsers"])
	require.Equal(t, float64(1), stats["totalCharacters"])
	require.Equal(t, float64(1), stats["totalVotes"])
	require.Equal(t, float64(1), stats["adminUsers"])
	require.Equal(t, float64(1), stats["regularUsers"])
	mostVoted := stats["mostVotedCharacter"].(map[string]interface{})
	require.Equal(t, ch.ID, mostVoted["characterId"])
	require.Equal(t, "Mikasa", mostVoted["characterName"])
	require.Equal(t, float64(1), mostVoted["voteCount"])
}
