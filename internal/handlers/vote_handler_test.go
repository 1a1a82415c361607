package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// charactersByName 把角色列表响应整理为 名称 -> 票数
func charactersByName(t *testing.T, data []interface{}) map[string]float64 {
	t.Helper()
	votes := make(map[string]float64, len(data))
	for _, item := range data {
		entry := item.(map[string]interface{})
		votes[entry["name"].(string)] = entry["votes"].(float64)
	}
	return votes
}

func TestVotingEndToEnd(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")

	a := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	b := seedTestCharacter(t, db, "Eren", "Shingeki no Kyojin")
	token := registerAndLogin(t, router, "voter1", "password123")

	// 获取配对，应返回两个不同的角色
	w := doRequest(t, router, http.MethodGet, "/api/v1/characters/pair", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	pair := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, pair, 2)
	first := pair[0].(map[string]interface{})
	second := pair[1].(map[string]interface{})
	require.NotEqual(t, first["id"], second["id"])

	// 给 A 投一票
	w = doRequest(t, router, http.MethodPost, "/api/v1/votes/"+a.ID, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)
	vote := decodeBody(t, w)["data"].(map[string]interface{})
	require.NotEmpty(t, vote["id"])
	require.Equal(t, a.ID, vote["winner"])

	// 角色列表反映派生票数：A=1, B=0
	w = doRequest(t, router, http.MethodGet, "/api/v1/characters", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	votes := charactersByName(t, decodeBody(t, w)["data"].([]interface{}))
	require.Equal(t, float64(1), votes["Mikasa"])
	require.Equal(t, float64(0), votes["Eren"])

	// 排行榜按票数降序，A 在 B 前面
	w = doRequest(t, router, http.MethodGet, "/api/v1/characters/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	board := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, board, 2)
	require.Equal(t, a.ID, board[0].(map[string]interface{})["id"])
	require.Equal(t, b.ID, board[1].(map[string]interface{})["id"])
}

func TestCastVoteRequiresAuth(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	ch := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")

	w := doRequest(t, router, http.MethodPost, "/api/v1/votes/"+ch.ID, nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCastVoteUnknownCharacterReturns404(t *testing.T) {
	router, _ := newTestRouter(t, "http://jikan.invalid")
	token := registerAndLogin(t, router, "voter1", "password123")

	w := doRequest(t, router, http.MethodPost, "/api/v1/votes/no-such-character", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVoteAndList(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	ch := seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")
	token := registerAndLogin(t, router, "voter1", "password123")

	w := doRequest(t, router, http.MethodPost, "/api/v1/votes/"+ch.ID, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)
	voteID := decodeBody(t, w)["data"].(map[string]interface{})["id"].(string)

	w = doRequest(t, router, http.MethodGet, "/api/v1/votes/"+voteID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, ch.ID, decodeBody(t, w)["data"].(map[string]interface{})["winner"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/votes/no-such-vote", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/votes", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["data"].([]interface{}), 1)
}

func TestPairWithInsufficientCharacters(t *testing.T) {
	router, db := newTestRouter(t, "http://jikan.invalid")
	seedTestCharacter(t, db, "Mikasa", "Shingeki no Kyojin")

	// 只有一个角色时无法配对
	w := doRequest(t, router, http.MethodGet, "/api/v1/characters/pair", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
