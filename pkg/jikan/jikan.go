// Package jikan 封装对 Jikan API (https://jikan.moe) 的只读访问。
// 本系统只用到两个操作：按动画ID获取标题、按动画ID获取角色列表。
package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/anime_voting/internal/models/external"
)

const defaultTimeout = 10 * time.Second

// Client 是 Jikan API 的 HTTP 客户端。
// BaseURL 可注入，测试时指向 httptest 服务器。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 创建一个新的 Jikan 客户端，外部调用带有限定超时
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// NewClientWithHTTPClient 允许注入自定义 http.Client (测试用)
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetAnimeTitle 获取指定动画的标题。
// 动画不存在或上游返回非2xx时返回空字符串而不是错误，交由调用方判定。
func (c *Client) GetAnimeTitle(ctx context.Context, animeID int) (string, error) {
	url := fmt.Sprintf("%s/anime/%d", c.baseURL, animeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求 Jikan 动画信息失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var animeResp external.JikanAnimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&animeResp); err != nil {
		return "", fmt.Errorf("解析 Jikan 动画响应失败: %w", err)
	}
	return animeResp.Data.Title, nil
}

// GetCharacters 获取指定动画的角色列表。
// Jikan 把角色包装在 data[].character 中，这里解包后返回。
// 上游返回非2xx时返回空切片。
func (c *Client) GetCharacters(ctx context.Context, animeID int) ([]external.JikanCharacter, error) {
	url := fmt.Sprintf("%s/anime/%d/characters", c.baseURL, animeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 Jikan 角色列表失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []external.JikanCharacter{}, nil
	}

	var listResp external.JikanCharacterListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("解析 Jikan 角色响应失败: %w", err)
	}

	characters := make([]external.JikanCharacter, 0, len(listResp.Data))
	for _, wrapper := range listResp.Data {
		if wrapper.Character.Name == "" {
			continue
		}
		characters = append(characters, wrapper.Character)
	}
	return characters, nil
}

// PreferredImageURL 按格式优先级返回角色图片：jpg 优先，webp 其次，都没有返回空串
func PreferredImageURL(ch external.JikanCharacter) string {
	if ch.Images.JPG.ImageURL != "" {
		return ch.Images.JPG.ImageURL
	}
	if ch.Images.WebP.ImageURL != "" {
		return ch.Images.WebP.ImageURL
	}
	return ""
}
