// Package external 定义 Jikan API (MyAnimeList) 响应的数据结构。
// 仅包含本系统导入角色时用到的字段。
package external

// JikanCharacterImage 单一格式的角色图片
type JikanCharacterImage struct {
	ImageURL      string `json:"image_url"`
	SmallImageURL string `json:"small_image_url,omitempty"`
}

// JikanImages Jikan 返回的多格式图片集合，jpg 优先于 webp
type JikanImages struct {
	JPG  JikanCharacterImage `json:"jpg"`
	WebP JikanCharacterImage `json:"webp"`
}

// JikanCharacter Jikan 角色条目
type JikanCharacter struct {
	MalID  int         `json:"mal_id"`
	Name   string      `json:"name"`
	URL    string      `json:"url"`
	Images JikanImages `json:"images"`
}

// JikanCharacterWrapper Jikan 的角色列表数据项把角色包在 "character" 字段里
type JikanCharacterWrapper struct {
	Character JikanCharacter `json:"character"`
}

// JikanCharacterListResponse GET /anime/{id}/characters 的响应
type JikanCharacterListResponse struct {
	Data []JikanCharacterWrapper `json:"data"`
}

// JikanAnime GET /anime/{id} 的数据体，仅取标题
type JikanAnime struct {
	MalID int    `json:"mal_id"`
	Title string `json:"title"`
}

// JikanAnimeResponse GET /anime/{id} 的响应
type JikanAnimeResponse struct {
	Data JikanAnime `json:"data"`
}
