package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anime_voting/internal/auth"
	"github.com/anime_voting/internal/services"
	"github.com/anime_voting/pkg/utils"
)

// AuthHandler 封装了认证相关的 HTTP 处理逻辑
type AuthHandler struct {
	service services.AuthService
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(service services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 登录响应中的用户基本信息
type UserInfo struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// Register godoc
// @Summary 用户注册
// @Description 创建一个新用户，角色固定为 User，不签发 Token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body RegisterRequest true "注册信息"
// @Success 200 {object} utils.SuccessResponse "注册成功"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或用户名已被占用"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if _, err := h.service.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			utils.RespondAPIError(c, http.StatusBadRequest, services.ErrDuplicateUsername.Error(), nil)
			return
		}
		utils.RespondInternalServerError(c, "注册失败", err.Error())
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "注册成功")
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户凭证并返回 JWT；用户不存在和密码错误返回相同的提示
// @Tags auth
// @Accept  json
// @Produce  json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} utils.SuccessResponse{data=LoginResponse} "登录成功，返回 Token 和用户信息"
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误"
// @Failure 401 {object} utils.APIErrorResponse "无效的用户名或密码"
// @Failure 500 {object} utils.APIErrorResponse "无法生成Token"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	token, user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.RespondUnauthorizedError(c, services.ErrInvalidCredentials.Error())
			return
		}
		utils.RespondInternalServerError(c, "登录失败", err.Error())
		return
	}

	loginResp := LoginResponse{
		Token: token,
		User: UserInfo{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}
	utils.RespondSuccess(c, http.StatusOK, loginResp, "登录成功")
}

// Logout godoc
// @Summary 用户登出
// @Description 将当前 Token 的 JTI 加入拒绝列表使其立即失效
// @Tags auth
// @Security BearerAuth
// @Accept  json
// @Produce  json
// @Success 200 {object} utils.SuccessResponse "成功登出"
// @Failure 400 {object} utils.APIErrorResponse "错误的请求 (例如，上下文中缺少JTI或EXP)"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	jtiVal, jtiExists := c.Get("jti")
	expVal, expExists := c.Get("exp")

	if !jtiExists || !expExists {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: JTI or EXP not found in context", nil)
		return
	}

	jti, okJTI := jtiVal.(string)
	exp, okEXP := expVal.(time.Time)

	if !okJTI || jti == "" {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: Invalid JTI", nil)
		return
	}
	if !okEXP {
		utils.RespondAPIError(c, http.StatusBadRequest, "Logout context error: Invalid EXP", nil)
		return
	}

	auth.AddToDenylist(jti, exp)
	utils.RespondSuccess(c, http.StatusOK, nil, "成功登出")
}

// Profile godoc
// @Summary 当前用户信息
// @Description 返回 Token 声明中解析出的当前用户身份
// @Tags auth
// @Security BearerAuth
// @Produce  json
// @Success 200 {object} utils.SuccessResponse{data=UserInfo}
// @Failure 401 {object} utils.APIErrorResponse "未认证或 Token 无效/过期"
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	info := UserInfo{
		UserID:   c.GetString("userID"),
		Username: c.GetString("username"),
		Role:     c.GetString("role"),
	}
	utils.RespondSuccess(c, http.StatusOK, info, "")
}
