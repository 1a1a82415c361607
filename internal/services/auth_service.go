package services

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/anime_voting/configs"
	"github.com/anime_voting/internal/auth"
	"github.com/anime_voting/internal/models"
	"github.com/anime_voting/internal/repositories"
	"github.com/anime_voting/pkg/utils"
)

// ErrDuplicateUsername 表示用户名已被占用（大小写不敏感）
var ErrDuplicateUsername = errors.New("用户名已被占用")

// ErrInvalidCredentials 表示用户名或密码错误。
// 用户不存在和密码错误返回同一个错误，避免用户名枚举。
var ErrInvalidCredentials = errors.New("无效的用户名或密码")

// ErrTokenGeneration 表示Token签发失败
var ErrTokenGeneration = errors.New("无法生成Token")

// AuthService 定义了认证服务的接口
type AuthService interface {
	// Register 创建一个新用户，角色固定为 User，不签发Token
	Register(username, password string) (*models.User, error)
	// Login 验证凭证并签发带用户ID、用户名和角色声明的JWT
	Login(username, password string) (token string, user *models.User, err error)
}

// authService 是 AuthService 的实现
type authService struct {
	userRepo repositories.UserRepository
}

// NewAuthService 创建一个新的 authService 实例
func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register 处理用户注册。
// 用户名和密码格式校验由调用方（handler 绑定校验）完成后，
// 这里只负责唯一性检查和哈希存储。
// 用户名在入库前去除首尾空白，保证与登录时的归一化查找一致。
func (s *authService) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleUser, // 注册用户角色固定为 User，只能由管理员提升
	}

	created, err := s.userRepo.CreateUser(user)
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameExists) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return created, nil
}

// Login 校验凭证并签发Token。
// 查找失败和哈希校验失败都返回 ErrInvalidCredentials，对外不可区分。
func (s *authService) Login(username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetUserByUsernameInsensitive(utils.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(time.Duration(configs.AppConfig.TokenExpiryHours) * time.Hour)
	claims := &auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "anime_voting",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(configs.AppConfig.JWTSecret))
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return tokenString, user, nil
}
