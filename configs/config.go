package configs

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret        string
	ServerPort       string
	JikanBaseURL     string
	TokenExpiryHours int
}

const (
	defaultJWTSecret        = "animevote"                // Default JWT secret, used if env var is not set.
	envJWTSecretKey         = "JWT_SECRET_KEY"           // Environment variable name for the JWT secret.
	defaultServerPort       = "8080"                     // Default server port.
	envServerPortKey        = "SERVER_PORT"              // Environment variable name for the server port.
	defaultJikanBaseURL     = "https://api.jikan.moe/v4" // 默认 Jikan API 基础URL
	envJikanBaseURLKey      = "JIKAN_BASE_URL"           // Jikan API 基础URL环境变量名
	defaultTokenExpiryHours = 24                         // Token 默认有效期（小时）
	envTokenExpiryHoursKey  = "TOKEN_EXPIRY_HOURS"       // Token 有效期环境变量名
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("警告: %s 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		jikanBaseURL := os.Getenv(envJikanBaseURLKey)
		if jikanBaseURL == "" {
			jikanBaseURL = defaultJikanBaseURL
		}

		tokenExpiryHours := defaultTokenExpiryHours
		if v := os.Getenv(envTokenExpiryHoursKey); v != "" {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				log.Printf("警告: %s 的值 %q 无效，使用默认有效期 %d 小时。", envTokenExpiryHoursKey, v, defaultTokenExpiryHours)
			} else {
				tokenExpiryHours = parsed
			}
		}

		AppConfig = Configuration{
			JWTSecret:        jwtSecret,
			ServerPort:       serverPort,
			JikanBaseURL:     jikanBaseURL,
			TokenExpiryHours: tokenExpiryHours,
		}

		log.Println("应用配置已加载。")
	})
}
