package utils

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrUsernameLength   = errors.New("用户名长度必须在2到15个字符之间")
	ErrUsernameCharset  = errors.New("用户名不能包含标点或特殊符号")
	ErrPasswordTooShort = errors.New("密码长度不能少于8个字符")
)

const (
	usernameMinLen = 2
	usernameMaxLen = 15
	passwordMinLen = 8
)

// ValidateUsername 校验用户名格式。
// 规则：长度2-15个字符，且不包含标点符号或数学/货币等符号字符。
// 如果有效，返回 nil；否则返回具体的错误。
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	runes := []rune(trimmed)
	if len(runes) < usernameMinLen || len(runes) > usernameMaxLen {
		return ErrUsernameLength
	}
	for _, r := range runes {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			return ErrUsernameCharset
		}
	}
	return nil
}

// ValidatePassword 校验密码强度，目前仅做最小长度检查。
func ValidatePassword(password string) error {
	if len(password) < passwordMinLen {
		return ErrPasswordTooShort
	}
	return nil
}

// NormalizeUsername 返回用于大小写不敏感比较的用户名形式
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
