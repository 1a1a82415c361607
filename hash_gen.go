package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// 生成初始管理员的密码哈希。注册接口创建的用户角色固定为 User，
// 第一个管理员需要手动插入数据库。
func main() {
	password := []byte("admin") // 你要设置的密码
	hashedPassword, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("ID: %s\n", uuid.NewString())
	fmt.Printf("Username: admin\n")
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
// VALUES ('<uuid>', 'admin', '<hash>', 'Admin', strftime('%Y-%m-%d %H:%M:%S', 'now'), strftime('%Y-%m-%d %H:%M:%S', 'now'));
