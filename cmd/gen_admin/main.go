package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"cms-backend/internal/config"
	"cms-backend/internal/dao"
	"cms-backend/internal/data"
	"cms-backend/internal/model"
	"cms-backend/internal/utils"
)

// This helper seeds an administrator account so a fresh deployment can log in.
// The password is bcrypt-hashed before insert; if the username already exists
// the tool aborts instead of overwriting.
//
// Usage:
//
//	go run cmd/gen_admin/main.go -config configs/app.yaml -username admin -password secret
func main() {
	cfgPath := flag.String("config", "configs/app.yaml", "config file path")
	username := flag.String("username", "admin", "administrator username")
	password := flag.String("password", "", "administrator password (required)")
	roleID := flag.Int64("role", model.RoleSuperAdmin, "role id (1 super admin, 2 admin)")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required, use -password")
	}
	if *roleID != model.RoleSuperAdmin && *roleID != model.RoleAdmin {
		log.Fatalf("role %d is not an administrator role", *roleID)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := data.NewMySQL(cfg.MySQL, zap.NewNop())
	if err != nil {
		log.Fatalf("connect mysql: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDao := dao.NewUserDao(db)
	existing, err := userDao.FindByUsername(ctx, *username)
	if err != nil {
		log.Fatalf("query user: %v", err)
	}
	if existing != nil {
		log.Fatalf("user %q already exists (id=%d)", *username, existing.ID)
	}

	hashed, err := utils.BcryptEncode(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	admin := &model.User{
		Username:     *username,
		Password:     hashed,
		RegisterTime: time.Now(),
		Status:       model.UserStatusEnabled,
		RoleID:       *roleID,
		VIP:          0,
		Deleted:      0,
	}
	if err := userDao.Insert(ctx, admin); err != nil {
		log.Fatalf("insert user: %v", err)
	}
	fmt.Printf("created administrator %q with id %d\n", *username, admin.ID)
}
