// Command issue-token prints a signed bearer token for operators.
//
// Flags:
//
//	-role  admin or user (default admin)
//	-user  subject user ID (default: random)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/heartmarshall/marketing-studio/internal/auth"
	"github.com/heartmarshall/marketing-studio/internal/config"
)

func main() {
	role := flag.String("role", auth.RoleAdmin, "token role: admin or user")
	user := flag.String("user", "", "subject user ID (default: random)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	userID := uuid.New()
	if *user != "" {
		userID, err = uuid.Parse(*user)
		if err != nil {
			log.Fatalf("parse -user: %v", err)
		}
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	token, err := manager.GenerateAccessToken(userID, *role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
