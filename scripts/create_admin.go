// Bootstrap an admin account.
//
// Register/login only create learner accounts; the first admin has to be
// created out of band, typically right after deployment.
//
// Usage: go run scripts/create_admin.go <name> <email> <password>

package main

import (
	"log"
	"os"
	"prompt_school_backend/internal/config"
	"prompt_school_backend/internal/model"
	"prompt_school_backend/internal/repository"
	"prompt_school_backend/pkg/database"
	"prompt_school_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("usage: go run scripts/create_admin.go <name> <email> <password>")
	}
	name, email, password := os.Args[1], os.Args[2], os.Args[3]

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := repository.NewUserRepository(db)
	if _, err := users.FindByEmail(email); err == nil {
		log.Fatalf("a user with email %s already exists", email)
	}

	admin := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := users.Create(admin); err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin %s created (id %d)", email, admin.ID)
}
