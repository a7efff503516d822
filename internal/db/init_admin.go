package db

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// InitAdmin makes sure the operator account from ADMIN_USERNAME and
// ADMIN_PASSWORD exists, so the API is reachable on a fresh database.
func InitAdmin(ctx context.Context, database *Database) {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername == "" || adminPassword == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	var count int
	err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username = $1", adminUsername).Scan(&count)
	if err != nil {
		log.Fatal(err)
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	_, err = database.Exec(ctx,
		"INSERT INTO users (username, password, email, first_name) VALUES ($1, $2, $3, $4)",
		adminUsername, string(hashedPassword), "admin@selfstorage.local", "Admin")
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Admin user created successfully.")
}
