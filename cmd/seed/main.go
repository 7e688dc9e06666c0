package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/dayfold/learnings-api/config"
	"github.com/dayfold/learnings-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password
		RETURNING id
	`, uuid.NewString(), username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	// A handful of dated entries so pagination has something to page through.
	day := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < 12; i++ {
		date := day.AddDate(0, 0, -i)
		_, err := db.Exec(`
			INSERT INTO learnings (id, user_id, learning, learning_date)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, learning_date) DO NOTHING
		`, uuid.NewString(), id, fmt.Sprintf("Seeded learning #%d", i+1), date)
		if err != nil {
			log.Fatalf("failed to seed learning: %v", err)
		}
	}
	fmt.Println("seeded 12 learnings")
}
