package main

import (
	"log"
	"log/slog"

	"devconnect-service/internal/adapters/database"
	"devconnect-service/internal/config"
	"devconnect-service/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting database seeding...")

	db, err := database.NewMySQLDB(
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	password, _ := bcrypt.GenerateFromPassword([]byte("Devconnect1"), bcrypt.DefaultCost)

	seedUsers := []models.User{
		{FirstName: "Alice", LastName: "Nguyen", Email: "alice@devconnect.dev", Age: 28, Gender: "female", Skills: models.StringList{"go", "kubernetes"}},
		{FirstName: "Bobby", LastName: "Tran", Email: "bobby@devconnect.dev", Age: 31, Gender: "male", Skills: models.StringList{"react", "typescript"}},
		{FirstName: "Carol", LastName: "Diaz", Email: "carol@devconnect.dev", Age: 26, Gender: "female", Skills: models.StringList{"python", "ml"}},
		{FirstName: "Danny", LastName: "Okafor", Email: "danny@devconnect.dev", Age: 35, Gender: "male", Skills: models.StringList{"rust", "wasm"}},
	}

	for i := range seedUsers {
		seedUsers[i].Password = string(password)
		if err := db.Create(&seedUsers[i]).Error; err != nil {
			slog.Warn("seed user might already exist", "email", seedUsers[i].Email, "error", err)
		} else {
			slog.Info("created seed user", "email", seedUsers[i].Email, "id", seedUsers[i].ID)
		}
	}

	if len(seedUsers) >= 3 && seedUsers[0].ID != "" && seedUsers[1].ID != "" {
		requests := []models.ConnectionRequest{
			{FromUserID: seedUsers[0].ID, ToUserID: seedUsers[1].ID, Status: models.StatusInterested},
			{FromUserID: seedUsers[2].ID, ToUserID: seedUsers[0].ID, Status: models.StatusInterested},
		}
		for i := range requests {
			if err := db.Create(&requests[i]).Error; err != nil {
				slog.Warn("seed request might already exist", "error", err)
			}
		}
	}

	slog.Info("Database seeding completed!")
}
