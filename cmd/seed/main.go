// Command seed populates the database with fake users, posts and comments
// for local development.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"
	"inkwell/internal/observability"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedUsers           = 5
	seedPostsPerUser    = 3
	seedCommentsPerPost = 4
	seedPassword        = "password123"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		observability.Logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		observability.Logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		observability.Logger.Error("Failed to hash seed password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gofakeit.Seed(0)

	users := make([]*models.User, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		user := &models.User{
			Email:     gofakeit.Email(),
			Username:  gofakeit.Username(),
			Password:  string(hash),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		}
		if i == 0 {
			// First account doubles as the admin login for the panel.
			user.Email = "admin@inkwell.example"
			user.Username = "admin"
			user.IsAdmin = models.AdminFlagOn
		}
		if err := db.Create(user).Error; err != nil {
			observability.Logger.Error("Failed to create user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < seedPostsPerUser; i++ {
			created := gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now())
			post := &models.Post{
				Title:    gofakeit.Sentence(4),
				Subtitle: gofakeit.Sentence(6),
				Body:     gofakeit.Paragraph(3, 5, 12, " "),
				ImageURL: fmt.Sprintf("https://picsum.photos/seed/%d/900/400", gofakeit.Number(1, 1000)),
				Date:     created.Format("January 2, 2006"),
				UserID:   user.ID,
			}
			if err := db.Create(post).Error; err != nil {
				observability.Logger.Error("Failed to create post", slog.String("error", err.Error()))
				os.Exit(1)
			}

			for j := 0; j < seedCommentsPerPost; j++ {
				commenter := users[gofakeit.Number(0, len(users)-1)]
				comment := &models.Comment{
					Content:    gofakeit.Sentence(10),
					PostedTime: gofakeit.DateRange(created, time.Now()),
					UserID:     commenter.ID,
					PostID:     post.ID,
				}
				if err := db.Create(comment).Error; err != nil {
					observability.Logger.Error("Failed to create comment", slog.String("error", err.Error()))
					os.Exit(1)
				}
			}
		}
	}

	observability.Logger.Info("Seed complete",
		slog.Int("users", seedUsers),
		slog.Int("posts", seedUsers*seedPostsPerUser),
		slog.String("admin_email", "admin@inkwell.example"),
		slog.String("password", seedPassword),
	)
}
