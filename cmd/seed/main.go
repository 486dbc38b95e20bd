package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// seedUser bundles a demo user with its posts.
type seedUser struct {
	Username string
	Email    string
	Password string
	Posts    []model.Post
}

var seedData = []seedUser{
	{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
		Posts: []model.Post{
			{
				Title:     "Hello, world",
				Content:   "First post on the new platform. More to come soon.",
				Tags:      []string{"meta", "welcome"},
				Published: true,
			},
			{
				Title:     "Draft thoughts",
				Content:   "Unfinished notes that are not public yet.",
				Tags:      []string{"notes"},
				Published: false,
			},
		},
	},
	{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "password123",
		Posts: []model.Post{
			{
				Title:     "On writing less",
				Content:   "Short posts are easier to finish than long ones.",
				Tags:      []string{"writing"},
				Published: true,
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	ctx := context.Background()

	usersCreated, postsCreated, err := seed(ctx, userRepo, postRepo)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", usersCreated)
	log.Printf("  - Posts created: %d", postsCreated)
}

// seed creates the demo users and their posts, skipping users that
// already exist.
func seed(ctx context.Context, userRepo repository.UserRepository, postRepo repository.PostRepository) (usersCreated, postsCreated int, err error) {
	for _, entry := range seedData {
		user, err := userRepo.FindByUsername(ctx, entry.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return usersCreated, postsCreated, fmt.Errorf("error checking user %s: %w", entry.Username, err)
		}

		if user != nil {
			log.Printf("User %s already exists, skipping", entry.Username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Password), 10)
		if err != nil {
			return usersCreated, postsCreated, fmt.Errorf("error hashing password for %s: %w", entry.Username, err)
		}

		user = &model.User{
			Username:     entry.Username,
			Email:        entry.Email,
			PasswordHash: string(hash),
			Role:         "user",
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return usersCreated, postsCreated, fmt.Errorf("error creating user %s: %w", entry.Username, err)
		}
		usersCreated++

		for _, post := range entry.Posts {
			post.AuthorID = user.ID
			if err := postRepo.Create(ctx, &post); err != nil {
				return usersCreated, postsCreated, fmt.Errorf("error creating post %q: %w", post.Title, err)
			}
			postsCreated++
		}
	}

	return usersCreated, postsCreated, nil
}
