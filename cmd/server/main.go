package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sovann/postboard/internal/config"
	"github.com/sovann/postboard/internal/database"
	"github.com/sovann/postboard/internal/posts"
	"github.com/sovann/postboard/internal/server"
	"github.com/sovann/postboard/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.Migrate(db, &users.User{}, &posts.Post{}); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	r := server.New(users.NewStore(db), posts.NewStore(db))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
