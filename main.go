package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"friendbook/config"
	"friendbook/database"
	"friendbook/friendship"
	"friendbook/handlers"
	"friendbook/middleware"
	"friendbook/store"
)

func main() {
	config.Load()

	if level, err := logrus.ParseLevel(config.Cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	if err := database.Connect(); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		logrus.Fatalf("Failed to create tables: %v", err)
	}

	users := store.NewUserStore(database.DB)
	friendships := store.NewFriendshipStore(database.DB)

	authHandler := handlers.NewAuthHandler(users)
	userHandler := handlers.NewUserHandler(users)
	friendshipHandler := handlers.NewFriendshipHandler(friendship.NewService(users, friendships))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", middleware.AuthMiddleware(), authHandler.RefreshToken)
	}

	usersGroup := r.Group("/api/users")
	usersGroup.Use(middleware.AuthMiddleware())
	{
		usersGroup.GET("/me", userHandler.GetCurrentUser)
		usersGroup.GET("/search", userHandler.SearchUsers)
	}

	friendshipsGroup := r.Group("/api/friendships")
	friendshipsGroup.Use(middleware.AuthMiddleware())
	{
		friendshipsGroup.GET("", friendshipHandler.Index)
		friendshipsGroup.GET("/new", friendshipHandler.New)
		friendshipsGroup.POST("", friendshipHandler.Create)
		friendshipsGroup.PUT("/:id/accept", friendshipHandler.Accept)
		friendshipsGroup.GET("/:id/edit", friendshipHandler.Edit)
	}

	logrus.Infof("Server starting on %s", config.Cfg.ServerAddr)
	if err := r.Run(config.Cfg.ServerAddr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
