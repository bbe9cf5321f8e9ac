package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"blogapp/internal/config"
	"blogapp/internal/database"
	"blogapp/internal/handlers"
	"blogapp/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := database.Seed(db); err != nil {
			log.Fatal(err)
		}
		log.Println("Database initialized successfully")
		return
	}

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureBlogIndexes(db); err != nil {
		log.Printf("blog index warning: %v", err)
	}
	if err := database.EnsureTagIndexes(db); err != nil {
		log.Printf("tag index warning: %v", err)
	}

	s := store.NewMongo(db)

	r := gin.Default()
	r.Use(cors.Default())
	r.LoadHTMLGlob("templates/*")
	r.Static("/public", "./public")

	r.GET("/", handlers.Home())
	handlers.RegisterAPI(r, s)

	r.Run(":" + config.AppEnv.Port)
}
