package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Abdullah-Awan92/ecommerce-web-api/internal/router"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/checkout"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/global"
	"github.com/Abdullah-Awan92/ecommerce-web-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	store, err := mongo.NewStore(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")
	store.EnsureIndexesOnStartup()

	engine := router.New(router.Deps{
		Store:  store,
		Engine: checkout.NewEngine(store),
	})

	port := global.GetEnvOrDefault("PORT", "3000")
	log.Printf("Server is running on port %s", port)

	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
