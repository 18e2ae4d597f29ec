package main

import (
	"log"

	"github.com/joho/godotenv"

	"rosterd/internal/app/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	server.Run()
}
