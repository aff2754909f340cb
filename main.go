package main

import (
	"log"

	"github.com/joho/godotenv"
	"properties_service/startup"
	"properties_service/startup/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	server := startup.NewServer(config.NewConfig())
	server.Start()
}
