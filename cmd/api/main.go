package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments inject environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	if err := Serve(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
