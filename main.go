package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rgarhwal/intern-advisor/cmd"
)

func main() {
	// A missing .env is fine; real deployments configure via file or env.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
