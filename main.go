package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/niyordanova/Split-Tracker/rest"
)

func main() {
	_ = godotenv.Load()

	fmt.Println("Starting REST Split Tracker ...")
	a := rest.App{}
	a.Init(getEnv("DB_USER", "root"), getEnv("DB_PASSWORD", "1234"), getEnv("DB_NAME", "split_tracker"))
	a.Run(":" + getEnv("PORT", "8080"))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
