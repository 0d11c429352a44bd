package main

import (
	"github.com/joho/godotenv"

	"rentbuy/cmd"
)

func main() {
	// Optional .env for RENTBUY_* overrides; missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
