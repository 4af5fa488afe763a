package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title Diary API
// @version 1.0
// @description Diaries and their tasks over REST.
// @BasePath /
func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stderr))
}
