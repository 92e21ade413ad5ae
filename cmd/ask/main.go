package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/askshell/ask/internal/infrastructure/cli"
)

func main() {
	loadEnvFile()

	ctx := context.Background()
	root, err := cli.NewRootCmd(cli.Options{Debug: isDebug()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "ask:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ask:", err)
		os.Exit(1)
	}
}

// loadEnvFile reads ~/.ask/.env best-effort so API keys can live outside
// shell rc files. Existing environment variables win.
func loadEnvFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(home, ".ask", ".env"))
}

func isDebug() bool {
	value := strings.ToLower(os.Getenv("ASK_DEBUG"))
	return value == "1" || value == "true"
}
