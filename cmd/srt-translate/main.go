package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
