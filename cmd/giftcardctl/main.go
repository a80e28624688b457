// giftcardctl runs the tiered copy and image generation from the terminal.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"giftcard/internal/cli"
)

func main() {
	_ = godotenv.Load()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
