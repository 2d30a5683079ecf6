package main

import (
	"context"
	"os"
)

// Build info
var (
	version = "dev"
	commit  = "none"
)

func main() {
	// cobra has already printed the error
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
