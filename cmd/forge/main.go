package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dyluth/forge/cmd/forge/commands"
	"github.com/dyluth/forge/internal/printer"
	"github.com/joho/godotenv"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A .env next to the binary's working directory may set FORGE_CONFIG or NO_COLOR
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		printer.Warning("ignoring .env: %v\n", err)
	}
	printer.ApplyColorEnv()

	// Set version information on root command
	commands.SetVersionInfo(version, commit, date)

	// Execute root command
	// Errors are printed directly by the printer package with color formatting
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
