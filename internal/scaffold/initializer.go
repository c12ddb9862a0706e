// Package scaffold writes the starter forge.yml used by "forge init".
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/printer"
)

//go:embed templates/*
var templatesFS embed.FS

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize writes the starter configuration to path.
// If force is true, an existing file at path is replaced.
func Initialize(path string, force bool) error {
	if force {
		if err := handleForce(path); err != nil {
			return err
		}
	}

	files, err := getTemplateFiles(path)
	if err != nil {
		return err
	}

	if err := createDirectories(path); err != nil {
		return err
	}

	if err := writeFiles(files); err != nil {
		return err
	}

	return validateCreatedFiles(path)
}

// handleForce removes an existing config file if --force was specified
func handleForce(path string) error {
	if _, err := os.Stat(path); err == nil {
		printer.Warning("Removing existing %s...\n", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// getTemplateFiles reads all template files. The config template matches the
// format the path's extension selects.
func getTemplateFiles(path string) ([]FileInfo, error) {
	name := "forge.yml.tmpl"
	if config.IsTOML(path) {
		name = "forge.toml.tmpl"
	}

	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", name, err)
	}

	return []FileInfo{{
		Path:        path,
		Content:     content,
		Permissions: 0644,
	}}, nil
}

// createDirectories creates the parent directory of the config file
func createDirectories(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// writeFiles writes all template files to disk
func writeFiles(files []FileInfo) error {
	for _, file := range files {
		if err := os.WriteFile(file.Path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles loads the written file through the same path the
// console uses, so a broken template fails here rather than on first run.
func validateCreatedFiles(path string) error {
	if _, err := config.Load(path); err != nil {
		return fmt.Errorf("created %s is not a valid configuration: %w", path, err)
	}
	return nil
}

// PrintSuccess prints the success message with created files
func PrintSuccess(path string) {
	printer.Success("Initialized forge configuration\n")
	printer.Println("\nCreated:")
	printer.Printf("  ✓ %s\n", path)
	printer.Println("\nNext steps:")
	printer.Println("  1. Edit the calibration block to match your cell")
	printer.Println("  2. Replace the demo board by listing your own tasks and resources")
	printer.Println("  3. Run 'forge shell' to open a board session")
}
