package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckExisting(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(dir string)
		wantErr   bool
		errMsg    string
	}{
		{
			name:      "no existing config",
			setupFunc: func(dir string) {},
			wantErr:   false,
		},
		{
			name: "existing forge.yml",
			setupFunc: func(dir string) {
				if err := os.WriteFile(filepath.Join(dir, "forge.yml"), []byte("version: '1.0'"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: true,
			errMsg:  "forge.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setupFunc(dir)

			err := CheckExisting(filepath.Join(dir, "forge.yml"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckExisting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error to contain %q, got: %v", tt.errMsg, err)
			}
			if tt.wantErr && !strings.Contains(err.Error(), "forge init --force") {
				t.Errorf("Expected error to suggest --force, got: %v", err)
			}
		})
	}
}
