// internal/storage/storage_test.go
//
// Unit-tests for directory bootstrap, the upload size cap, and the
// retention cutoff arithmetic.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/intellisales/backend/internal/config"
)

func TestEnsureDirs_CreatesBoth(t *testing.T) {
	base := t.TempDir()
	cfg := config.Fallback()
	cfg.UploadFolder = filepath.Join(base, "uploads")
	cfg.ModelStoragePath = filepath.Join(base, "nested", "models")

	if err := EnsureDirs(&cfg); err != nil {
		t.Fatalf("EnsureDirs() error: %v", err)
	}
	for _, dir := range []string{cfg.UploadFolder, cfg.ModelStoragePath} {
		fi, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat %s: %v", dir, err)
		}
		if !fi.IsDir() {
			t.Fatalf("%s exists but is not a directory", dir)
		}
	}
}

func TestEnsureDirs_IdempotentOnExisting(t *testing.T) {
	base := t.TempDir()
	cfg := config.Fallback()
	cfg.UploadFolder = filepath.Join(base, "uploads")
	cfg.ModelStoragePath = filepath.Join(base, "models")

	if err := EnsureDirs(&cfg); err != nil {
		t.Fatalf("first EnsureDirs() error: %v", err)
	}
	if err := EnsureDirs(&cfg); err != nil {
		t.Fatalf("second EnsureDirs() error: %v", err)
	}
}

func TestEnsureDirs_ReportsBlockedPath(t *testing.T) {
	base := t.TempDir()
	blocked := filepath.Join(base, "uploads")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	cfg := config.Fallback()
	cfg.UploadFolder = blocked
	cfg.ModelStoragePath = filepath.Join(base, "models")

	if err := EnsureDirs(&cfg); err == nil {
		t.Fatal("EnsureDirs() = nil error with a file squatting on the path")
	}
}

func TestCheckSize(t *testing.T) {
	cfg := config.Fallback() // cap 10485760

	cases := []struct {
		name    string
		n       int64
		wantErr bool
	}{
		{"zero bytes", 0, false},
		{"under the cap", 1024, false},
		{"exactly the cap", 10485760, false},
		{"one byte over", 10485761, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckSize(&cfg, tc.n)
			if tc.wantErr && !errors.Is(err, ErrFileTooLarge) {
				t.Fatalf("CheckSize(%d) = %v, want ErrFileTooLarge", tc.n, err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("CheckSize(%d) = %v, want nil", tc.n, err)
			}
		})
	}
}

func TestRetentionCutoff(t *testing.T) {
	cfg := config.Fallback()
	cfg.TrainingDataRetentionDays = 90

	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	got := RetentionCutoff(&cfg, now)
	want := time.Date(2025, time.March, 17, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("RetentionCutoff() = %v, want %v", got, want)
	}
}
