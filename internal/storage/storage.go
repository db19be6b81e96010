// internal/storage/storage.go
//
// File-handling bootstrap and limits.
//
// Context
// -------
// Uploads land under UPLOAD_FOLDER and trained model artifacts under
// MODEL_STORAGE_PATH; both directories must exist before the application
// accepts work, so preflight creates them.  MAX_FILE_SIZE caps a single
// upload, and TRAINING_DATA_RETENTION_DAYS defines how far back training
// data is kept.  The scheduled sweep that enforces retention runs outside
// this repository; only the policy arithmetic lives here.
//
// Notes
// -----
// • Relative paths resolve against the working directory, same as the
//   settings loader's .env lookup.
// • Oxford commas, two spaces after periods.
package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/intellisales/backend/internal/config"
)

// ErrFileTooLarge is returned by CheckSize for payloads over MAX_FILE_SIZE.
var ErrFileTooLarge = errors.New("storage: file exceeds MAX_FILE_SIZE")

// EnsureDirs creates the upload and model directories if absent.  Existing
// directories are left untouched.
func EnsureDirs(cfg *config.Config) error {
	for _, dir := range []string{cfg.UploadFolder, cfg.ModelStoragePath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("prepare %s: %w", dir, err)
		}
	}
	return nil
}

// CheckSize reports whether a payload of n bytes fits under the configured
// cap.  The cap is inclusive.
func CheckSize(cfg *config.Config, n int64) error {
	if n > cfg.MaxFileSize {
		return fmt.Errorf("%w: %d > %d bytes", ErrFileTooLarge, n, cfg.MaxFileSize)
	}
	return nil
}

// RetentionCutoff returns the oldest timestamp training data may carry at
// the given instant.  Calendar days, not 24-hour blocks, so the cutoff
// stays stable across DST shifts.
func RetentionCutoff(cfg *config.Config, now time.Time) time.Time {
	return now.AddDate(0, 0, -cfg.TrainingDataRetentionDays)
}
