// cmd/preflight/main.go
//
// IntelliSales backend – deployment preflight.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start the rotating JSON logger (tees to console when running in a
//     TTY).
//
//  3. Build the effective settings record — primary sources when they
//     validate, the built-in fallback otherwise — then widen the log level
//     if DEBUG asks for it, and echo the record with secrets masked.
//
//  4. Flag the public development secret when it is active outside DEBUG,
//     and report which optional integrations are configured.
//
//  5. Prepare the upload and model directories, print the retention
//     cutoff, and exit zero so the orchestrator can start the application
//     proper on a known-good node.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/intellisales/backend/internal/config"
	"github.com/intellisales/backend/internal/integrations"
	"github.com/intellisales/backend/internal/logger"
	"github.com/intellisales/backend/internal/storage"
)

const serverEnvPath = "/usr/local/etc/intellisales/backend.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	zlog, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	//
	// ── 1.  Effective settings ──────────────────────────────────────────
	//
	cfg := config.Load()
	logger.SetDebug(cfg.Debug)
	zlog.Infow("effective settings", "settings", cfg.Redacted())

	if cfg.UsingFallbackSecret() && !cfg.Debug {
		zlog.Warnw("development fallback secret active outside DEBUG",
			"action", "set SECRET_KEY before serving traffic",
		)
	}

	//
	// ── 2.  Integration inventory ───────────────────────────────────────
	//
	for _, in := range integrations.Status(cfg) {
		if in.Configured {
			zlog.Infow("integration configured", "integration", in.Name)
			continue
		}
		zlog.Infow("integration disabled",
			"integration", in.Name,
			"missing", in.Missing,
		)
	}

	//
	// ── 3.  Storage preparation ─────────────────────────────────────────
	//
	if err := storage.EnsureDirs(cfg); err != nil {
		zlog.Fatalw("prepare storage directories", "err", err)
	}
	zlog.Infow("storage directories ready",
		"uploads", cfg.UploadFolder,
		"models", cfg.ModelStoragePath,
	)
	zlog.Infow("retention policy",
		"training_data_days", cfg.TrainingDataRetentionDays,
		"cutoff", storage.RetentionCutoff(cfg, time.Now()).Format(time.RFC3339),
	)

	zlog.Infow("preflight complete", "app", cfg.AppName, "version", cfg.Version)
}
