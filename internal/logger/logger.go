// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// The backend writes lifecycle and error events to one JSON log at
// `<root>/logs/app.log`.  Lumberjack rotates the file at 10 MB and drops
// rotated copies after 30 days, so no external log-rotate job is required.
// When running in an interactive TTY we tee the same events, colorized, to
// stdout.
//
// The level is held in an atomic handle: boot starts at INFO, and once the
// settings record is available the deployment calls SetDebug with the DEBUG
// flag to widen or keep it.
//
// Usage
// -----
//
//	log, err := logger.New(rootDir, runningInTTY())
//	if err != nil { … }
//	log.Infow("settings loaded", "app", cfg.AppName)
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Errors are written to the same sink via `ErrorOutput`.
// • The logger is installed process-wide via zap.ReplaceGlobals, so
//   `zap.S()` reaches the same sinks from any package.
// • Oxford commas, two spaces after periods.
package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	fileName   = "app.log"
	maxSizeMB  = 10 // rotate past this size
	maxAgeDays = 30 // drop rotated files after a month
)

// level gates every core built by New.  INFO until SetDebug says otherwise.
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

// SetDebug widens the process log level to DEBUG when on is true, and
// returns it to INFO when false.  Safe to call at any time, from any
// goroutine.
func SetDebug(on bool) {
	if on {
		level.SetLevel(zap.DebugLevel)
		return
	}
	level.SetLevel(zap.InfoLevel)
}

// New returns a *zap.SugaredLogger that writes JSON to <root>/logs/app.log.
// When tee == true, a colored console core is also attached.  The logger
// is installed as the process-wide default via zap.ReplaceGlobals.
func New(rootDir string, tee bool) (*zap.SugaredLogger, error) {
	logDir := filepath.Join(rootDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileSink := &lumberjack.Logger{
		Filename: filepath.Join(logDir, fileName),
		MaxSize:  maxSizeMB,
		MaxAge:   maxAgeDays,
		Compress: true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	jsonCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(fileSink),
		level,
	)

	cores := []zapcore.Core{jsonCore}

	if tee {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.AddSync(os.Stdout),
			level,
		)
		cores = append(cores, consoleCore)
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()

	// Make this the global logger so zap.S() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "tee", tee)
	return z, nil
}
