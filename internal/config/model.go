// internal/config/model.go
//
// Typed settings model for the IntelliSales backend.
//
// Context
// -------
// One flat `Config` struct describes every setting the backend reads at
// startup.  `internal/config/loader.go` fills it from two overlay layers:
//
//   • optional `./.env`              – dotenv values, lowest precedence,
//   • process environment variables  – highest precedence.
//
// Fields are grouped by role — identity, security, datastores, third-party
// credentials, outbound mail, file handling, retention — and each carries
// its exact, case-sensitive environment key in the `koanf` tag.  Optional
// fields are seeded with the literal defaults below before unmarshalling,
// so a key the environment omits keeps its default.
//
// Validation happens immediately after unmarshal; the two fields with no
// safe default (`SECRET_KEY`, `DATABASE_URL`) are tagged `required`, and
// their absence sends the loader down the fallback path.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"` — the loader ignores `env`/`json` tags.
//   • Fallback() must stay literal: no os calls, no I/O, nothing that can
//     fail.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// Literal defaults
//

// Seed values for every optional field.  SECRET_KEY and DATABASE_URL have
// no entry here on purpose; their fallback-only literals live right below.
const (
	DefaultAppName                  = "IntelliSales Colombia"
	DefaultVersion                  = "0.1.0"
	DefaultAlgorithm                = "HS256"
	DefaultAccessTokenExpireMinutes = 30
	DefaultRedisURL                 = "redis://localhost:6379"
	DefaultSMTPPort                 = 587
	DefaultMaxFileSize              = 10485760 // 10 MiB
	DefaultUploadFolder             = "uploads"
	DefaultModelStoragePath         = "models"
	DefaultRetentionDays            = 90
)

// Fallback-only literals.  The development secret is public by definition;
// Config.UsingFallbackSecret lets callers detect it by value, which is the
// only way a fallback record differs from a primary one.
const (
	FallbackSecretKey   = "fallback-secret-key-for-development-only"
	FallbackDatabaseURL = "sqlite:///./intellisales.db"
)

//
// Root aggregate
//

// Config is the immutable settings record returned by Load() and shared by
// every other package for the lifetime of the process.
type Config struct {
	//
	// Identity
	//
	AppName string `koanf:"APP_NAME"`
	Version string `koanf:"VERSION"`
	Debug   bool   `koanf:"DEBUG"`

	//
	// Security
	//
	SecretKey                string `koanf:"SECRET_KEY"   validate:"required"`
	Algorithm                string `koanf:"ALGORITHM"`
	AccessTokenExpireMinutes int    `koanf:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	//
	// Datastores (connection strings only; no client is opened here)
	//
	DatabaseURL string `koanf:"DATABASE_URL" validate:"required"`
	RedisURL    string `koanf:"REDIS_URL"`

	//
	// Third-party credentials (absent means the integration is disabled,
	// never that startup failed)
	//
	GoogleAdsDeveloperToken string `koanf:"GOOGLE_ADS_DEVELOPER_TOKEN"`
	GoogleAdsClientID       string `koanf:"GOOGLE_ADS_CLIENT_ID"`
	GoogleAdsClientSecret   string `koanf:"GOOGLE_ADS_CLIENT_SECRET"`
	PipedriveAPIToken       string `koanf:"PIPEDRIVE_API_TOKEN"`
	ZohoClientID            string `koanf:"ZOHO_CLIENT_ID"`
	ZohoClientSecret        string `koanf:"ZOHO_CLIENT_SECRET"`

	//
	// Outbound mail
	//
	SMTPHost     string `koanf:"SMTP_HOST"`
	SMTPPort     int    `koanf:"SMTP_PORT"`
	SMTPUser     string `koanf:"SMTP_USER"`
	SMTPPassword string `koanf:"SMTP_PASSWORD"`

	//
	// File handling
	//
	MaxFileSize      int64  `koanf:"MAX_FILE_SIZE"`
	UploadFolder     string `koanf:"UPLOAD_FOLDER"`
	ModelStoragePath string `koanf:"MODEL_STORAGE_PATH"`

	//
	// Retention
	//
	TrainingDataRetentionDays int `koanf:"TRAINING_DATA_RETENTION_DAYS"`
}

//
// Constructors
//

// defaults returns the seed Config for the primary path: every optional
// field holds its literal default, and the two required fields stay zero so
// validation can notice their absence.
func defaults() Config {
	return Config{
		AppName:                   DefaultAppName,
		Version:                   DefaultVersion,
		Algorithm:                 DefaultAlgorithm,
		AccessTokenExpireMinutes:  DefaultAccessTokenExpireMinutes,
		RedisURL:                  DefaultRedisURL,
		SMTPPort:                  DefaultSMTPPort,
		MaxFileSize:               DefaultMaxFileSize,
		UploadFolder:              DefaultUploadFolder,
		ModelStoragePath:          DefaultModelStoragePath,
		TrainingDataRetentionDays: DefaultRetentionDays,
	}
}

// Fallback returns the statically defined settings record substituted when
// the primary path fails.  Every field is a literal; the constructor
// consults no external source and cannot fail.
func Fallback() Config {
	cfg := defaults()
	cfg.SecretKey = FallbackSecretKey
	cfg.DatabaseURL = FallbackDatabaseURL
	return cfg
}

//
// Derived accessors
//

// AccessTokenTTL converts ACCESS_TOKEN_EXPIRE_MINUTES into a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// UsingFallbackSecret reports whether the active signing key is the public
// development literal.  Value comparison is deliberate: the fallback record
// carries no marker field.
func (c *Config) UsingFallbackSecret() bool {
	return c.SecretKey == FallbackSecretKey
}

// GoogleAdsEnabled reports whether all three Google Ads credentials are
// present.  A partial set counts as disabled.
func (c *Config) GoogleAdsEnabled() bool {
	return c.GoogleAdsDeveloperToken != "" &&
		c.GoogleAdsClientID != "" &&
		c.GoogleAdsClientSecret != ""
}

// PipedriveEnabled reports whether the Pipedrive API token is present.
func (c *Config) PipedriveEnabled() bool {
	return c.PipedriveAPIToken != ""
}

// ZohoEnabled reports whether both Zoho OAuth credentials are present.
func (c *Config) ZohoEnabled() bool {
	return c.ZohoClientID != "" && c.ZohoClientSecret != ""
}

// SMTPEnabled reports whether outbound mail is fully configured.  The port
// always has a default, so only the host and the credentials gate it.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}
