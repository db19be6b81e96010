// internal/config/model_test.go
//
// Unit-tests for the settings model: fallback literals, derived accessors,
// and the redacted logging view.
//
// Context
// -------
// The fallback record is a contract: every field must hold its documented
// literal, with no environment influence.  The accessor tests pin the
// integration-gating rules (all credentials or nothing), and the redaction
// tests prove that no secret survives into the loggable view.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package config

import (
	"strings"
	"testing"
	"time"
)

func TestFallback_AllFieldsLiteral(t *testing.T) {
	got := Fallback()
	want := Config{
		AppName:                   "IntelliSales Colombia",
		Version:                   "0.1.0",
		Debug:                     false,
		SecretKey:                 "fallback-secret-key-for-development-only",
		Algorithm:                 "HS256",
		AccessTokenExpireMinutes:  30,
		DatabaseURL:               "sqlite:///./intellisales.db",
		RedisURL:                  "redis://localhost:6379",
		SMTPPort:                  587,
		MaxFileSize:               10485760,
		UploadFolder:              "uploads",
		ModelStoragePath:          "models",
		TrainingDataRetentionDays: 90,
	}
	if got != want {
		t.Fatalf("Fallback() = %+v, want %+v", got, want)
	}
}

func TestFallback_IntegrationsDisabled(t *testing.T) {
	cfg := Fallback()
	if cfg.GoogleAdsEnabled() {
		t.Fatal("GoogleAdsEnabled() = true on fallback")
	}
	if cfg.PipedriveEnabled() {
		t.Fatal("PipedriveEnabled() = true on fallback")
	}
	if cfg.ZohoEnabled() {
		t.Fatal("ZohoEnabled() = true on fallback")
	}
	if cfg.SMTPEnabled() {
		t.Fatal("SMTPEnabled() = true on fallback")
	}
	if !cfg.UsingFallbackSecret() {
		t.Fatal("UsingFallbackSecret() = false on fallback")
	}
}

func TestAccessTokenTTL(t *testing.T) {
	cfg := Fallback()
	if got, want := cfg.AccessTokenTTL(), 30*time.Minute; got != want {
		t.Fatalf("AccessTokenTTL() = %v, want %v", got, want)
	}

	cfg.AccessTokenExpireMinutes = 90
	if got, want := cfg.AccessTokenTTL(), 90*time.Minute; got != want {
		t.Fatalf("AccessTokenTTL() = %v, want %v", got, want)
	}
}

func TestGoogleAdsEnabled_RequiresAllThreeCredentials(t *testing.T) {
	cases := []struct {
		name           string
		token, id, sec string
		want           bool
	}{
		{"none", "", "", "", false},
		{"token only", "t", "", "", false},
		{"token and id", "t", "i", "", false},
		{"all three", "t", "i", "s", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Fallback()
			cfg.GoogleAdsDeveloperToken = tc.token
			cfg.GoogleAdsClientID = tc.id
			cfg.GoogleAdsClientSecret = tc.sec
			if got := cfg.GoogleAdsEnabled(); got != tc.want {
				t.Fatalf("GoogleAdsEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSMTPEnabled_PortAloneIsNotEnough(t *testing.T) {
	cfg := Fallback() // port defaulted, host and credentials empty
	if cfg.SMTPEnabled() {
		t.Fatal("SMTPEnabled() = true with no host or credentials")
	}

	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPUser = "mailer"
	cfg.SMTPPassword = "pw"
	if !cfg.SMTPEnabled() {
		t.Fatal("SMTPEnabled() = false with host and credentials set")
	}
}

/*────────────────────────────── redaction ─────────────────────────────────*/

func TestRedacted_MasksSecrets(t *testing.T) {
	cfg := Fallback()
	cfg.SecretKey = "real-signing-key"
	cfg.DatabaseURL = "postgresql://sales:hunter2@db:5432/intellisales"
	cfg.SMTPPassword = "mail-pass"
	cfg.PipedriveAPIToken = "pd-token"
	cfg.GoogleAdsClientSecret = "ads-secret"
	cfg.ZohoClientSecret = "zoho-secret"

	view := cfg.Redacted()

	for _, key := range []string{
		"SECRET_KEY", "SMTP_PASSWORD", "PIPEDRIVE_API_TOKEN",
		"GOOGLE_ADS_CLIENT_SECRET", "ZOHO_CLIENT_SECRET",
	} {
		if view[key] != masked {
			t.Fatalf("view[%s] = %v, want mask", key, view[key])
		}
	}

	db, ok := view["DATABASE_URL"].(string)
	if !ok {
		t.Fatalf("DATABASE_URL view is %T, want string", view["DATABASE_URL"])
	}
	if strings.Contains(db, "hunter2") {
		t.Fatalf("DATABASE_URL view leaks the password: %q", db)
	}
	if !strings.Contains(db, "db:5432") {
		t.Fatalf("DATABASE_URL view lost the host: %q", db)
	}
}

func TestRedacted_ShowsPresenceWithoutValue(t *testing.T) {
	cfg := Fallback() // no integration credentials set

	view := cfg.Redacted()
	if view["PIPEDRIVE_API_TOKEN"] != "" {
		t.Fatalf("unset token rendered as %v, want empty", view["PIPEDRIVE_API_TOKEN"])
	}
	if view["APP_NAME"] != DefaultAppName {
		t.Fatalf("plain field masked: %v", view["APP_NAME"])
	}
	if view["SMTP_PORT"] != DefaultSMTPPort {
		t.Fatalf("SMTP_PORT = %v, want %d", view["SMTP_PORT"], DefaultSMTPPort)
	}
}
