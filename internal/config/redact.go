// internal/config/redact.go
//
// Loggable view of the settings record.
//
// Context
// -------
// The preflight report echoes the effective settings so operators can see
// exactly what the process will run with.  Secret-bearing fields are
// masked, and connection URLs go through net/url redaction, so the report
// can never leak key material into the log stream.  A masked field still
// shows *whether* a secret is present, which is the part operators care
// about.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "net/url"

const masked = "[redacted]"

// mask hides a set value behind a placeholder and leaves an unset value
// empty, so presence remains visible.
func mask(s string) string {
	if s == "" {
		return ""
	}
	return masked
}

// redactURL hides the password component of a connection URL.  A value
// that does not parse as a URL is masked whole rather than echoed.
func redactURL(s string) string {
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return masked
	}
	return u.Redacted()
}

// Redacted returns the effective settings as a map keyed by environment
// key, suitable for one structured log line.  Secrets and credentials are
// masked, never echoed.
func (c *Config) Redacted() map[string]any {
	return map[string]any{
		"APP_NAME":                     c.AppName,
		"VERSION":                      c.Version,
		"DEBUG":                        c.Debug,
		"SECRET_KEY":                   mask(c.SecretKey),
		"ALGORITHM":                    c.Algorithm,
		"ACCESS_TOKEN_EXPIRE_MINUTES":  c.AccessTokenExpireMinutes,
		"DATABASE_URL":                 redactURL(c.DatabaseURL),
		"REDIS_URL":                    redactURL(c.RedisURL),
		"GOOGLE_ADS_DEVELOPER_TOKEN":   mask(c.GoogleAdsDeveloperToken),
		"GOOGLE_ADS_CLIENT_ID":         c.GoogleAdsClientID,
		"GOOGLE_ADS_CLIENT_SECRET":     mask(c.GoogleAdsClientSecret),
		"PIPEDRIVE_API_TOKEN":          mask(c.PipedriveAPIToken),
		"ZOHO_CLIENT_ID":               c.ZohoClientID,
		"ZOHO_CLIENT_SECRET":           mask(c.ZohoClientSecret),
		"SMTP_HOST":                    c.SMTPHost,
		"SMTP_PORT":                    c.SMTPPort,
		"SMTP_USER":                    c.SMTPUser,
		"SMTP_PASSWORD":                mask(c.SMTPPassword),
		"MAX_FILE_SIZE":                c.MaxFileSize,
		"UPLOAD_FOLDER":                c.UploadFolder,
		"MODEL_STORAGE_PATH":           c.ModelStoragePath,
		"TRAINING_DATA_RETENTION_DAYS": c.TrainingDataRetentionDays,
	}
}
