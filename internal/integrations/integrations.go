// internal/integrations/integrations.go
//
// Configured-integration report.
//
// Context
// -------
// Third-party connectors — Google Ads, the two CRMs, outbound mail — are
// enabled only when every credential in their group is present.  A missing
// credential disables the integration and is never an error; sales teams
// onboard these services one at a time, and the backend has to come up
// cleanly at every stage.
//
// The actual API clients live outside this repository.  This package only
// inspects the settings record and reports, so the preflight log can tell
// an operator exactly which keys are still unset.
//
// Notes
// -----
// • Report order is fixed so consecutive preflight logs diff cleanly.
// • Oxford commas, two spaces after periods.
package integrations

import "github.com/intellisales/backend/internal/config"

// Integration describes one optional connector's configuration state.
type Integration struct {
	Name       string   // stable identifier, e.g. "google_ads"
	Configured bool     // every credential in the group is present
	Missing    []string // environment keys still unset; nil when configured
}

// credential pairs an environment key with its current value.
type credential struct {
	key   string
	value string
}

// group folds a credential set into one Integration entry.
func group(name string, creds []credential) Integration {
	var missing []string
	for _, c := range creds {
		if c.value == "" {
			missing = append(missing, c.key)
		}
	}
	return Integration{
		Name:       name,
		Configured: len(missing) == 0,
		Missing:    missing,
	}
}

// Status reports every optional integration in a fixed order.
func Status(cfg *config.Config) []Integration {
	return []Integration{
		group("google_ads", []credential{
			{"GOOGLE_ADS_DEVELOPER_TOKEN", cfg.GoogleAdsDeveloperToken},
			{"GOOGLE_ADS_CLIENT_ID", cfg.GoogleAdsClientID},
			{"GOOGLE_ADS_CLIENT_SECRET", cfg.GoogleAdsClientSecret},
		}),
		group("pipedrive", []credential{
			{"PIPEDRIVE_API_TOKEN", cfg.PipedriveAPIToken},
		}),
		group("zoho", []credential{
			{"ZOHO_CLIENT_ID", cfg.ZohoClientID},
			{"ZOHO_CLIENT_SECRET", cfg.ZohoClientSecret},
		}),
		group("smtp", []credential{
			{"SMTP_HOST", cfg.SMTPHost},
			{"SMTP_USER", cfg.SMTPUser},
			{"SMTP_PASSWORD", cfg.SMTPPassword},
		}),
	}
}
