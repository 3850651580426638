package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Source  SourceConfig
	Sheets  SheetsConfig
	Output  OutputConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SourceConfig selects the record source backing a run.
type SourceConfig struct {
	Kind     string `mapstructure:"kind"`      // "sheets" or "xlsx"
	XLSXPath string `mapstructure:"xlsx_path"` // local workbook for kind=xlsx
}

// SheetsConfig holds the Google Sheets location and the service-account
// credential fields. Credentials stay in memory; they are marshalled into
// the JSON shape the Sheets client expects, never written to disk.
type SheetsConfig struct {
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	ReadRange     string `mapstructure:"read_range"`

	Type                string `mapstructure:"type"`
	ProjectID           string `mapstructure:"project_id"`
	PrivateKeyID        string `mapstructure:"private_key_id"`
	PrivateKey          string `mapstructure:"private_key"`
	ClientEmail         string `mapstructure:"client_email"`
	ClientID            string `mapstructure:"client_id"`
	AuthURI             string `mapstructure:"auth_uri"`
	TokenURI            string `mapstructure:"token_uri"`
	AuthProviderCertURL string `mapstructure:"auth_provider_x509_cert_url"`
	ClientCertURL       string `mapstructure:"client_x509_cert_url"`
	UniverseDomain      string `mapstructure:"universe_domain"`
}

// CredentialsJSON assembles the service-account key file content in memory.
// Private keys arrive through the environment with literal "\n" sequences;
// they must be real newlines before the key can be parsed.
func (s *SheetsConfig) CredentialsJSON() ([]byte, error) {
	if s.ClientEmail == "" || s.PrivateKey == "" {
		return nil, fmt.Errorf("sheets credentials are not configured")
	}
	creds := map[string]string{
		"type":                        s.Type,
		"project_id":                  s.ProjectID,
		"private_key_id":              s.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(s.PrivateKey, `\n`, "\n"),
		"client_email":                s.ClientEmail,
		"client_id":                   s.ClientID,
		"auth_uri":                    s.AuthURI,
		"token_uri":                   s.TokenURI,
		"auth_provider_x509_cert_url": s.AuthProviderCertURL,
		"client_x509_cert_url":        s.ClientCertURL,
		"universe_domain":             s.UniverseDomain,
	}
	return json.Marshal(creds)
}

// OutputConfig holds invoice output locations.
type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	ArchiveName string `mapstructure:"archive_name"`
}

// InvoiceConfig holds the fixed invoice content shared by every render.
type InvoiceConfig struct {
	RecipientName    string `mapstructure:"recipient_name"`
	RecipientAddress string `mapstructure:"recipient_address"`
	CurrencyPrefix   string `mapstructure:"currency_prefix"`
	LogoPath         string `mapstructure:"logo_path"`
}

// Load reads configuration from environment variables with the
// TRAINERBILLS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TRAINERBILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Source defaults
	v.SetDefault("source.kind", "sheets")
	v.SetDefault("source.xlsx_path", "")

	// Sheets defaults
	v.SetDefault("sheets.spreadsheet_id", "")
	v.SetDefault("sheets.read_range", "Trainer Bills")
	v.SetDefault("sheets.type", "service_account")
	v.SetDefault("sheets.project_id", "")
	v.SetDefault("sheets.private_key_id", "")
	v.SetDefault("sheets.private_key", "")
	v.SetDefault("sheets.client_email", "")
	v.SetDefault("sheets.client_id", "")
	v.SetDefault("sheets.client_x509_cert_url", "")
	v.SetDefault("sheets.auth_uri", "https://accounts.google.com/o/oauth2/auth")
	v.SetDefault("sheets.token_uri", "https://oauth2.googleapis.com/token")
	v.SetDefault("sheets.auth_provider_x509_cert_url", "https://www.googleapis.com/oauth2/v1/certs")
	v.SetDefault("sheets.universe_domain", "googleapis.com")

	// Output defaults
	v.SetDefault("output.dir", "invoices")
	v.SetDefault("output.archive_name", "Trainer_Invoices.zip")

	// Invoice defaults
	v.SetDefault("invoice.recipient_name", "Gryphon Academy")
	v.SetDefault("invoice.recipient_address",
		"9th Floor, Olympia Business House (Achalare)\nNext to Supreme HQ, Mum - Pune Highway, Baner\nPune, MH - 411045")
	v.SetDefault("invoice.currency_prefix", "Rs. ")
	v.SetDefault("invoice.logo_path", "logo-1.png")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
