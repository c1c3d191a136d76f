package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"github.com/wealthpath/wealth-calculator/internal/domain"
	"github.com/wealthpath/wealth-calculator/pkg/money"
)

const appName = "wealthpath"

// Settings holds all wealthpath user settings.
type Settings struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Output   OutputConfig   `toml:"output"`
	History  HistoryConfig  `toml:"history"`
}

// DefaultsConfig holds the form values used when a flag is not given.
// Amounts and rates are decimal strings so they round-trip exactly.
type DefaultsConfig struct {
	InitialInvestment   string `toml:"initial_investment"`
	MonthlyContribution string `toml:"monthly_contribution"`
	AnnualRatePercent   string `toml:"annual_rate_percent"`
	TaxRatePercent      string `toml:"tax_rate_percent"`
	Years               int    `toml:"years"`
	AccountType         string `toml:"account_type"`
	StartYear           int    `toml:"start_year,omitempty"`
}

// OutputConfig holds report preferences.
type OutputConfig struct {
	Format string `toml:"format"`
	Dir    string `toml:"dir,omitempty"`
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	in := DefaultInput()
	return Settings{
		Defaults: DefaultsConfig{
			InitialInvestment:   in.InitialInvestment.String(),
			MonthlyContribution: in.MonthlyContribution.String(),
			AnnualRatePercent:   in.AnnualInterestRatePercent.String(),
			TaxRatePercent:      in.MarginalTaxRatePercent.String(),
			Years:               in.HorizonYears,
			AccountType:         in.AccountRegime.String(),
		},
		Output: OutputConfig{
			Format: "console",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Input converts the defaults into a projection input.
func (d DefaultsConfig) Input() (domain.ProjectionInput, error) {
	regime, err := domain.ParseAccountRegime(d.AccountType)
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("defaults.account_type: %w", err)
	}
	initial, err := money.NewMoneyFromString(d.InitialInvestment)
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("defaults.initial_investment: %w", err)
	}
	monthly, err := money.NewMoneyFromString(d.MonthlyContribution)
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("defaults.monthly_contribution: %w", err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(d.AnnualRatePercent))
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("defaults.annual_rate_percent: %w", err)
	}
	taxRate, err := decimal.NewFromString(strings.TrimSpace(d.TaxRatePercent))
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("defaults.tax_rate_percent: %w", err)
	}
	return domain.ProjectionInput{
		InitialInvestment:         initial.Decimal,
		MonthlyContribution:       monthly.Decimal,
		AnnualInterestRatePercent: rate,
		MarginalTaxRatePercent:    taxRate,
		HorizonYears:              d.Years,
		AccountRegime:             regime,
	}, nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", appName)
}

// SettingsPath returns the settings file inside dir, or inside ConfigDir when dir is empty.
func SettingsPath(dir string) string {
	if dir == "" {
		dir = ConfigDir()
	}
	return filepath.Join(dir, "config.toml")
}

// HistoryPath returns the history database location. An explicit path in the
// settings wins over dataDir.
func (s Settings) HistoryPath(dataDir string) string {
	if s.History.Path != "" {
		return s.History.Path
	}
	if dataDir == "" {
		dataDir = DataDir()
	}
	return filepath.Join(dataDir, "history.db")
}

// Load reads the settings file from dir, returning defaults if it doesn't exist.
func Load(dir string) (Settings, error) {
	cfg := DefaultSettings()

	data, err := os.ReadFile(SettingsPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading settings: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing settings: %w", err)
	}

	return cfg, nil
}

// Save writes the settings to dir.
func Save(dir string, cfg Settings) error {
	path := SettingsPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}

	return writeSettings(f, cfg)
}

// writeSettings encodes cfg and closes w. A failed close means the file may
// be incomplete, so it is reported like an encode failure.
func writeSettings(w io.WriteCloser, cfg Settings) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		_ = w.Close()
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing settings file: %w", err)
	}
	return nil
}

// Exists returns true if a settings file exists in dir.
func Exists(dir string) bool {
	_, err := os.Stat(SettingsPath(dir))
	return err == nil
}
