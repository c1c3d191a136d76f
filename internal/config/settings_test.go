package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wealthpath/wealth-calculator/internal/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
	assert.False(t, Exists(dir))
}

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wealthpath")
	cfg := DefaultSettings()
	cfg.Defaults.InitialInvestment = "2500.10"
	cfg.Defaults.AnnualRatePercent = "6.35"
	cfg.Defaults.AccountType = "traditional"
	cfg.Defaults.StartYear = 2030
	cfg.Output.Format = "html"
	cfg.History.Enabled = false

	require.NoError(t, Save(dir, cfg))
	assert.True(t, Exists(dir))

	info, err := os.Stat(SettingsPath(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	in, err := loaded.Defaults.Input()
	require.NoError(t, err)
	assert.Equal(t, "2500.1", in.InitialInvestment.String())
	assert.Equal(t, "6.35", in.AnnualInterestRatePercent.String())
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestWriteSettings_ReportsCloseError(t *testing.T) {
	w := &failingCloser{closeErr: errors.New("disk full")}
	err := writeSettings(w, DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing settings file")
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, w.String(), "[defaults]")

	require.NoError(t, writeSettings(&failingCloser{}, DefaultSettings()))
}

func TestSave_UnwritableDir(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	err := Save(parent, DefaultSettings())
	require.Error(t, err)
	assert.False(t, Exists(parent))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "[defaults]\nyears = 40\n\n[output]\nformat = \"json\"\n"
	require.NoError(t, os.WriteFile(SettingsPath(dir), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Defaults.Years)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "500", cfg.Defaults.MonthlyContribution)
	assert.True(t, cfg.History.Enabled)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(SettingsPath(dir), []byte("[defaults\n"), 0o600))
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing settings")
}

func TestDefaultsConfig_Input(t *testing.T) {
	in, err := DefaultSettings().Defaults.Input()
	require.NoError(t, err)
	assert.Equal(t, domain.RegimeTaxFree, in.AccountRegime)
	assert.True(t, in.InitialInvestment.Equal(decimal.NewFromInt(10000)))
	assert.True(t, in.MarginalTaxRatePercent.Equal(decimal.NewFromInt(25)))

	d := DefaultSettings().Defaults
	d.AccountType = "annuity"
	_, err = d.Input()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.account_type")
}

func TestDefaultsConfig_InputIsExact(t *testing.T) {
	d := DefaultSettings().Defaults
	d.InitialInvestment = "$12,345.67"
	d.MonthlyContribution = "0.10"
	d.AnnualRatePercent = "7.1"
	d.TaxRatePercent = "22.5"

	in, err := d.Input()
	require.NoError(t, err)
	assert.True(t, in.InitialInvestment.Equal(decimal.RequireFromString("12345.67")))
	assert.True(t, in.MonthlyContribution.Equal(decimal.RequireFromString("0.1")))
	assert.True(t, in.AnnualInterestRatePercent.Equal(decimal.RequireFromString("7.1")))
	assert.True(t, in.MarginalTaxRatePercent.Equal(decimal.RequireFromString("22.5")))

	for field, set := range map[string]func(*DefaultsConfig){
		"defaults.initial_investment":   func(d *DefaultsConfig) { d.InitialInvestment = "lots" },
		"defaults.monthly_contribution": func(d *DefaultsConfig) { d.MonthlyContribution = "" },
		"defaults.annual_rate_percent":  func(d *DefaultsConfig) { d.AnnualRatePercent = "7%" },
		"defaults.tax_rate_percent":     func(d *DefaultsConfig) { d.TaxRatePercent = "x" },
	} {
		bad := DefaultSettings().Defaults
		set(&bad)
		_, err := bad.Input()
		require.Error(t, err, field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestXDGDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	assert.Equal(t, filepath.Join("/tmp/xdg-config", "wealthpath"), ConfigDir())
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "wealthpath"), DataDir())
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "wealthpath", "config.toml"), SettingsPath(""))
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	s := DefaultSettings()
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "wealthpath", "history.db"), s.HistoryPath(""))
	assert.Equal(t, filepath.Join("/data", "history.db"), s.HistoryPath("/data"))

	s.History.Path = "/explicit/runs.db"
	assert.Equal(t, "/explicit/runs.db", s.HistoryPath("/data"))
}
