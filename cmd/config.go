package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/automate"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all the configuration of folio.
type Config struct {
	Currency    string           `toml:"currency"`
	DoneKeyword string           `toml:"done_keyword"`
	ExportDir   string           `toml:"export_dir"`
	LogLevel    string           `toml:"log_level"`
	CatalogFile string           `toml:"catalog_file"` // JSON document, see folio.ImportCatalog
	CatalogPath string           `toml:"catalog_path"` // JSONPath of the prices in CatalogFile
	Catalog     []CatalogEntry   `toml:"catalog"`      // inline catalog, used when there is no CatalogFile
	Automation  AutomationConfig `toml:"automation"`
}

// CatalogEntry is an inline catalog price.
type CatalogEntry struct {
	Ticker string  `toml:"ticker"`
	Price  float64 `toml:"price"`
}

// AutomationConfig holds the automation demo configuration.
type AutomationConfig struct {
	InputFile  string `toml:"input_file"`
	EmailsFile string `toml:"emails_file"`
	TitleFile  string `toml:"title_file"`
	TargetURL  string `toml:"target_url"`
	Timeout    string `toml:"timeout"`
	ReplyDelay string `toml:"reply_delay"`
	Cache      bool   `toml:"cache"`
}

// NewDefaultConfig returns the configuration used when nothing is configured.
func NewDefaultConfig() *Config {
	d := automate.DefaultConfig()
	return &Config{
		Currency:    "USD",
		DoneKeyword: folio.DefaultDoneKeyword,
		ExportDir:   ".",
		LogLevel:    "info",
		CatalogPath: folio.DefaultCatalogPath,
		Automation: AutomationConfig{
			InputFile:  d.InputFile,
			EmailsFile: d.EmailsFile,
			TitleFile:  d.TitleFile,
			TargetURL:  d.TargetURL,
			Timeout:    d.Timeout.String(),
			ReplyDelay: d.ReplyDelay.String(),
		},
	}
}

// LoadConfig loads the configuration from the .env file, the TOML file at
// 'path' and finally the environment. Missing files are skipped.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := NewDefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("FOLIO_CURRENCY"); v != "" {
		config.Currency = v
	}
	if v := os.Getenv("FOLIO_EXPORT_DIR"); v != "" {
		config.ExportDir = v
	}
	if v := os.Getenv("FOLIO_LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("FOLIO_CATALOG_FILE"); v != "" {
		config.CatalogFile = v
	}
	if v := os.Getenv("FOLIO_TARGET_URL"); v != "" {
		config.Automation.TargetURL = v
	}
}

// BuildCatalog returns the configured catalog: the catalog file if any, or
// the inline catalog if any, or the default catalog.
func (c *Config) BuildCatalog() (*folio.Catalog, error) {
	if c.CatalogFile != "" {
		f, err := os.Open(c.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open catalog file: %w", err)
		}
		defer f.Close()
		cat, err := folio.ImportCatalog(f, c.CatalogPath, c.Currency)
		if err != nil {
			return nil, fmt.Errorf("cannot import catalog %q: %w", c.CatalogFile, err)
		}
		return cat, nil
	}
	if len(c.Catalog) == 0 {
		return folio.DefaultCatalog(), nil
	}
	entries := make([]folio.CatalogEntry, 0, len(c.Catalog))
	for _, e := range c.Catalog {
		entries = append(entries, folio.CatalogEntry{Ticker: e.Ticker, Price: folio.M(e.Price, c.Currency)})
	}
	return folio.NewCatalog(c.Currency, entries...)
}

// AutomateConfig returns the automation demo configuration.
// Invalid durations fall back to the defaults.
func (c *Config) AutomateConfig() automate.Config {
	d := automate.DefaultConfig()
	a := c.Automation
	return automate.Config{
		InputFile:  orDefault(a.InputFile, d.InputFile),
		EmailsFile: orDefault(a.EmailsFile, d.EmailsFile),
		TitleFile:  orDefault(a.TitleFile, d.TitleFile),
		TargetURL:  orDefault(a.TargetURL, d.TargetURL),
		Timeout:    durationOr(a.Timeout, d.Timeout),
		ReplyDelay: durationOr(a.ReplyDelay, d.ReplyDelay),
		Cache:      a.Cache,
	}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
