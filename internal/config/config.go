package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	EnvRedisURL = "REDIS_URL"

	defaultIndexURL      = "https://www.mhlw.go.jp/stf/seisakunitsuite/newpage_00023.html"
	defaultBaseURL       = "https://www.mhlw.go.jp/"
	defaultOldestEdition = "2022-12-23 00:00"
	defaultRedisURL      = "redis://localhost:6379/0"
)

// Layout pins the geometry of the report sheet. Rows and columns are zero
// based; the row range is inclusive. The offsets are a contract with the
// document, not a heuristic: a sheet that moved its columns must fail.
type Layout struct {
	StartRow int `yaml:"start_row"` // 9th row of the sheet
	EndRow   int `yaml:"end_row"`   // 55th row of the sheet

	PrefectureCol          int `yaml:"prefecture_col"`
	InpatientTotalCol      int `yaml:"inpatient_total_col"`
	InpatientDedicatedCol  int `yaml:"inpatient_dedicated_col"`
	InpatientExtraCol      int `yaml:"inpatient_extra_col"`
	PhaseCol               int `yaml:"phase_col"`
	AvailableOrAssignedCol int `yaml:"available_or_assigned_col"`
	GuaranteedCol          int `yaml:"guaranteed_col"`
	ExtraGuaranteedCol     int `yaml:"extra_guaranteed_col"`
}

type ScraperConfig struct {
	IndexURL string `yaml:"index_url"`
	BaseURL  string `yaml:"base_url"`
	// OldestEdition marks the last known edition ("2006-01-02 15:04" in
	// JST); scanning stops once it has been seen.
	OldestEdition string `yaml:"oldest_edition"`
}

type Config struct {
	LogLevel string        `yaml:"log_level"`
	RedisURL string        `yaml:"redis_url"`
	Scraper  ScraperConfig `yaml:"scraper"`
	Layout   Layout        `yaml:"layout"`
}

func Default() *Config {
	return &Config{
		LogLevel: LogLevelInfo,
		RedisURL: defaultRedisURL,
		Scraper: ScraperConfig{
			IndexURL:      defaultIndexURL,
			BaseURL:       defaultBaseURL,
			OldestEdition: defaultOldestEdition,
		},
		Layout: Layout{
			StartRow:               8,
			EndRow:                 54,
			PrefectureCol:          0,
			InpatientTotalCol:      2,
			InpatientDedicatedCol:  3,
			InpatientExtraCol:      4,
			PhaseCol:               5,
			AvailableOrAssignedCol: 6,
			GuaranteedCol:          7,
			ExtraGuaranteedCol:     8,
		},
	}
}

// MustLoad reads the config file over the defaults, then applies .env and
// environment overrides. An empty path means defaults only.
func MustLoad(path string) *Config {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			panic(fmt.Errorf("cannot read config file: %w", err))
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			panic(fmt.Errorf("cannot parse config file: %w", err))
		}
	}

	_ = godotenv.Load()
	if url := os.Getenv(EnvRedisURL); url != "" {
		cfg.RedisURL = url
	}

	return cfg
}
