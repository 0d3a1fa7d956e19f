package config

import (
	"time"

	"github.com/soldracula/dracula/internal/postgres"
)

type Config struct {
	Database    string            `mapstructure:"database"` // Database to store append progress. e.g. `memory` | `leveldb` | `postgres`
	LevelDB     LevelDBConfig     `mapstructure:"leveldb"`
	Postgres    postgres.Config   `mapstructure:"postgres"`
	Verifier    VerifierConfig    `mapstructure:"verifier"`
	Coordinator CoordinatorConfig `mapstructure:"coordinator"`
	Writer      WriterConfig      `mapstructure:"writer"`
}

type LevelDBConfig struct {
	Path string `mapstructure:"path"`
}

type VerifierConfig struct {
	// MinFeeSOL is the minimum payment in SOL, e.g. "0.001". Empty disables the check.
	MinFeeSOL string `mapstructure:"min_fee_sol"`
}

type CoordinatorConfig struct {
	DedupTTL time.Duration `mapstructure:"dedup_ttl"`

	// ResumePartial continues a retried script after its last completed step
	// instead of re-running it from the first item.
	ResumePartial bool `mapstructure:"resume_partial"`

	// SerializePerAsset runs at most one script per asset at a time.
	SerializePerAsset bool `mapstructure:"serialize_per_asset"`
}

type WriterConfig struct {
	CDN                 string `mapstructure:"cdn"`
	Label               string `mapstructure:"label"`
	Description         string `mapstructure:"description"`
	URL                 string `mapstructure:"url"`
	Logo                string `mapstructure:"logo"`
	BaseURL             string `mapstructure:"base_url"`
	Metadata            string `mapstructure:"metadata"`
	HasExtendedMetadata bool   `mapstructure:"has_extended_metadata"`
	SystemValidated     bool   `mapstructure:"system_validated"`
	APIVersion          int    `mapstructure:"api_version"`
	Visible             bool   `mapstructure:"visible"`
}
