// Package config provides configuration loading for the initializr.
package config

import (
	"fmt"

	"github.com/eduardo/initializr/internal/domain"
)

// Ledger drivers.
const (
	DriverSQLite    = "sqlite"
	DriverFirestore = "firestore"
)

// Defaults.
const (
	DefaultBaseDir             = "."
	DefaultStorageRoot         = "generated-projects"
	DefaultSQLitePath          = "initializr.db"
	DefaultFirestoreCollection = "generated_projects"
	DefaultServerAddress       = ":8080"
	DefaultLogLevel            = "info"
)

// StorageConfig locates the generated trees.
type StorageConfig struct {
	// BaseDir is the directory the filesystem store is rooted at.
	// Env: INITIALIZR_STORAGE_BASE_DIR
	BaseDir string `mapstructure:"base_dir"`

	// Root is the directory below BaseDir holding one tree per application.
	// Env: INITIALIZR_STORAGE_ROOT
	Root string `mapstructure:"root"`
}

// FirestoreConfig contains Firestore ledger settings.
type FirestoreConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Collection      string `mapstructure:"collection"`
}

// LedgerConfig selects and configures the Generation Record store.
type LedgerConfig struct {
	// Driver is "sqlite" or "firestore".
	// Env: INITIALIZR_LEDGER_DRIVER
	Driver     string          `mapstructure:"driver"`
	SQLitePath string          `mapstructure:"sqlite_path"`
	Firestore  FirestoreConfig `mapstructure:"firestore"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Config is the process configuration.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return (&Config{}).WithDefaults()
}

// WithDefaults returns a copy with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Storage.BaseDir == "" {
		out.Storage.BaseDir = DefaultBaseDir
	}
	if out.Storage.Root == "" {
		out.Storage.Root = DefaultStorageRoot
	}
	if out.Ledger.Driver == "" {
		out.Ledger.Driver = DriverSQLite
	}
	if out.Ledger.SQLitePath == "" {
		out.Ledger.SQLitePath = DefaultSQLitePath
	}
	if out.Ledger.Firestore.Collection == "" {
		out.Ledger.Firestore.Collection = DefaultFirestoreCollection
	}
	if out.Server.Address == "" {
		out.Server.Address = DefaultServerAddress
	}
	if out.Log.Level == "" {
		out.Log.Level = DefaultLogLevel
	}
	return &out
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Ledger.Driver {
	case DriverSQLite:
	case DriverFirestore:
		if c.Ledger.Firestore.ProjectID == "" {
			return domain.NewConfigurationError("config", "ledger.firestore.project_id is required for the firestore driver")
		}
	default:
		return domain.NewConfigurationError("config", fmt.Sprintf("unknown ledger driver %q", c.Ledger.Driver))
	}
	if c.Storage.Root == "" {
		return domain.NewConfigurationError("config", "storage.root must not be empty")
	}
	return nil
}
