package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for initializr configuration.
const envPrefix = "INITIALIZR"

// DefaultConfigFile is read when no --config flag is given. It may be absent.
const DefaultConfigFile = "initializr.yaml"

// Loader handles loading and merging configuration from file, env and defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	v.SetDefault("storage.base_dir", DefaultBaseDir)
	v.SetDefault("storage.root", DefaultStorageRoot)
	v.SetDefault("ledger.driver", DriverSQLite)
	v.SetDefault("ledger.sqlite_path", DefaultSQLitePath)
	v.SetDefault("ledger.firestore.project_id", "")
	v.SetDefault("ledger.firestore.credentials_file", "")
	v.SetDefault("ledger.firestore.collection", DefaultFirestoreCollection)
	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("log.level", DefaultLogLevel)

	return &Loader{v: v}
}

// Set overrides a key, taking precedence over file and env. Used for flags.
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// Load reads configFile (DefaultConfigFile when empty), overlays the
// environment and validates the result. A missing file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigFile
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
		if !missing || explicit {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	out := cfg.WithDefaults()
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfigFileUsed returns the file the last Load read, or "".
func (l *Loader) ConfigFileUsed() string {
	if _, err := os.Stat(l.v.ConfigFileUsed()); err != nil {
		return ""
	}
	return l.v.ConfigFileUsed()
}
