// ABOUTME: Run configuration resolved from flags, environment and an optional YAML file
// ABOUTME: Backed by viper with the PLUGIN_READMES_ environment prefix
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/claudeup/plugin-readmes/internal/generator"
	"github.com/claudeup/plugin-readmes/internal/marketplace"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PLUGIN_READMES_EXEMPT.
const EnvPrefix = "PLUGIN_READMES"

// FileName is the optional config file looked up in the working directory.
const FileName = ".plugin-readmes"

// Keys shared by flags, environment variables and the config file.
const (
	KeyManifest  = "manifest"
	KeyExempt    = "exempt"
	KeyDryRun    = "dry-run"
	KeyAuditLog  = "audit-log"
	KeyBackupDir = "backup-dir"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Defaults
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "fmt"
)

var (
	DefaultManifest = marketplace.DefaultManifestPath
	DefaultExempt   = generator.DefaultExempt
)

// Config holds the resolved settings for a run.
type Config struct {
	ManifestPath string
	Exempt       string
	DryRun       bool
	AuditLog     string // empty disables the audit trail
	BackupDir    string // empty disables README backups
	LogLevel     string
	LogFormat    string
}

// RegisterFlags adds the configuration flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyManifest, DefaultManifest, "Path to the marketplace manifest")
	fs.String(KeyExempt, DefaultExempt, "Plugin whose existing README is never overwritten")
	fs.Bool(KeyDryRun, false, "Report what would be written without touching any file")
	fs.String(KeyAuditLog, "", "Append README writes to this JSONL audit log")
	fs.String(KeyBackupDir, "", "Copy existing READMEs into this directory before overwriting them")
	fs.String(KeyLogLevel, DefaultLogLevel, "Log level (panic, fatal, error, warn, info, debug, trace)")
	fs.String(KeyLogFormat, DefaultLogFormat, "Log format (fmt, json)")
}

// Load resolves the configuration. Precedence: flags set on the command
// line, then PLUGIN_READMES_* environment variables, then the config file in
// dir, then defaults. A missing config file is not an error.
func Load(fs *pflag.FlagSet, dir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyManifest, DefaultManifest)
	v.SetDefault(KeyExempt, DefaultExempt)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyAuditLog, "")
	v.SetDefault(KeyBackupDir, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		ManifestPath: v.GetString(KeyManifest),
		Exempt:       v.GetString(KeyExempt),
		DryRun:       v.GetBool(KeyDryRun),
		AuditLog:     v.GetString(KeyAuditLog),
		BackupDir:    v.GetString(KeyBackupDir),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ManifestPath) == "" {
		return errors.New("manifest path cannot be empty")
	}
	switch c.LogFormat {
	case "fmt", "json":
	default:
		return fmt.Errorf("invalid log format %q (want fmt or json)", c.LogFormat)
	}
	return nil
}
