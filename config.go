package dately

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Options configures the SDK. Fields carry both yaml and go-flags tags so
// the same struct loads from a config file and from the command line.
type Options struct {
	BaseURL        string       `yaml:"baseURL" json:"baseURL" short:"u" long:"url" description:"service base URL"`
	TimeoutSeconds int          `yaml:"timeoutSeconds,omitempty" json:"timeoutSeconds,omitempty" long:"timeout" description:"request timeout in seconds"`
	LogLevel       string       `yaml:"logLevel,omitempty" json:"logLevel,omitempty" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	Store          StoreOptions `yaml:"store,omitempty" json:"store,omitempty"`
}

// StoreOptions selects the token store variant. The choice happens once at
// startup; call sites never branch on the backend.
type StoreOptions struct {
	Kind          string `yaml:"kind,omitempty" json:"kind,omitempty" long:"store-kind" description:"token store backend" choice:"memory" choice:"file" choice:"secure"`
	Location      string `yaml:"location,omitempty" json:"location,omitempty" long:"store-location" description:"afs URL of the token snapshot"`
	EncryptionKey string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty" long:"store-key" description:"scy encryption key for the secure store"`
}

// Init fills defaults.
func (o *Options) Init() {
	if o.TimeoutSeconds <= 0 {
		o.TimeoutSeconds = 30
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
	if o.Store.Kind == "" {
		if o.Store.Location != "" {
			o.Store.Kind = "file"
		} else {
			o.Store.Kind = "memory"
		}
	}
}

// Validate reports configuration errors before any wiring happens.
func (o *Options) Validate() error {
	if o.BaseURL == "" {
		return fmt.Errorf("baseURL was empty")
	}
	switch o.Store.Kind {
	case "memory":
	case "file", "secure":
		if o.Store.Location == "" {
			return fmt.Errorf("store.location is required for the %v store", o.Store.Kind)
		}
	default:
		return fmt.Errorf("unsupported store kind %q", o.Store.Kind)
	}
	return nil
}

// LoadOptions reads yaml options from an afs URL (file path, mem://, s3://).
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options from %v: %w", URL, err)
	}
	options := &Options{}
	if err = yaml.Unmarshal(data, options); err != nil {
		return nil, fmt.Errorf("failed to parse options %v: %w", URL, err)
	}
	options.Init()
	return options, nil
}

// NewLogger creates a JSON structured logger with an explicit log level.
func NewLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
