// Package config provides the settings loader for packsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"go.trai.ch/packsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "PACKSYNC_CONFIG"

const (
	logFormatJSON   = "json"
	logFormatPretty = "pretty"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	path string
	home string
}

// NewLoader creates a new Loader reading the file at path.
// Relative store directories and "~" are resolved against home.
func NewLoader(path, home string) *Loader {
	return &Loader{path: path, home: home}
}

// DefaultPath returns the config file location: $PACKSYNC_CONFIG if set,
// otherwise packsync/config.yaml under the XDG config home.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, domain.ConfigFileName)
}

// Load reads the config file and returns the resolved settings.
// A missing file yields the defaults.
func (l *Loader) Load() (domain.Settings, error) {
	var file File

	//nolint:gosec // Path comes from the environment or the XDG base directory
	data, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.path)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.path)
		}
	}

	return l.resolve(file)
}

func (l *Loader) resolve(file File) (domain.Settings, error) {
	settings := domain.Settings{
		StoreDir:    filepath.Join(l.home, domain.StoreDirName),
		Concurrency: domain.DefaultConcurrency,
		Skip:        domain.NewSkipSet(file.Skip...),
	}

	if file.Manager != "" {
		m, err := domain.ParseManager(file.Manager)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "path", l.path)
		}
		settings.Manager = m
	}

	switch {
	case file.Concurrency < 0:
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrInvalidConcurrency, "invalid concurrency in "+l.path),
			"concurrency", file.Concurrency)
	case file.Concurrency > 0:
		settings.Concurrency = file.Concurrency
	}

	if file.StoreDir != "" {
		settings.StoreDir = l.expand(file.StoreDir)
	}

	switch strings.ToLower(file.LogFormat) {
	case "", logFormatPretty:
	case logFormatJSON:
		settings.JSONLogs = true
	default:
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "logFormat must be 'pretty' or 'json'"),
			"logFormat", file.LogFormat)
	}

	return settings, nil
}

// expand resolves "~" and relative paths against the home directory.
func (l *Loader) expand(path string) string {
	switch {
	case path == "~":
		return l.home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(l.home, path[2:])
	case filepath.IsAbs(path):
		return filepath.Clean(path)
	default:
		return filepath.Join(l.home, path)
	}
}
