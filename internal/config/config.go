// ABOUTME: Configuration management for ranking search parameters
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads and saves ranking.Parameters as TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/stojg/rankcraft/internal/ranking"
)

// File is the on-disk representation of ranking.Parameters. TOML tags keep
// the file human-editable independent of the Go field names.
type File struct {
	Alpha int `toml:"alpha"`

	K       float64 `toml:"k"`
	Lambda  float64 `toml:"lambda"`
	Epsilon float64 `toml:"epsilon"`

	Seed int64 `toml:"seed"`

	AnnealingIter int     `toml:"annealing_iter"`
	CoolingRate   float64 `toml:"cooling_rate"`

	MaxSlidePasses   int `toml:"max_slide_passes"`
	WindowSearchSize int `toml:"window_search_size"`
}

// fromParameters converts ranking.Parameters to its TOML-tagged form.
func fromParameters(p ranking.Parameters) File {
	return File{
		Alpha:            p.Alpha,
		K:                p.K,
		Lambda:           p.Lambda,
		Epsilon:          p.Epsilon,
		Seed:             p.Seed,
		AnnealingIter:    p.AnnealingIter,
		CoolingRate:      p.CoolingRate,
		MaxSlidePasses:   p.MaxSlidePasses,
		WindowSearchSize: p.WindowSearchSize,
	}
}

// toParameters converts a loaded File back into ranking.Parameters.
func (f File) toParameters() ranking.Parameters {
	return ranking.Parameters{
		Alpha:            f.Alpha,
		K:                f.K,
		Lambda:           f.Lambda,
		Epsilon:          f.Epsilon,
		Seed:             f.Seed,
		AnnealingIter:    f.AnnealingIter,
		CoolingRate:      f.CoolingRate,
		MaxSlidePasses:   f.MaxSlidePasses,
		WindowSearchSize: f.WindowSearchSize,
	}
}

// Load reads parameters from a TOML file at path. If the file doesn't
// exist, it returns ranking.DefaultParameters() with no error.
func Load(path string) (ranking.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ranking.DefaultParameters(), nil
		}
		return ranking.DefaultParameters(), fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return ranking.DefaultParameters(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return f.toParameters(), nil
}

// Save writes params to path as TOML, creating parent directories as
// needed.
func Save(path string, params ranking.Parameters) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close config file: %v\n", cerr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(fromParameters(params)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path: the current
// directory first, falling back to ~/.config/rankcraft/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./rankcraft.toml"); err == nil {
		return "./rankcraft.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./rankcraft.toml"
	}

	return filepath.Join(home, ".config", "rankcraft", "config.toml")
}
