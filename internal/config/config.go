// Package config loads md5sum defaults from a TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/zeebo/md5/internal/log"
	"github.com/zeebo/md5/internal/report"
)

// Config holds the settings that can come from a file or from flags.
type Config struct {
	Format     string `toml:"format" validate:"oneof=text json"`
	Template   string `toml:"template" validate:"required,template"`
	Decompress bool   `toml:"decompress"`
	Verbose    bool   `toml:"verbose"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Format:   report.FormatText,
		Template: report.DefaultTemplate,
	}
}

// Load reads the file at path on top of Default. Keys missing from the file
// keep their defaults; unknown keys are an error. The result is not
// validated, so flags can still override it.
func Load(path string) (Config, error) {
	cfg := Default()

	path = filepath.Clean(path)
	fh, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer func() { _ = fh.Close() }()

	dec := toml.NewDecoder(fh).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Debugf("%s", derr.String())
			row, col := derr.Position()
			return cfg, errors.Errorf("parse %s: line %d, column %d: %v", path, row, col, derr)
		}

		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Debugf("%s", serr.String())
		}
		return cfg, errors.Wrapf(err, "parse %s", path)
	}

	log.Debugf("Loaded configuration file: %s", path)
	return cfg, nil
}
