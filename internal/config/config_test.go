package config

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/zeebo/assert"
	"gotest.tools/v3/fs"

	"github.com/zeebo/md5/internal/report"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := fs.NewDir(t, "md5sum-config", fs.WithFile("md5sum.toml", content))
	t.Cleanup(dir.Remove)
	return dir.Join("md5sum.toml")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.Format, report.FormatText)
	assert.Equal(t, cfg.Template, report.DefaultTemplate)
	assert.That(t, !cfg.Decompress)
	assert.That(t, !cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, strings.Join([]string{
			`format = "json"`,
			`template = "{{file}}: {{digest}}"`,
			`decompress = true`,
			`verbose = true`,
		}, "\n")))
		assert.NoError(t, err)
		assert.Equal(t, cfg, Config{
			Format:     "json",
			Template:   "{{file}}: {{digest}}",
			Decompress: true,
			Verbose:    true,
		})
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Partial", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "decompress = true\n"))
		assert.NoError(t, err)
		assert.Equal(t, cfg.Format, report.FormatText)
		assert.Equal(t, cfg.Template, report.DefaultTemplate)
		assert.That(t, cfg.Decompress)
	})

	t.Run("Empty", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, ""))
		assert.NoError(t, err)
		assert.Equal(t, cfg, Default())
	})

	t.Run("Missing", func(t *testing.T) {
		dir := fs.NewDir(t, "md5sum-config")
		defer dir.Remove()

		_, err := Load(dir.Join("nope.toml"))
		assert.Error(t, err)
		assert.That(t, strings.Contains(err.Error(), "open config"))
	})

	t.Run("Syntax", func(t *testing.T) {
		_, err := Load(writeConfig(t, "format = \"json\"\nverbose = yes\n"))
		assert.Error(t, err)
		assert.That(t, strings.Contains(err.Error(), "line 2"))
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := Load(writeConfig(t, "format = \"json\"\nalgorithm = \"sha1\"\n"))
		assert.Error(t, err)

		var serr *toml.StrictMissingError
		assert.That(t, errors.As(err, &serr))
	})
}

func TestValidate(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		cfg := Default()
		cfg.Format = "xml"

		err := cfg.Validate()
		assert.Error(t, err)

		var verrs ValidationErrors
		assert.That(t, errors.As(err, &verrs))
		assert.Equal(t, len(verrs), 1)
		assert.Equal(t, verrs[0].Field, "format")
		assert.Equal(t, verrs[0].Message, "must be one of: text json")
	})

	t.Run("Template", func(t *testing.T) {
		cfg := Default()
		cfg.Template = "{{sha256}}"

		var verrs ValidationErrors
		assert.That(t, errors.As(cfg.Validate(), &verrs))
		assert.Equal(t, len(verrs), 1)
		assert.Equal(t, verrs[0].Field, "template")
	})

	t.Run("EmptyTemplate", func(t *testing.T) {
		cfg := Default()
		cfg.Template = ""

		var verrs ValidationErrors
		assert.That(t, errors.As(cfg.Validate(), &verrs))
		assert.Equal(t, verrs[0].Message, "field is required")
	})

	t.Run("Many", func(t *testing.T) {
		cfg := Config{Format: "yaml", Template: "{{x"}

		err := cfg.Validate()
		var verrs ValidationErrors
		assert.That(t, errors.As(err, &verrs))
		assert.Equal(t, len(verrs), 2)
		assert.That(t, strings.Contains(err.Error(), "2 error(s)"))
	})
}
