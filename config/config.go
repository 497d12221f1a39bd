// Package config loads cvoutline settings from defaults, an optional YAML
// file and CVOUTLINE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/cvoutline/layout"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CVOUTLINE_"

// LogConfig controls the CLI logger
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// OCRConfig controls the image adapter
type OCRConfig struct {
	Language string `yaml:"language" validate:"required"`
	DPI      int    `yaml:"dpi" validate:"gte=36,lte=1200"`

	// PageSegMode is the Tesseract page segmentation mode (3 = fully automatic)
	PageSegMode int `yaml:"psm" validate:"gte=0,lte=13"`
}

// BatchConfig controls parallel processing
type BatchConfig struct {
	// Workers bounds concurrent documents; 0 uses GOMAXPROCS
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Config is the complete application configuration
type Config struct {
	Engine layout.Config `yaml:"engine"`
	Strict bool          `yaml:"strict"` // Schema-validate layout input
	Log    LogConfig     `yaml:"log"`
	OCR    OCRConfig     `yaml:"ocr"`
	Batch  BatchConfig   `yaml:"batch"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Engine: layout.DefaultConfig(),
		Log:    LogConfig{Level: "info", Format: "text"},
		OCR:    OCRConfig{Language: "eng", DPI: 300, PageSegMode: 3},
	}
}

// Load builds the configuration. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct constraints of every section, the engine's
// included
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				field := fe.Namespace()
				if i := strings.Index(field, "."); i >= 0 {
					field = field[i+1:]
				}
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", field, fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
