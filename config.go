package pdfmd

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultBulletGlyphs = "-*•"

// Config configures an Extractor. Zero values are replaced by defaults; use
// LoadConfig to populate it from a YAML file.
type Config struct {
	// MaxFileSize is the largest input accepted, in bytes (default: 100 MB).
	MaxFileSize int64 `yaml:"max_file_size"`

	// OCRDPI is the render resolution for the OCR fallback (default: 300).
	OCRDPI int `yaml:"ocr_dpi"`

	// MaxLLMInput caps the markdown size sent for LLM enhancement, in bytes
	// (default: 100000). Larger bodies are truncated with an explicit marker.
	MaxLLMInput int `yaml:"max_llm_input"`

	// BulletGlyphs lists the characters recognized as bullet markers during
	// text formatting (default: "-*•").
	BulletGlyphs string `yaml:"bullet_glyphs"`

	// Logger for debug/warning messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.MaxFileSize <= 0 {
		c.MaxFileSize = 100 * 1024 * 1024
	}
	if c.OCRDPI <= 0 {
		c.OCRDPI = 300
	}
	if c.MaxLLMInput <= 0 {
		c.MaxLLMInput = 100000
	}
	if c.BulletGlyphs == "" {
		c.BulletGlyphs = defaultBulletGlyphs
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// LoadConfig reads a Config from a YAML file. Unknown keys are rejected so
// typos surface instead of being silently ignored.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
