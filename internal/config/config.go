package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "vtt-translate"

// Environment variables read after the config file.
const (
	EnvAzureKey    = "AZURE_TRANSLATION_RESOURCE_KEY"
	EnvAzureRegion = "AZURE_TRANSLATION_RESOURCE_REGION"
	EnvDeepLKey    = "DEEPL_API_KEY"
	EnvProxy       = "VTT_TRANSLATE_PROXY"
)

type Config struct {
	// Languages, as BCP 47 tags. An empty source means auto-detect.
	SourceLanguage string `yaml:"source_language"`
	TargetLanguage string `yaml:"target_language"`

	// Engine is one of azure, google, deepl.
	Engine string `yaml:"engine"`

	// Output
	Bilingual        bool `yaml:"bilingual"`
	DropUnterminated bool `yaml:"drop_unterminated"`

	LogLevel string `yaml:"log_level"`

	// Timeout bounds each request to the Azure and DeepL APIs.
	Timeout time.Duration `yaml:"timeout"`

	Azure struct {
		Key      string `yaml:"key"`
		Region   string `yaml:"region"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"azure"`

	DeepL struct {
		Key      string `yaml:"key"`
		Endpoint string `yaml:"endpoint"`
	} `yaml:"deepl"`

	Google struct {
		Proxy string `yaml:"proxy"`
	} `yaml:"google"`
}

func Default() *Config {
	c := &Config{}
	c.TargetLanguage = "fa"
	c.Engine = "azure"
	c.LogLevel = "info"
	c.Timeout = time.Minute
	return c
}

// DefaultPath is config.yaml under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

// Load builds the configuration from defaults, the YAML file at path, a
// .env file in the working directory and the environment, in that order.
// With an empty path the default location is tried and may be absent.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := c.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	c.applyEnv(os.Getenv)
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Azure.Key, EnvAzureKey)
	set(&c.Azure.Region, EnvAzureRegion)
	set(&c.DeepL.Key, EnvDeepLKey)
	set(&c.Google.Proxy, EnvProxy)
}
