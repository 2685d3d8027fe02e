package config

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

// Engines lists the accepted values of Config.Engine.
var Engines = []string{"azure", "google", "deepl"}

// Languages parses the configured source and target languages.
func (c *Config) Languages() (source, target lang.Language, err error) {
	if source, err = lang.Parse(c.SourceLanguage); err != nil {
		return lang.Und, lang.Und, fmt.Errorf("source language: %w", err)
	}
	if target, err = lang.Parse(c.TargetLanguage); err != nil {
		return lang.Und, lang.Und, fmt.Errorf("target language: %w", err)
	}
	if target == lang.Und {
		return lang.Und, lang.Und, errors.New("target language is required")
	}
	return source, target, nil
}

func (c *Config) Validate() error {
	if _, _, err := c.Languages(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	switch c.Engine {
	case "azure":
		if c.Azure.Key == "" || c.Azure.Region == "" {
			return fmt.Errorf("azure engine needs a resource key and region (%s, %s)", EnvAzureKey, EnvAzureRegion)
		}
	case "deepl":
		if c.DeepL.Key == "" {
			return fmt.Errorf("deepl engine needs an API key (%s)", EnvDeepLKey)
		}
	case "google":
	default:
		return fmt.Errorf("unknown engine %q, want one of %v", c.Engine, Engines)
	}
	return nil
}
