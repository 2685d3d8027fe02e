package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smilingpoplar/vtt-translate/internal/lang"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.TargetLanguage != "fa" || c.Engine != "azure" || c.LogLevel != "info" {
		t.Errorf("Default() = %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvAzureKey, "")
	t.Setenv(EnvAzureRegion, "")
	path := writeConfig(t, `
source_language: en-GB
target_language: fr
engine: deepl
bilingual: true
deepl:
  key: from-file
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.SourceLanguage != "en-GB" || c.TargetLanguage != "fr" || c.Engine != "deepl" || !c.Bilingual {
		t.Errorf("Load() = %+v", c)
	}
	if c.LogLevel != "info" {
		t.Errorf("defaults not kept: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadTimeout(t *testing.T) {
	c, err := Load(writeConfig(t, "timeout: 15s\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Timeout != 15*time.Second {
		t.Errorf("timeout = %v", c.Timeout)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if c.Engine != "azure" {
		t.Errorf("engine = %q", c.Engine)
	}
}

func TestLoadUnknownField(t *testing.T) {
	if _, err := Load(writeConfig(t, "target_langauge: fr\n")); err == nil {
		t.Error("expected error for misspelled field")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("err = %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvAzureKey, "from-env")
	t.Setenv(EnvAzureRegion, "westeurope")
	c, err := Load(writeConfig(t, "azure:\n  key: from-file\n  region: eastus\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Azure.Key != "from-env" || c.Azure.Region != "westeurope" {
		t.Errorf("azure = %+v", c.Azure)
	}
}

func TestApplyEnvKeepsUnset(t *testing.T) {
	c := Default()
	c.Google.Proxy = "socks5://127.0.0.1:1080"
	c.applyEnv(func(string) string { return "" })
	if c.Google.Proxy != "socks5://127.0.0.1:1080" {
		t.Errorf("proxy = %q", c.Google.Proxy)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"azure ok", func(c *Config) { c.Azure.Key, c.Azure.Region = "k", "r" }, false},
		{"azure missing region", func(c *Config) { c.Azure.Key = "k" }, true},
		{"deepl missing key", func(c *Config) { c.Engine = "deepl" }, true},
		{"google needs nothing", func(c *Config) { c.Engine = "google" }, false},
		{"unknown engine", func(c *Config) { c.Engine = "babelfish" }, true},
		{"bad target", func(c *Config) { c.Engine = "google"; c.TargetLanguage = "xx" }, true},
		{"no target", func(c *Config) { c.Engine = "google"; c.TargetLanguage = "" }, true},
		{"bad log level", func(c *Config) { c.Engine = "google"; c.LogLevel = "loud" }, true},
		{"no timeout", func(c *Config) { c.Engine = "google"; c.Timeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	c := Default()
	c.SourceLanguage = "en-gb"
	src, dst, err := c.Languages()
	if err != nil {
		t.Fatal(err)
	}
	if src != lang.EnGB || dst != lang.Fa {
		t.Errorf("Languages() = %v, %v", src, dst)
	}
}
