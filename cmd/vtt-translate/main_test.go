package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "target_language: de\nengine: deepl\ndeepl:\n  key: k\nbilingual: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	for name, value := range map[string]string{
		"config": path,
		"tolang": "fr",
		"biling": "false",
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TargetLanguage != "fr" {
		t.Errorf("target = %q, want flag value", cfg.TargetLanguage)
	}
	if cfg.Engine != "deepl" {
		t.Errorf("engine = %q, want file value", cfg.Engine)
	}
	if cfg.Bilingual {
		t.Error("bilingual flag not applied")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("engine: google\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newRootCmd()
	cmd.Flags().Set("config", path)
	cmd.Flags().Set("tolang", "klingon")
	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected invalid target language error")
	}
}
