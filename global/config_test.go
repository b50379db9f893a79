package global

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	var cfg DefaultConfig
	if err := LoadDefaultConfig("", &cfg); err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.LoggerConfig.Level != "INFO" {
		t.Fatalf("logger level = %q, want INFO", cfg.LoggerConfig.Level)
	}
	if cfg.ProbeConfig.ProcMount != "/proc" {
		t.Fatalf("proc mount = %q, want /proc", cfg.ProbeConfig.ProcMount)
	}
	if cfg.ProbeConfig.SampleMillis != 200 {
		t.Fatalf("sample millis = %d, want 200", cfg.ProbeConfig.SampleMillis)
	}
}

func TestLoadDefaultConfigFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := "logger:\n  level: DEBUG\nprobe:\n  sampleMillis: 50\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg DefaultConfig
	if err := LoadDefaultConfig(file, &cfg); err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.LoggerConfig.Level != "DEBUG" {
		t.Fatalf("logger level = %q, want DEBUG", cfg.LoggerConfig.Level)
	}
	if cfg.ProbeConfig.SampleMillis != 50 {
		t.Fatalf("sample millis = %d, want 50", cfg.ProbeConfig.SampleMillis)
	}
	if cfg.ProbeConfig.ProcMount != "/proc" {
		t.Fatalf("proc mount default was not applied: %q", cfg.ProbeConfig.ProcMount)
	}
}

func TestLoadDefaultConfigMissingFile(t *testing.T) {
	var cfg DefaultConfig
	if err := LoadDefaultConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("want error for missing config file")
	}
}
