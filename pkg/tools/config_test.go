package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testConfig struct {
	Name    string        `yaml:"name" default:"hinfosvc"`
	Port    int           `yaml:"port" default:"8080"`
	Millis  int           `yaml:"millis" default:"200"`
	Ratio   float64       `yaml:"ratio" default:"0.5"`
	Nested  nestedConfig  `yaml:"nested"`
	PtrConf *nestedConfig `yaml:"ptrConf"`
}

type nestedConfig struct {
	Path  string `yaml:"path" default:"/proc"`
	Level string `yaml:"level" default:"INFO"`
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	content := "name: myhost\nmillis: 50\nnested:\n  level: DEBUG\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig(file, &cfg); err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := testConfig{
		Name:   "myhost", // from file
		Port:   8080,     // default
		Millis: 50,       // from file
		Ratio:  0.5,
		Nested: nestedConfig{Path: "/proc", Level: "DEBUG"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	if err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg testConfig
	SetDefaults(&cfg)

	want := testConfig{
		Name:   "hinfosvc",
		Port:   8080,
		Millis: 200,
		Ratio:  0.5,
		Nested: nestedConfig{Path: "/proc", Level: "INFO"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDefaultsKeepsExistingValues(t *testing.T) {
	cfg := testConfig{Name: "kept", Port: 1234}
	SetDefaults(&cfg)

	if cfg.Name != "kept" || cfg.Port != 1234 {
		t.Fatalf("explicit values were overwritten: %+v", cfg)
	}
	if cfg.Millis != 200 {
		t.Fatalf("zero field did not get its default: %+v", cfg)
	}
}
