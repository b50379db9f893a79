package global

import (
	"fmt"

	"github.com/hinfosvc/hinfosvc/pkg/logger"
	"github.com/hinfosvc/hinfosvc/pkg/tools"
	"github.com/hinfosvc/hinfosvc/sysinfo"
)

// DefaultConfig aggregates the optional yaml config. The listening port is
// deliberately not part of it; the port only ever comes from the command
// line.
type DefaultConfig struct {
	LoggerConfig logger.Config  `yaml:"logger"`
	ProbeConfig  sysinfo.Config `yaml:"probe"`
}

// LoadDefaultConfig fills v from the given yaml file, or from `default`
// struct tags alone when path is empty.
func LoadDefaultConfig(path string, v *DefaultConfig) error {
	if path == "" {
		tools.SetDefaults(v)
		return nil
	}
	if !tools.FileExist(path) {
		return fmt.Errorf("config file %s does not exist", path)
	}
	return tools.LoadConfig(path, v)
}
