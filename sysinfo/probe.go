package sysinfo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/procfs"

	"github.com/hinfosvc/hinfosvc/pkg/shell"
)

type Config struct {
	ProcMount    string `yaml:"procMount" default:"/proc"`
	SampleMillis int    `yaml:"sampleMillis" default:"200"` // delay between the two /proc/stat samples
}

// Probe reads host facts on demand: the fully qualified hostname from the
// hostname command, and CPU data from the proc filesystem. It holds no
// state between calls.
type Probe struct {
	fs             procfs.FS
	sampleInterval time.Duration
}

func NewProbe(cfg Config) (*Probe, error) {
	if cfg.ProcMount == "" {
		cfg.ProcMount = procfs.DefaultMountPoint
	}
	if cfg.SampleMillis <= 0 {
		cfg.SampleMillis = 200
	}

	fs, err := procfs.NewFS(cfg.ProcMount)
	if err != nil {
		return nil, fmt.Errorf("open proc mount %s: %w", cfg.ProcMount, err)
	}

	return &Probe{
		fs:             fs,
		sampleInterval: time.Duration(cfg.SampleMillis) * time.Millisecond,
	}, nil
}

// Hostname returns the fully qualified host name, without a trailing
// newline.
func (p *Probe) Hostname() (string, error) {
	result, err := shell.Exec("hostname", "-f")
	if err != nil {
		return "", fmt.Errorf("exec `hostname -f`: %w", err)
	}

	name := strings.TrimRight(result.Stdout.String(), "\n")
	if name == "" {
		return "", errors.New("`hostname -f` produced no output")
	}
	return name, nil
}

// CPUModelName returns the first "model name" value found in the CPU
// descriptor data.
func (p *Probe) CPUModelName() (string, error) {
	infos, err := p.fs.CPUInfo()
	if err != nil {
		return "", fmt.Errorf("read cpuinfo: %w", err)
	}

	for _, info := range infos {
		if info.ModelName != "" {
			return info.ModelName, nil
		}
	}
	return "", errors.New("model name not present in cpuinfo")
}

// CPULoadPercent samples the aggregate CPU tick counters twice, 200 ms
// apart by default, and derives the busy share of the interval.
func (p *Probe) CPULoadPercent() (int, error) {
	prev, err := p.readTicks()
	if err != nil {
		return 0, err
	}

	time.Sleep(p.sampleInterval)

	curr, err := p.readTicks()
	if err != nil {
		return 0, err
	}

	return computeLoad(prev, curr)
}

func (p *Probe) readTicks() (cpuTicks, error) {
	stat, err := p.fs.Stat()
	if err != nil {
		return cpuTicks{}, fmt.Errorf("read stat: %w", err)
	}

	t := stat.CPUTotal
	return cpuTicks{
		user:    t.User,
		nice:    t.Nice,
		system:  t.System,
		idle:    t.Idle,
		iowait:  t.Iowait,
		irq:     t.IRQ,
		softirq: t.SoftIRQ,
		steal:   t.Steal,
	}, nil
}
