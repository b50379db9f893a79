package sysinfo

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestProbe(t *testing.T) *Probe {
	t.Helper()
	probe, err := NewProbe(Config{ProcMount: "testdata/proc", SampleMillis: 1})
	if err != nil {
		t.Fatalf("new probe: %v", err)
	}
	return probe
}

func TestProbeCPUModelName(t *testing.T) {
	probe := newTestProbe(t)

	got, err := probe.CPUModelName()
	if err != nil {
		t.Fatalf("cpu model name: %v", err)
	}
	want := "Intel(R) Core(TM) i7-8550U CPU @ 1.80GHz"
	if got != want {
		t.Fatalf("model name = %q, want %q", got, want)
	}
}

func TestProbeReadTicks(t *testing.T) {
	probe := newTestProbe(t)

	got, err := probe.readTicks()
	if err != nil {
		t.Fatalf("read ticks: %v", err)
	}

	// The fixture counters in USER_HZ units, scaled to seconds the way the
	// stat reader reports them.
	want := cpuTicks{
		user:    8004302.0 / 100,
		nice:    11729.0 / 100,
		system:  1835382.0 / 100,
		idle:    70189642.0 / 100,
		iowait:  97964.0 / 100,
		irq:     0,
		softirq: 55082.0 / 100,
		steal:   0,
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(cpuTicks{})); diff != "" {
		t.Fatalf("ticks mismatch (-want +got):\n%s", diff)
	}
}

func TestProbeCPULoadPercentStaticFixture(t *testing.T) {
	probe := newTestProbe(t)

	// Both samples read the same fixture, so no counter advances and the
	// quotient is undefined.
	if _, err := probe.CPULoadPercent(); err == nil {
		t.Fatal("want error for counters that did not advance")
	}
}

func TestProbeHostname(t *testing.T) {
	if _, err := exec.LookPath("hostname"); err != nil {
		t.Skipf("hostname command not available: %v", err)
	}

	probe := newTestProbe(t)
	got, err := probe.Hostname()
	if err != nil {
		t.Fatalf("hostname: %v", err)
	}
	if got == "" || strings.ContainsAny(got, "\r\n") {
		t.Fatalf("hostname %q must be non-empty and single-line", got)
	}
}
