package sysinfo

import "errors"

// cpuTicks mirrors the aggregate cpu row of /proc/stat. Values are
// cumulative since boot, in USER_HZ units.
type cpuTicks struct {
	user    float64
	nice    float64
	system  float64
	idle    float64
	iowait  float64
	irq     float64
	softirq float64
	steal   float64
}

func (t cpuTicks) idleTicks() float64 {
	return t.idle + t.iowait
}

func (t cpuTicks) activeTicks() float64 {
	return t.user + t.nice + t.system + t.irq + t.softirq + t.steal
}

// computeLoad derives the busy percentage between two tick snapshots:
// 100 * (dTotal - dIdle) / dTotal. Counters that did not advance between
// the samples leave the quotient undefined and are reported as an error.
func computeLoad(prev, curr cpuTicks) (int, error) {
	prevIdle := prev.idleTicks()
	currIdle := curr.idleTicks()

	prevTotal := prevIdle + prev.activeTicks()
	currTotal := currIdle + curr.activeTicks()

	totalDelta := currTotal - prevTotal
	idleDelta := currIdle - prevIdle

	if totalDelta <= 0 {
		return 0, errors.New("cpu tick counters did not advance between samples")
	}

	return int((totalDelta - idleDelta) * 100 / totalDelta), nil
}
