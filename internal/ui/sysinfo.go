package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/deskmux/deskmux/internal/config"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	// sysInfoInterval is how often the CPU and memory figures refresh.
	sysInfoInterval = 500 * time.Millisecond
	// cpuHistorySize is the number of samples in the CPU sparkline.
	cpuHistorySize = 10
)

// SysInfo samples host CPU and memory usage for the status bar. All
// methods tolerate sampling failures by holding the last good values,
// so the status bar never flickers on a transient read error.
type SysInfo struct {
	cpuHistory []float64
	memPercent float64
	lastSample time.Time
}

// NewSysInfo returns an empty sampler. The first Refresh establishes
// the CPU baseline, so the gauge starts at zero and fills in as
// samples arrive.
func NewSysInfo() *SysInfo {
	return &SysInfo{
		cpuHistory: make([]float64, 0, cpuHistorySize),
	}
}

// Refresh takes a new sample if the refresh interval has elapsed.
// Called from the tick handler, so it rate-limits itself rather than
// trusting the caller's cadence.
func (s *SysInfo) Refresh() {
	now := time.Now()
	if now.Sub(s.lastSample) < sysInfoInterval {
		return
	}
	s.lastSample = now

	// Interval 0 diffs against the previous call instead of blocking.
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		if len(s.cpuHistory) >= cpuHistorySize {
			s.cpuHistory = s.cpuHistory[1:]
		}
		s.cpuHistory = append(s.cpuHistory, percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		s.memPercent = vm.UsedPercent
	}
}

// CPUGauge returns the CPU sparkline with the current percentage.
// The result is always exactly 19 cells wide so the status bar never
// shifts as samples arrive.
func (s *SysInfo) CPUGauge() string {
	current := 0.0
	if len(s.cpuHistory) > 0 {
		current = s.cpuHistory[len(s.cpuHistory)-1]
	}
	return fmt.Sprintf("CPU:%s %3.0f%%", sparkline(s.cpuHistory, cpuHistorySize), current)
}

// MemGauge returns the memory usage percentage, fixed width.
func (s *SysInfo) MemGauge() string {
	return fmt.Sprintf("MEM:%3.0f%%", s.memPercent)
}

// sparkline renders usage samples as block characters, left-padded
// with spaces to the requested width until enough samples exist.
func sparkline(samples []float64, width int) string {
	bars := []rune("▁▂▃▄▅▆▇█")
	if config.UseASCIIOnly {
		bars = []rune("_.-:=+*#")
	}

	var b strings.Builder
	if pad := width - len(samples); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	for i, usage := range samples {
		if i >= width {
			break
		}
		idx := int(usage / 12.5)
		if idx < 0 {
			idx = 0
		}
		if idx >= len(bars) {
			idx = len(bars) - 1
		}
		b.WriteRune(bars[idx])
	}
	return b.String()
}
