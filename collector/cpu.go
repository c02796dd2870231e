package collector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/ftahirops/ttypanel/model"
	"github.com/ftahirops/ttypanel/util"
)

// CPUCollector samples aggregate CPU utilization and the CPU temperature
// from a sysfs thermal zone. Both are read fresh every cycle.
type CPUCollector struct {
	TempPath string
}

func (c *CPUCollector) Name() string { return "cpu" }

func (c *CPUCollector) Collect(snap *model.Snapshot) error {
	// Interval 0 compares against the previous call, so the very first
	// cycle reports 0.0. That cold-start zero is expected; the page
	// renders it as-is.
	pct, err := cpu.Percent(0, false)
	if err != nil {
		return fmt.Errorf("cpu percent: %w", err)
	}
	if len(pct) > 0 {
		snap.CPUPercent = pct[0]
	}

	raw, err := util.ReadFileString(c.TempPath)
	if err != nil {
		return fmt.Errorf("cpu temp: %w", err)
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("cpu temp %s: %w", c.TempPath, err)
	}
	// Thermal zone files are millidegrees Celsius.
	snap.CPUTempC = milli / 1000.0
	return nil
}
