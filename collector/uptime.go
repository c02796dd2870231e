package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/ftahirops/ttypanel/model"
)

// UptimeCollector samples seconds since boot.
type UptimeCollector struct{}

func (u *UptimeCollector) Name() string { return "uptime" }

func (u *UptimeCollector) Collect(snap *model.Snapshot) error {
	up, err := host.Uptime()
	if err != nil {
		return fmt.Errorf("uptime: %w", err)
	}
	snap.UptimeSec = up
	return nil
}
