package collector

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/ftahirops/ttypanel/model"
)

// FilesystemCollector enumerates mounted block-backed filesystems with
// their capacity figures, deduplicated by device.
type FilesystemCollector struct{}

func (f *FilesystemCollector) Name() string { return "filesystem" }

func (f *FilesystemCollector) Collect(snap *model.Snapshot) error {
	parts, err := disk.Partitions(false)
	if err != nil {
		return fmt.Errorf("partitions: %w", err)
	}

	seen := make(map[string]bool)
	var mounts []model.MountStats
	for _, p := range parts {
		// Skip non-device mounts
		if !strings.HasPrefix(p.Device, "/") {
			continue
		}
		if seen[p.Device] {
			continue
		}
		seen[p.Device] = true

		// A device can unmount between enumeration and statfs; skip it
		// rather than killing the cycle.
		usage, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		mounts = append(mounts, model.MountStats{
			Device:      p.Device,
			Mountpoint:  p.Mountpoint,
			TotalBytes:  usage.Total,
			UsedBytes:   usage.Used,
			FreeBytes:   usage.Free,
			UsedPercent: usage.UsedPercent,
		})
	}
	snap.Mounts = mounts
	return nil
}
