package ui

import (
	"sort"
	"strings"

	"github.com/ftahirops/ttypanel/model"
	"github.com/ftahirops/ttypanel/util"
)

// MaxDrives caps how many matched drives the page shows.
const MaxDrives = 3

// SelectDrives filters mounts against the configured device patterns and
// builds display-ready rows. A pattern ending in "*" prefix-matches the
// device name, anything else must match exactly. A mount matched by
// several patterns appears once. Results are sorted by device name so
// the cap is deterministic, then truncated to max. An empty pattern list
// disables the drive block entirely.
func SelectDrives(mounts []model.MountStats, patterns []string, max int) []model.DriveSnapshot {
	if len(patterns) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var matched []model.MountStats
	for _, pat := range patterns {
		for _, m := range mounts {
			if !matchDevice(m.Device, pat) || seen[m.Device] {
				continue
			}
			seen[m.Device] = true
			matched = append(matched, m)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Device < matched[j].Device })
	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}

	drives := make([]model.DriveSnapshot, 0, len(matched))
	for _, m := range matched {
		drives = append(drives, model.DriveSnapshot{
			Device:      m.Device,
			Mountpoint:  m.Mountpoint,
			Total:       util.HumanBytes(m.TotalBytes),
			Used:        util.HumanBytes(m.UsedBytes),
			Free:        util.HumanBytes(m.FreeBytes),
			UsedPercent: m.UsedPercent,
		})
	}
	return drives
}

func matchDevice(device, pattern string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(device, strings.TrimSuffix(pattern, "*"))
	}
	return device == pattern
}
