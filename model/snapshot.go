package model

import "time"

// Snapshot holds one point-in-time sample of everything the panel shows.
// It is built fresh each render cycle and discarded afterwards.
type Snapshot struct {
	Timestamp time.Time

	Hostname   string
	IP         string
	OSName     string
	OSVersion  string
	OSCodename string
	Kernel     string

	UptimeSec  uint64
	CPUPercent float64
	CPUTempC   float64

	Mounts []MountStats
}

// MountStats describes one mounted block-backed filesystem.
type MountStats struct {
	Device      string
	Mountpoint  string
	TotalBytes  uint64
	UsedBytes   uint64
	FreeBytes   uint64
	UsedPercent float64
}

// DriveSnapshot is one display-ready drive row: capacity figures already
// formatted for the page, percentage kept numeric for band colouring.
type DriveSnapshot struct {
	Device      string
	Mountpoint  string
	Total       string
	Used        string
	Free        string
	UsedPercent float64
}
