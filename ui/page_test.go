package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ftahirops/ttypanel/config"
	"github.com/ftahirops/ttypanel/model"
)

func panelConfig() config.Config {
	cfg := config.Default()
	cfg.DrivePatterns = []string{"/dev/sd*"}
	return cfg
}

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Timestamp:  time.Date(2026, time.March, 5, 10, 11, 12, 0, time.UTC),
		Hostname:   "panel01",
		IP:         "192.168.1.50",
		OSName:     "ubuntu",
		OSVersion:  "22.04",
		OSCodename: "jammy",
		Kernel:     "5.15.0-86",
		UptimeSec:  609389,
		CPUPercent: 12.3,
		CPUTempC:   85,
		Mounts: []model.MountStats{
			{Device: "/dev/sda1", Mountpoint: "/", TotalBytes: 20 << 30, UsedBytes: 18 << 30, FreeBytes: 2 << 30, UsedPercent: 92.0},
		},
	}
}

func renderToString(cfg config.Config, snap *model.Snapshot) string {
	var buf bytes.Buffer
	NewPage(cfg, NewWriter(&buf)).Render(snap)
	return buf.String()
}

func TestPage_MidBandTemperature(t *testing.T) {
	// 85C against thresholds 80/90 sits in the middle band.
	out := renderToString(panelConfig(), testSnapshot())
	if !strings.Contains(out, "\x1b[93m85C") {
		t.Errorf("85C not rendered in the mid-band colour; output %q", out)
	}
}

func TestPage_NormalBandTemperature(t *testing.T) {
	snap := testSnapshot()
	snap.CPUTempC = 45
	out := renderToString(panelConfig(), snap)
	if !strings.Contains(out, "\x1b[92m45C") {
		t.Errorf("45C not rendered in the normal-band colour; output %q", out)
	}
}

func TestPage_HighBandDiskPercentAndFree(t *testing.T) {
	// 92% against thresholds 75/90 is the high band; both the
	// percentage field and the free-space field carry it.
	out := renderToString(panelConfig(), testSnapshot())
	if strings.Count(out, "\x1b[91m") != 2 {
		t.Errorf("want exactly 2 high-band fields (percent + free); output %q", out)
	}
	if !strings.Contains(out, "92.0%") {
		t.Errorf("percentage field missing; output %q", out)
	}
	if !strings.Contains(out, "\x1b[91m2.0G free") {
		t.Errorf("free field not in the high-band colour; output %q", out)
	}
}

func TestPage_HostIdentityFields(t *testing.T) {
	out := renderToString(panelConfig(), testSnapshot())
	for _, want := range []string{
		"panel01       ", // hostname padded to 14
		"192.168.1.50",
		"Ubuntu 22.04 Jammy", // capitalized name and codename
		"5.15.0-86   ",       // kernel padded to 12
		"7d 1h 16m",
		"12.3%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page output missing %q; output %q", want, out)
		}
	}
}

func TestPage_ClockApproximateCentering(t *testing.T) {
	cfg := panelConfig()
	cfg.DateTimeFormat = "%H:%M:%S"
	out := renderToString(cfg, testSnapshot())
	// 8-char clock on a 39-column line: field width 8 + 15 = 23, so 15
	// leading spaces before the text.
	if !strings.Contains(out, strings.Repeat(" ", 15)+"10:11:12") {
		t.Errorf("clock not centered with the fixed arithmetic; output %q", out)
	}
}

func TestPage_NoDriveBlockWithoutPatterns(t *testing.T) {
	cfg := panelConfig()
	cfg.DrivePatterns = nil
	out := renderToString(cfg, testSnapshot())
	if strings.Contains(out, "/dev/sda1") {
		t.Errorf("drive block rendered despite empty pattern list; output %q", out)
	}
}
