package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ttypanel.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.conf"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Defaults(t *testing.T) {
	def := Default()
	assert.Equal(t, "/dev/tty1", def.Device)
	assert.Equal(t, 2, def.UpdateInterval)
	assert.Equal(t, "%-d %B %Y %H:%M:%S", def.DateTimeFormat)
	assert.Equal(t, "white", def.LabelColour)
	assert.Equal(t, "cyan", def.DataColour)
	assert.Equal(t, "/sys/class/thermal/thermal_zone0/temp", def.CPUTempLocation)
	assert.Equal(t, 80, def.CPUTempLow)
	assert.Equal(t, 90, def.CPUTempHigh)
	assert.Equal(t, 75, def.DriveUsageLow)
	assert.Equal(t, 90, def.DriveUsageHigh)
	assert.Empty(t, def.DrivePatterns)
	assert.Equal(t, "light green", def.CPUTempColourNormal)
	assert.Equal(t, "light yellow", def.CPUTempColourMid)
	assert.Equal(t, "light red", def.CPUTempColourHigh)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
# panel configuration
device = /dev/tty2
update_interval = 5
date_time_format = "%-d %B %Y %H:%M:%S"
label_colour = "light white"
data_colour = cyan
network_interface_name = eth0
cpu_temp_location = /sys/class/thermal/thermal_zone1/temp
cpu_temp1 = 70
cpu_temp2 = 85
hdd_display = /dev/sda1, /dev/sdb*
hdd_usage1 = 60
hdd_usage2 = 80
hdd_usage_colour_normal = green
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/tty2", cfg.Device)
	assert.Equal(t, 5, cfg.UpdateInterval)
	assert.Equal(t, "%-d %B %Y %H:%M:%S", cfg.DateTimeFormat, "quotes stripped")
	assert.Equal(t, "light white", cfg.LabelColour)
	assert.Equal(t, "eth0", cfg.NetworkInterface)
	assert.Equal(t, "/sys/class/thermal/thermal_zone1/temp", cfg.CPUTempLocation)
	assert.Equal(t, 70, cfg.CPUTempLow)
	assert.Equal(t, 85, cfg.CPUTempHigh)
	assert.Equal(t, []string{"/dev/sda1", "/dev/sdb*"}, cfg.DrivePatterns)
	assert.Equal(t, 60, cfg.DriveUsageLow)
	assert.Equal(t, 80, cfg.DriveUsageHigh)
	assert.Equal(t, "green", cfg.DriveColourNormal)

	// Untouched keys keep their defaults.
	assert.Equal(t, "light yellow", cfg.CPUTempColourMid)
}

func TestLoad_MalformedIntegerFailsFast(t *testing.T) {
	path := writeConfig(t, "cpu_temp1 = warm\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu_temp1")
}

func TestLoad_InvertedTemperatureThresholds(t *testing.T) {
	path := writeConfig(t, "cpu_temp1 = 90\ncpu_temp2 = 80\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu_temp1")
}

func TestLoad_InvertedUsageThresholds(t *testing.T) {
	path := writeConfig(t, "hdd_usage1 = 95\nhdd_usage2 = 90\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_IntervalBelowOne(t *testing.T) {
	path := writeConfig(t, "update_interval = 0\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update_interval")
}

func TestLoad_EmptyDriveListDisablesBlock(t *testing.T) {
	path := writeConfig(t, "hdd_display =\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.DrivePatterns)
}
